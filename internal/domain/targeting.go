package domain

import (
	"encoding/json"
	"fmt"
)

// Targeting rule types
const (
	TargetTypeAll         = "all"
	TargetTypeDivision    = "division"
	TargetTypeRole        = "role"
	TargetTypeProgramTeam = "program_team"
	TargetTypeCustom      = "custom"
)

// TargetingRule declares who a meeting expects to attend. It is a closed
// set of variants; each variant carries only its own selector, so a
// malformed combination (a division rule with a role list, say) cannot be
// represented. Persisted as target_type plus a JSON params column on the
// meeting row.
type TargetingRule interface {
	Type() string
	View() *TargetView
	sealed()
}

// TargetAll every member with an active-class membership status
type TargetAll struct{}

// TargetByDivision members of the given divisions, regardless of
// membership status. An empty set means "no one yet", not an error.
type TargetByDivision struct {
	Divisions []string `json:"divisions"`
}

// TargetByRole members whose linked account holds one of the given roles.
// Members without an account can never match.
type TargetByRole struct {
	Roles []string `json:"roles"`
}

// TargetProgramTeam the staffed seats of the meeting's linked program
type TargetProgramTeam struct{}

// TargetCustom an explicit member id list, passed through unchecked
type TargetCustom struct {
	MemberIDs []uint `json:"member_ids"`
}

func (TargetAll) Type() string         { return TargetTypeAll }
func (TargetByDivision) Type() string  { return TargetTypeDivision }
func (TargetByRole) Type() string      { return TargetTypeRole }
func (TargetProgramTeam) Type() string { return TargetTypeProgramTeam }
func (TargetCustom) Type() string      { return TargetTypeCustom }

func (TargetAll) sealed()         {}
func (TargetByDivision) sealed()  {}
func (TargetByRole) sealed()      {}
func (TargetProgramTeam) sealed() {}
func (TargetCustom) sealed()      {}

// TargetView flattened rule representation for API responses
type TargetView struct {
	Type      string   `json:"type"`
	Divisions []string `json:"divisions,omitempty"`
	Roles     []string `json:"roles,omitempty"`
	MemberIDs []uint   `json:"member_ids,omitempty"`
}

func (TargetAll) View() *TargetView { return &TargetView{Type: TargetTypeAll} }

func (t TargetByDivision) View() *TargetView {
	return &TargetView{Type: TargetTypeDivision, Divisions: t.Divisions}
}

func (t TargetByRole) View() *TargetView {
	return &TargetView{Type: TargetTypeRole, Roles: t.Roles}
}

func (TargetProgramTeam) View() *TargetView { return &TargetView{Type: TargetTypeProgramTeam} }

func (t TargetCustom) View() *TargetView {
	return &TargetView{Type: TargetTypeCustom, MemberIDs: t.MemberIDs}
}

// ParseTargetingRule decodes a persisted (target_type, target_params) pair
func ParseTargetingRule(targetType, params string) (TargetingRule, error) {
	switch targetType {
	case TargetTypeAll:
		return TargetAll{}, nil
	case TargetTypeProgramTeam:
		return TargetProgramTeam{}, nil
	case TargetTypeDivision:
		var t TargetByDivision
		if err := unmarshalParams(params, &t); err != nil {
			return nil, err
		}
		return t, nil
	case TargetTypeRole:
		var t TargetByRole
		if err := unmarshalParams(params, &t); err != nil {
			return nil, err
		}
		return t, nil
	case TargetTypeCustom:
		var t TargetCustom
		if err := unmarshalParams(params, &t); err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, fmt.Errorf("unknown target type %q", targetType)
	}
}

func unmarshalParams(params string, dest interface{}) error {
	if params == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(params), dest); err != nil {
		return fmt.Errorf("invalid target params: %w", err)
	}
	return nil
}

// TargetingRule parses the meeting's persisted rule
func (m *Meeting) TargetingRule() (TargetingRule, error) {
	return ParseTargetingRule(m.TargetType, m.TargetParams)
}

// SetTargetingRule persists the rule onto the meeting's storage columns
func (m *Meeting) SetTargetingRule(rule TargetingRule) error {
	m.TargetType = rule.Type()
	switch rule.(type) {
	case TargetAll, TargetProgramTeam:
		m.TargetParams = ""
		return nil
	}
	raw, err := json.Marshal(rule)
	if err != nil {
		return fmt.Errorf("encode target params: %w", err)
	}
	m.TargetParams = string(raw)
	return nil
}
