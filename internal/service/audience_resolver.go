package service

import (
	"sort"

	"github.com/sinergi-org/sinergi-backend/internal/domain"
	"github.com/sinergi-org/sinergi-backend/internal/repository"
)

// AudienceResolver computes the member set a meeting expects to attend
// from its targeting rule. Read-only and deterministic: re-running after
// roster edits always reflects current organizational data, which is what
// the preview endpoint relies on.
type AudienceResolver interface {
	Resolve(meeting *domain.Meeting) ([]*domain.Member, error)
	ResolveIDs(meeting *domain.Meeting) ([]uint, error)
}

type audienceResolver struct {
	memberRepo repository.MemberRepository
	staffRepo  repository.StaffRepository
}

// NewAudienceResolver creates a new AudienceResolver
func NewAudienceResolver(memberRepo repository.MemberRepository, staffRepo repository.StaffRepository) AudienceResolver {
	return &audienceResolver{memberRepo: memberRepo, staffRepo: staffRepo}
}

// Resolve returns the audience as members, ordered by display name. The
// ordering is presentation only. For a custom rule, ids that do not match
// a member are simply absent from the preview; they still count for
// roster generation via ResolveIDs.
func (r *audienceResolver) Resolve(meeting *domain.Meeting) ([]*domain.Member, error) {
	rule, err := meeting.TargetingRule()
	if err != nil {
		return nil, err
	}

	var members []*domain.Member
	switch t := rule.(type) {
	case domain.TargetAll:
		members, err = r.memberRepo.ListActiveClass()
	case domain.TargetByDivision:
		// Empty selector resolves to an empty audience, never to everyone.
		members, err = r.memberRepo.ListByDivisions(t.Divisions)
	case domain.TargetByRole:
		members, err = r.memberRepo.ListByRoles(t.Roles)
	case domain.TargetProgramTeam:
		members, err = r.resolveProgramTeam(meeting)
	case domain.TargetCustom:
		if len(t.MemberIDs) == 0 {
			return []*domain.Member{}, nil
		}
		members, err = r.memberRepo.FindByIDs(dedupIDs(t.MemberIDs))
	}
	if err != nil {
		return nil, err
	}
	if members == nil {
		members = []*domain.Member{}
	}

	sort.SliceStable(members, func(i, j int) bool {
		a, b := members[i].DisplayName(), members[j].DisplayName()
		if a == b {
			return members[i].ID < members[j].ID
		}
		return a < b
	})
	return members, nil
}

// ResolveIDs returns the audience as member ids. A custom rule passes its
// ids through without existence filtering; a dangling id surfaces later at
// write time, not here.
func (r *audienceResolver) ResolveIDs(meeting *domain.Meeting) ([]uint, error) {
	rule, err := meeting.TargetingRule()
	if err != nil {
		return nil, err
	}

	if t, ok := rule.(domain.TargetCustom); ok {
		return dedupIDs(t.MemberIDs), nil
	}

	members, err := r.Resolve(meeting)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, len(members))
	for i, m := range members {
		ids[i] = m.ID
	}
	return ids, nil
}

// resolveProgramTeam resolves staffed seats of the linked program. A
// meeting without a linked program has an empty program-team audience.
func (r *audienceResolver) resolveProgramTeam(meeting *domain.Meeting) ([]*domain.Member, error) {
	if meeting.ProgramID == nil {
		return []*domain.Member{}, nil
	}
	ids, err := r.staffRepo.ListMemberIDsByProgram(*meeting.ProgramID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*domain.Member{}, nil
	}
	return r.memberRepo.FindByIDs(ids)
}

func dedupIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
