package domain

import (
	"time"
)

// Membership status values. The "active-class" subset (candidate, junior,
// full) is what blanket targeting considers currently participating.
const (
	MembershipCandidate = "candidate"
	MembershipJunior    = "junior"
	MembershipFull      = "full"
	MembershipInactive  = "inactive"
	MembershipAlumni    = "alumni"
)

// ActiveMembershipStatuses is the fixed active-class set used by "all"
// targeting. Not configurable.
var ActiveMembershipStatuses = []string{MembershipCandidate, MembershipJunior, MembershipFull}

// Division values
const (
	DivisionMusic      = "music"
	DivisionDance      = "dance"
	DivisionTheater    = "theater"
	DivisionMedia      = "media"
	DivisionExternal   = "external"
	DivisionProduction = "production"
)

// Account roles
const (
	RoleMember    = "member"
	RoleChair     = "chair"
	RoleViceChair = "vice_chair"
	RoleSecretary = "secretary"
	RoleTreasurer = "treasurer"
)

// Account login account linked to a member (accounts table)
type Account struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Username  string    `gorm:"column:username;uniqueIndex" json:"username"`
	Role      string    `gorm:"column:role;default:member" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"-"`
}

func (Account) TableName() string {
	return "accounts"
}

// Member organization member (members table)
type Member struct {
	ID               uint      `gorm:"column:id;primaryKey" json:"id"`
	FullName         string    `gorm:"column:full_name" json:"full_name"`
	Nickname         string    `gorm:"column:nickname" json:"nickname,omitempty"`
	Division         *string   `gorm:"column:division" json:"division,omitempty"`
	MembershipStatus string    `gorm:"column:membership_status;default:candidate" json:"membership_status"`
	AccountID        *uint     `gorm:"column:account_id" json:"-"`
	Account          *Account  `gorm:"foreignKey:AccountID" json:"account,omitempty"`
	JoinedYear       int       `gorm:"column:joined_year" json:"joined_year,omitempty"`
	CreatedAt        time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at" json:"-"`
}

func (Member) TableName() string {
	return "members"
}

// DisplayName returns the name used for presentation ordering
func (m *Member) DisplayName() string {
	if m.FullName != "" {
		return m.FullName
	}
	return m.Nickname
}

// IsActiveClass reports whether the member counts as currently participating
func (m *Member) IsActiveClass() bool {
	for _, s := range ActiveMembershipStatuses {
		if m.MembershipStatus == s {
			return true
		}
	}
	return false
}

// Actor is the authenticated caller as seen by authorization checks.
// Built by the auth middleware from verified JWT claims.
type Actor struct {
	MemberID uint   `json:"member_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// MemberResponse trimmed member view for listings and rosters
type MemberResponse struct {
	ID               uint    `json:"id"`
	FullName         string  `json:"full_name"`
	Nickname         string  `json:"nickname,omitempty"`
	Division         *string `json:"division,omitempty"`
	MembershipStatus string  `json:"membership_status"`
}

// ToResponse converts a Member to its trimmed view
func (m *Member) ToResponse() *MemberResponse {
	return &MemberResponse{
		ID:               m.ID,
		FullName:         m.FullName,
		Nickname:         m.Nickname,
		Division:         m.Division,
		MembershipStatus: m.MembershipStatus,
	}
}
