package domain

import (
	"time"
)

// Program status values
const (
	ProgramStatusDraft     = "draft"
	ProgramStatusActive    = "active"
	ProgramStatusCompleted = "completed"
	ProgramStatusCancelled = "cancelled"
)

// Program work program / "proker" (programs table)
type Program struct {
	ID           uint                `gorm:"column:id;primaryKey" json:"id"`
	Name         string              `gorm:"column:name" json:"name"`
	Description  string              `gorm:"column:description" json:"description,omitempty"`
	Status       string              `gorm:"column:status;default:draft" json:"status"`
	LeadMemberID *uint               `gorm:"column:lead_member_id" json:"lead_member_id,omitempty"`
	LeadMember   *Member             `gorm:"foreignKey:LeadMemberID" json:"lead_member,omitempty"`
	PeriodYear   int                 `gorm:"column:period_year" json:"period_year,omitempty"`
	LeadHistory  []ProgramLeadChange `gorm:"foreignKey:ProgramID" json:"lead_history,omitempty"`
	CreatedAt    time.Time           `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time           `gorm:"column:updated_at" json:"-"`
}

func (Program) TableName() string {
	return "programs"
}

// ProgramLeadChange one entry of the append-only lead history
// (program_lead_changes table). Rows are only ever inserted, never updated
// or deleted; every change of lead_member_id appends exactly one entry.
type ProgramLeadChange struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	ProgramID uint      `gorm:"column:program_id;index" json:"program_id"`
	OldLeadID *uint     `gorm:"column:old_lead_id" json:"old_lead_id"`
	NewLeadID *uint     `gorm:"column:new_lead_id" json:"new_lead_id"`
	ChangedBy uint      `gorm:"column:changed_by" json:"changed_by"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (ProgramLeadChange) TableName() string {
	return "program_lead_changes"
}

// ProgramStaffAssignment one seat in a program's staffing structure
// (program_staff_assignments table). member_id is nullable: an unfilled
// seat keeps its row.
type ProgramStaffAssignment struct {
	ID          uint      `gorm:"column:id;primaryKey" json:"id"`
	ProgramID   uint      `gorm:"column:program_id;index" json:"program_id"`
	MemberID    *uint     `gorm:"column:member_id" json:"member_id"`
	Member      *Member   `gorm:"foreignKey:MemberID" json:"member,omitempty"`
	RoleTitle   string    `gorm:"column:role_title" json:"role_title"`
	SubDivision string    `gorm:"column:sub_division" json:"sub_division,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"-"`
}

func (ProgramStaffAssignment) TableName() string {
	return "program_staff_assignments"
}
