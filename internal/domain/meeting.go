package domain

import (
	"time"
)

// Meeting status values
const (
	MeetingStatusDraft      = "draft"
	MeetingStatusScheduled  = "scheduled"
	MeetingStatusInProgress = "in_progress"
	MeetingStatusCompleted  = "completed"
	MeetingStatusCancelled  = "cancelled"
)

// Meeting category values
const (
	MeetingCategoryProgram = "program"
	MeetingCategoryGeneral = "general"
)

// Meeting organization meeting / "rapat" (meetings table).
// target_type and target_params together persist the targeting rule;
// TargetingRule() parses them into the typed rule.
type Meeting struct {
	ID           uint      `gorm:"column:id;primaryKey" json:"id"`
	Title        string    `gorm:"column:title" json:"title"`
	Status       string    `gorm:"column:status;default:draft" json:"status"`
	Category     string    `gorm:"column:category" json:"category"`
	ProgramID    *uint     `gorm:"column:program_id" json:"program_id,omitempty"`
	Program      *Program  `gorm:"foreignKey:ProgramID" json:"program,omitempty"`
	TargetType   string    `gorm:"column:target_type" json:"target_type"`
	TargetParams string    `gorm:"column:target_params;type:text" json:"-"`
	Location     string    `gorm:"column:location" json:"location,omitempty"`
	Date         time.Time `gorm:"column:date" json:"date"`
	Notes        string    `gorm:"column:notes;type:text" json:"notes,omitempty"`
	CreatedBy    uint      `gorm:"column:created_by" json:"created_by"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"-"`
}

func (Meeting) TableName() string {
	return "meetings"
}

// IsProgramLinked reports whether the meeting belongs to a program
func (m *Meeting) IsProgramLinked() bool {
	return m.Category == MeetingCategoryProgram
}

// MeetingResponse meeting view with the parsed targeting rule attached
type MeetingResponse struct {
	ID        uint        `json:"id"`
	Title     string      `json:"title"`
	Status    string      `json:"status"`
	Category  string      `json:"category"`
	ProgramID *uint       `json:"program_id,omitempty"`
	Target    *TargetView `json:"target"`
	Location  string      `json:"location,omitempty"`
	Date      time.Time   `json:"date"`
	Notes     string      `json:"notes,omitempty"`
	CreatedBy uint        `json:"created_by"`
	CreatedAt time.Time   `json:"created_at"`
}

// ToResponse converts a Meeting to its API view. A meeting whose stored
// rule no longer parses still renders, with a nil target.
func (m *Meeting) ToResponse() *MeetingResponse {
	resp := &MeetingResponse{
		ID:        m.ID,
		Title:     m.Title,
		Status:    m.Status,
		Category:  m.Category,
		ProgramID: m.ProgramID,
		Location:  m.Location,
		Date:      m.Date,
		Notes:     m.Notes,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
	}
	if rule, err := m.TargetingRule(); err == nil {
		resp.Target = rule.View()
	}
	return resp
}
