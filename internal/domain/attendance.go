package domain

import (
	"time"
)

// Attendance status values
const (
	AttendancePresent = "present"
	AttendanceExcused = "excused"
	AttendanceSick    = "sick"
	AttendanceAbsent  = "absent"
)

// AttendanceStatuses all valid attendance status values
var AttendanceStatuses = []string{AttendancePresent, AttendanceExcused, AttendanceSick, AttendanceAbsent}

// IsValidAttendanceStatus reports whether s is one of the four statuses
func IsValidAttendanceStatus(s string) bool {
	for _, v := range AttendanceStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// AttendanceRecord one member's attendance row for one meeting
// (attendance_records table). At most one row per (meeting_id, member_id);
// the unique index backs the upsert clauses in the repository, writers
// never rely on a read-then-insert sequence.
type AttendanceRecord struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	MeetingID uint      `gorm:"column:meeting_id;uniqueIndex:idx_attendance_meeting_member" json:"meeting_id"`
	MemberID  uint      `gorm:"column:member_id;uniqueIndex:idx_attendance_meeting_member" json:"member_id"`
	Member    *Member   `gorm:"foreignKey:MemberID" json:"member,omitempty"`
	Status    string    `gorm:"column:status;default:absent" json:"status"`
	Note      *string   `gorm:"column:note;type:text" json:"note,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

// AttendanceResponse attendance row with member identity attached
type AttendanceResponse struct {
	ID        uint            `json:"id"`
	MeetingID uint            `json:"meeting_id"`
	MemberID  uint            `json:"member_id"`
	Member    *MemberResponse `json:"member,omitempty"`
	Status    string          `json:"status"`
	Note      *string         `json:"note,omitempty"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToResponse converts an AttendanceRecord to its API view
func (r *AttendanceRecord) ToResponse() *AttendanceResponse {
	resp := &AttendanceResponse{
		ID:        r.ID,
		MeetingID: r.MeetingID,
		MemberID:  r.MemberID,
		Status:    r.Status,
		Note:      r.Note,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Member != nil {
		resp.Member = r.Member.ToResponse()
	}
	return resp
}
