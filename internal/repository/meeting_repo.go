package repository

import (
	"github.com/sinergi-org/sinergi-backend/internal/domain"
	"gorm.io/gorm"
)

// MeetingRepository meeting data access interface
type MeetingRepository interface {
	Create(meeting *domain.Meeting) error
	FindByID(id uint) (*domain.Meeting, error)
	UpdateStatusIf(id uint, current, requested string) (bool, error)
	UpdateNotes(id uint, notes string) error
}

type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new MeetingRepository
func NewMeetingRepository(db *gorm.DB) MeetingRepository {
	return &meetingRepository{db: db}
}

func (r *meetingRepository) Create(meeting *domain.Meeting) error {
	return r.db.Create(meeting).Error
}

func (r *meetingRepository) FindByID(id uint) (*domain.Meeting, error) {
	var meeting domain.Meeting
	if err := r.db.First(&meeting, id).Error; err != nil {
		return nil, err
	}
	return &meeting, nil
}

// UpdateStatusIf moves the meeting to requested only when its stored status
// still equals current. Returns false on a stale snapshot.
func (r *meetingRepository) UpdateStatusIf(id uint, current, requested string) (bool, error) {
	result := r.db.Model(&domain.Meeting{}).
		Where("id = ? AND status = ?", id, current).
		Update("status", requested)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *meetingRepository) UpdateNotes(id uint, notes string) error {
	return r.db.Model(&domain.Meeting{}).
		Where("id = ?", id).
		Update("notes", notes).Error
}
