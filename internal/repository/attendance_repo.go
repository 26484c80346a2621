package repository

import (
	"errors"

	"github.com/sinergi-org/sinergi-backend/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AttendanceRepository attendance record data access interface. Every
// writer goes through an upsert clause keyed on (meeting_id, member_id);
// the unique index makes concurrent writers converge on one row.
type AttendanceRepository interface {
	ListByMeeting(meetingID uint) ([]*domain.AttendanceRecord, error)
	MemberIDsByMeeting(meetingID uint) ([]uint, error)
	InsertMissing(records []*domain.AttendanceRecord) error
	UpsertBatch(records []*domain.AttendanceRecord) error
	Upsert(record *domain.AttendanceRecord) error
	FindByKey(meetingID, memberID uint) (*domain.AttendanceRecord, error)
	Delete(meetingID, memberID uint) error
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) ListByMeeting(meetingID uint) ([]*domain.AttendanceRecord, error) {
	var records []*domain.AttendanceRecord
	err := r.db.Preload("Member").
		Where("meeting_id = ?", meetingID).
		Order("id ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *attendanceRepository) MemberIDsByMeeting(meetingID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&domain.AttendanceRecord{}).
		Where("meeting_id = ?", meetingID).
		Pluck("member_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// InsertMissing inserts seed rows, silently skipping members that already
// have one. Existing rows are never touched, which is what makes roster
// generation idempotent even under concurrent calls.
func (r *attendanceRepository) InsertMissing(records []*domain.AttendanceRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "meeting_id"}, {Name: "member_id"}},
		DoNothing: true,
	}).Create(&records).Error
}

// UpsertBatch applies every record or none. Runs in one transaction so a
// storage failure midway rolls the whole batch back.
func (r *attendanceRepository) UpsertBatch(records []*domain.AttendanceRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, record := range records {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "meeting_id"}, {Name: "member_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"status", "note", "updated_at"}),
			}).Create(record).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *attendanceRepository) Upsert(record *domain.AttendanceRecord) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "meeting_id"}, {Name: "member_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "note", "updated_at"}),
	}).Create(record).Error
}

func (r *attendanceRepository) FindByKey(meetingID, memberID uint) (*domain.AttendanceRecord, error) {
	var record domain.AttendanceRecord
	err := r.db.Preload("Member").
		Where("meeting_id = ? AND member_id = ?", meetingID, memberID).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Delete removes the record for the composite key. Deleting a record that
// does not exist is a no-op, not an error.
func (r *attendanceRepository) Delete(meetingID, memberID uint) error {
	err := r.db.
		Where("meeting_id = ? AND member_id = ?", meetingID, memberID).
		Delete(&domain.AttendanceRecord{}).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
