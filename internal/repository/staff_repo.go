package repository

import (
	"github.com/sinergi-org/sinergi-backend/internal/domain"
	"gorm.io/gorm"
)

// StaffRepository program staffing read access interface
type StaffRepository interface {
	ListByProgram(programID uint) ([]*domain.ProgramStaffAssignment, error)
	ListMemberIDsByProgram(programID uint) ([]uint, error)
}

type staffRepository struct {
	db *gorm.DB
}

// NewStaffRepository creates a new StaffRepository
func NewStaffRepository(db *gorm.DB) StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) ListByProgram(programID uint) ([]*domain.ProgramStaffAssignment, error) {
	var assignments []*domain.ProgramStaffAssignment
	err := r.db.Preload("Member").
		Where("program_id = ?", programID).
		Order("id ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// ListMemberIDsByProgram returns the member ids of filled seats, one entry
// per member even when a member holds several seats. Unfilled seats
// (member_id IS NULL) are skipped.
func (r *staffRepository) ListMemberIDsByProgram(programID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&domain.ProgramStaffAssignment{}).
		Where("program_id = ? AND member_id IS NOT NULL", programID).
		Distinct().
		Pluck("member_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
