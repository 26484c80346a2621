package repository

import (
	"github.com/sinergi-org/sinergi-backend/internal/domain"
	"gorm.io/gorm"
)

// ProgramRepository program data access interface
type ProgramRepository interface {
	FindByID(id uint) (*domain.Program, error)
	FindWithHistory(id uint) (*domain.Program, error)
	UpdateStatusIf(id uint, current, requested string) (bool, error)
	ChangeLead(programID uint, newLeadID *uint, changedBy uint) error
}

type programRepository struct {
	db *gorm.DB
}

// NewProgramRepository creates a new ProgramRepository
func NewProgramRepository(db *gorm.DB) ProgramRepository {
	return &programRepository{db: db}
}

func (r *programRepository) FindByID(id uint) (*domain.Program, error) {
	var program domain.Program
	if err := r.db.First(&program, id).Error; err != nil {
		return nil, err
	}
	return &program, nil
}

func (r *programRepository) FindWithHistory(id uint) (*domain.Program, error) {
	var program domain.Program
	err := r.db.
		Preload("LeadMember").
		Preload("LeadHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("program_lead_changes.id ASC")
		}).
		First(&program, id).Error
	if err != nil {
		return nil, err
	}
	return &program, nil
}

// UpdateStatusIf moves the program to requested only when its stored status
// still equals current. Returns false when another writer got there first;
// the caller re-reads and validates against the fresh status.
func (r *programRepository) UpdateStatusIf(id uint, current, requested string) (bool, error) {
	result := r.db.Model(&domain.Program{}).
		Where("id = ? AND status = ?", id, current).
		Update("status", requested)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ChangeLead updates the program lead and appends the matching history row
// in one transaction. History rows are insert-only; this is the only writer.
func (r *programRepository) ChangeLead(programID uint, newLeadID *uint, changedBy uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var program domain.Program
		if err := tx.First(&program, programID).Error; err != nil {
			return err
		}

		change := domain.ProgramLeadChange{
			ProgramID: programID,
			OldLeadID: program.LeadMemberID,
			NewLeadID: newLeadID,
			ChangedBy: changedBy,
		}
		if err := tx.Create(&change).Error; err != nil {
			return err
		}

		return tx.Model(&program).Update("lead_member_id", newLeadID).Error
	})
}
