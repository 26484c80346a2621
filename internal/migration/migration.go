package migration

import (
	"github.com/sinergi-org/sinergi-backend/internal/domain"
	"gorm.io/gorm"
)

// Run migrates the core tables. The unique index on
// attendance_records(meeting_id, member_id) comes from the model tags and
// is what the upsert clauses in the repositories rely on.
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Account{},
		&domain.Member{},
		&domain.Program{},
		&domain.ProgramLeadChange{},
		&domain.ProgramStaffAssignment{},
		&domain.Meeting{},
		&domain.AttendanceRecord{},
	)
}
