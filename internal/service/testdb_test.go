package service

import (
	"testing"

	"github.com/sinergi-org/sinergi-backend/internal/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	err = db.AutoMigrate(
		&domain.Account{},
		&domain.Member{},
		&domain.Program{},
		&domain.ProgramLeadChange{},
		&domain.ProgramStaffAssignment{},
		&domain.Meeting{},
		&domain.AttendanceRecord{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func seedMember(t *testing.T, db *gorm.DB, id uint, name, division, status string) {
	t.Helper()
	m := &domain.Member{ID: id, FullName: name, MembershipStatus: status}
	if division != "" {
		m.Division = &division
	}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("failed to seed member %d: %v", id, err)
	}
}

func seedAccount(t *testing.T, db *gorm.DB, id uint, username, role string) {
	t.Helper()
	a := &domain.Account{ID: id, Username: username, Role: role}
	if err := db.Create(a).Error; err != nil {
		t.Fatalf("failed to seed account %d: %v", id, err)
	}
}

func linkAccount(t *testing.T, db *gorm.DB, memberID, accountID uint) {
	t.Helper()
	err := db.Model(&domain.Member{}).
		Where("id = ?", memberID).
		Update("account_id", accountID).Error
	if err != nil {
		t.Fatalf("failed to link member %d to account %d: %v", memberID, accountID, err)
	}
}
