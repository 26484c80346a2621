package repository

import (
	"github.com/sinergi-org/sinergi-backend/internal/domain"
	"gorm.io/gorm"
)

// MemberRepository member read access interface. The core never mutates
// members; administrative CRUD lives outside it.
type MemberRepository interface {
	FindByID(id uint) (*domain.Member, error)
	FindByIDs(ids []uint) ([]*domain.Member, error)
	ListActiveClass() ([]*domain.Member, error)
	ListByDivisions(divisions []string) ([]*domain.Member, error)
	ListByRoles(roles []string) ([]*domain.Member, error)
	ExistingIDs(ids []uint) (map[uint]bool, error)
	FindAll(page, limit int) ([]*domain.Member, int64, error)
}

type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new MemberRepository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) FindByID(id uint) (*domain.Member, error) {
	var member domain.Member
	if err := r.db.Preload("Account").First(&member, id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindByIDs(ids []uint) ([]*domain.Member, error) {
	if len(ids) == 0 {
		return []*domain.Member{}, nil
	}
	var members []*domain.Member
	if err := r.db.Preload("Account").Where("id IN ?", ids).Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *memberRepository) ListActiveClass() ([]*domain.Member, error) {
	var members []*domain.Member
	err := r.db.
		Where("membership_status IN ?", domain.ActiveMembershipStatuses).
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// ListByDivisions filters by division only. Membership status is
// deliberately not restricted here: division targeting reaches every
// member of the division, active or not.
func (r *memberRepository) ListByDivisions(divisions []string) ([]*domain.Member, error) {
	if len(divisions) == 0 {
		return []*domain.Member{}, nil
	}
	var members []*domain.Member
	if err := r.db.Where("division IN ?", divisions).Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// ListByRoles joins members to accounts and filters by account role.
// Members without a linked account never match.
func (r *memberRepository) ListByRoles(roles []string) ([]*domain.Member, error) {
	if len(roles) == 0 {
		return []*domain.Member{}, nil
	}
	var members []*domain.Member
	err := r.db.
		Joins("JOIN accounts ON accounts.id = members.account_id").
		Where("accounts.role IN ?", roles).
		Distinct("members.*").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *memberRepository) ExistingIDs(ids []uint) (map[uint]bool, error) {
	existing := make(map[uint]bool, len(ids))
	if len(ids) == 0 {
		return existing, nil
	}
	var found []uint
	err := r.db.Model(&domain.Member{}).
		Where("id IN ?", ids).
		Pluck("id", &found).Error
	if err != nil {
		return nil, err
	}
	for _, id := range found {
		existing[id] = true
	}
	return existing, nil
}

func (r *memberRepository) FindAll(page, limit int) ([]*domain.Member, int64, error) {
	var members []*domain.Member
	var total int64

	if err := r.db.Model(&domain.Member{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := r.db.Preload("Account").
		Order("full_name ASC").
		Offset(offset).Limit(limit).
		Find(&members).Error
	if err != nil {
		return nil, 0, err
	}
	return members, total, nil
}
