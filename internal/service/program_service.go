package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sinergi-org/sinergi-backend/internal/common"
	"github.com/sinergi-org/sinergi-backend/internal/domain"
	"github.com/sinergi-org/sinergi-backend/internal/repository"
	pkgcache "github.com/sinergi-org/sinergi-backend/pkg/cache"
	"gorm.io/gorm"
)

// ProgramService program lifecycle business logic
type ProgramService interface {
	Get(ctx context.Context, programID uint) (*domain.Program, error)
	ListTeam(programID uint) ([]*domain.ProgramStaffAssignment, error)
	TransitionStatus(ctx context.Context, programID uint, requested string, actor *domain.Actor) (*domain.Program, error)
	ChangeLead(ctx context.Context, programID uint, newLeadID *uint, actor *domain.Actor) (*domain.Program, error)
}

type programService struct {
	programRepo repository.ProgramRepository
	memberRepo  repository.MemberRepository
	staffRepo   repository.StaffRepository
	guard       AccessGuard
	cache       pkgcache.Service
}

// NewProgramService creates a new ProgramService. cache may be nil; program
// details then always read from storage.
func NewProgramService(
	programRepo repository.ProgramRepository,
	memberRepo repository.MemberRepository,
	staffRepo repository.StaffRepository,
	guard AccessGuard,
	cache pkgcache.Service,
) ProgramService {
	return &programService{
		programRepo: programRepo,
		memberRepo:  memberRepo,
		staffRepo:   staffRepo,
		guard:       guard,
		cache:       cache,
	}
}

func programDetailKey(programID uint) string {
	return fmt.Sprintf("%sdetail:%d", pkgcache.PrefixPrograms, programID)
}

// Get returns the program with its lead history. Served from cache when a
// fresh entry exists; every mutation on the program invalidates it.
func (s *programService) Get(ctx context.Context, programID uint) (*domain.Program, error) {
	if s.cache != nil {
		var cached domain.Program
		if err := s.cache.Get(ctx, programDetailKey(programID), &cached); err == nil {
			return &cached, nil
		}
	}

	program, err := s.findWithHistory(programID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, programDetailKey(programID), program, pkgcache.TTLDefault)
	}
	return program, nil
}

// ListTeam returns the program's staffing seats, filled or not
func (s *programService) ListTeam(programID uint) ([]*domain.ProgramStaffAssignment, error) {
	if _, err := s.findProgram(programID); err != nil {
		return nil, err
	}
	return s.staffRepo.ListByProgram(programID)
}

// TransitionStatus moves the program through its lifecycle under the same
// fresh-status guard as meetings.
func (s *programService) TransitionStatus(ctx context.Context, programID uint, requested string, actor *domain.Actor) (*domain.Program, error) {
	program, err := s.findProgram(programID)
	if err != nil {
		return nil, err
	}
	if !s.guard.CanManageProgram(actor, program) {
		return nil, common.ErrForbidden
	}
	if !domain.IsValidProgramStatus(requested) {
		return nil, common.ErrInvalidTransition
	}

	for attempt := 0; attempt < 2; attempt++ {
		if !domain.CanTransition(domain.KindProgram, program.Status, requested) {
			return nil, common.ErrInvalidTransition
		}
		ok, err := s.programRepo.UpdateStatusIf(programID, program.Status, requested)
		if err != nil {
			return nil, err
		}
		if ok {
			program.Status = requested
			s.invalidateDetail(ctx, programID)
			return program, nil
		}
		if program, err = s.findProgram(programID); err != nil {
			return nil, err
		}
	}
	return nil, common.ErrInvalidTransition
}

// ChangeLead sets a new lead (or clears it with nil) and appends one
// history entry recording who changed what. The history never shrinks.
func (s *programService) ChangeLead(ctx context.Context, programID uint, newLeadID *uint, actor *domain.Actor) (*domain.Program, error) {
	program, err := s.findProgram(programID)
	if err != nil {
		return nil, err
	}
	if !s.guard.CanManageProgram(actor, program) {
		return nil, common.ErrForbidden
	}

	if newLeadID != nil {
		existing, err := s.memberRepo.ExistingIDs([]uint{*newLeadID})
		if err != nil {
			return nil, err
		}
		if !existing[*newLeadID] {
			return nil, common.ErrMemberNotFound
		}
	}

	if err := s.programRepo.ChangeLead(programID, newLeadID, actor.MemberID); err != nil {
		return nil, err
	}
	s.invalidateDetail(ctx, programID)
	return s.findWithHistory(programID)
}

func (s *programService) invalidateDetail(ctx context.Context, programID uint) {
	if s.cache != nil {
		_ = s.cache.Delete(ctx, programDetailKey(programID))
	}
}

func (s *programService) findProgram(programID uint) (*domain.Program, error) {
	program, err := s.programRepo.FindByID(programID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrProgramNotFound
		}
		return nil, err
	}
	return program, nil
}

func (s *programService) findWithHistory(programID uint) (*domain.Program, error) {
	program, err := s.programRepo.FindWithHistory(programID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrProgramNotFound
		}
		return nil, err
	}
	return program, nil
}
