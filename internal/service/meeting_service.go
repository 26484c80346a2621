package service

import (
	"errors"
	"time"

	"github.com/sinergi-org/sinergi-backend/internal/common"
	"github.com/sinergi-org/sinergi-backend/internal/domain"
	"github.com/sinergi-org/sinergi-backend/internal/repository"
	"gorm.io/gorm"
)

// CreateMeetingInput parameters for creating a meeting
type CreateMeetingInput struct {
	Title     string
	Category  string
	ProgramID *uint
	Target    domain.TargetView
	Location  string
	Date      time.Time
	Notes     string
}

// MeetingService meeting lifecycle business logic
type MeetingService interface {
	Create(actor *domain.Actor, input CreateMeetingInput) (*domain.MeetingResponse, error)
	Get(meetingID uint) (*domain.MeetingResponse, error)
	TransitionStatus(meetingID uint, requested string, actor *domain.Actor) (*domain.MeetingResponse, error)
	ResolveAudience(meetingID uint) ([]*domain.MemberResponse, error)
	UpdateNotes(meetingID uint, actor *domain.Actor, notes string) (*domain.MeetingResponse, error)
}

type meetingService struct {
	meetingRepo repository.MeetingRepository
	programRepo repository.ProgramRepository
	resolver    AudienceResolver
	guard       AccessGuard
}

// NewMeetingService creates a new MeetingService
func NewMeetingService(
	meetingRepo repository.MeetingRepository,
	programRepo repository.ProgramRepository,
	resolver AudienceResolver,
	guard AccessGuard,
) MeetingService {
	return &meetingService{
		meetingRepo: meetingRepo,
		programRepo: programRepo,
		resolver:    resolver,
		guard:       guard,
	}
}

// Create creates a draft meeting. A program-linked meeting must name an
// existing program; the targeting rule payload must match one of the known
// variants.
func (s *meetingService) Create(actor *domain.Actor, input CreateMeetingInput) (*domain.MeetingResponse, error) {
	if actor == nil {
		return nil, common.ErrForbidden
	}

	switch input.Category {
	case domain.MeetingCategoryProgram:
		if input.ProgramID == nil {
			return nil, common.NewValidationError(common.ValidationItem{
				Field:   "program_id",
				Message: "program_id is required for a program-linked meeting",
			})
		}
		if _, err := s.programRepo.FindByID(*input.ProgramID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, common.ErrProgramNotFound
			}
			return nil, err
		}
	case domain.MeetingCategoryGeneral:
		input.ProgramID = nil
	default:
		return nil, common.NewValidationError(common.ValidationItem{
			Field:   "category",
			Message: "category must be program or general",
		})
	}

	rule, err := ruleFromView(input.Target)
	if err != nil {
		return nil, err
	}

	meeting := &domain.Meeting{
		Title:     input.Title,
		Status:    domain.MeetingStatusDraft,
		Category:  input.Category,
		ProgramID: input.ProgramID,
		Location:  input.Location,
		Date:      input.Date,
		Notes:     input.Notes,
		CreatedBy: actor.MemberID,
	}
	if err := meeting.SetTargetingRule(rule); err != nil {
		return nil, err
	}
	if err := s.meetingRepo.Create(meeting); err != nil {
		return nil, err
	}
	return meeting.ToResponse(), nil
}

func (s *meetingService) Get(meetingID uint) (*domain.MeetingResponse, error) {
	meeting, err := s.findMeeting(meetingID)
	if err != nil {
		return nil, err
	}
	return meeting.ToResponse(), nil
}

// TransitionStatus moves the meeting through its lifecycle. The guarded
// update validates against the freshest stored status: when a concurrent
// transition wins the race, the request is re-checked against the new
// status instead of silently overwriting it.
func (s *meetingService) TransitionStatus(meetingID uint, requested string, actor *domain.Actor) (*domain.MeetingResponse, error) {
	meeting, err := s.findMeeting(meetingID)
	if err != nil {
		return nil, err
	}
	if !s.guard.CanManageMeeting(actor, meeting) {
		return nil, common.ErrForbidden
	}
	if !domain.IsValidMeetingStatus(requested) {
		return nil, common.ErrInvalidTransition
	}

	// Two attempts: one against the loaded snapshot, one against a fresh
	// re-read if a concurrent writer moved the status in between.
	for attempt := 0; attempt < 2; attempt++ {
		if !domain.CanTransition(domain.KindMeeting, meeting.Status, requested) {
			return nil, common.ErrInvalidTransition
		}
		ok, err := s.meetingRepo.UpdateStatusIf(meetingID, meeting.Status, requested)
		if err != nil {
			return nil, err
		}
		if ok {
			meeting.Status = requested
			return meeting.ToResponse(), nil
		}
		if meeting, err = s.findMeeting(meetingID); err != nil {
			return nil, err
		}
	}
	return nil, common.ErrInvalidTransition
}

// ResolveAudience previews the computed audience for a meeting. Reads
// current data every time; roster edits never affect it.
func (s *meetingService) ResolveAudience(meetingID uint) ([]*domain.MemberResponse, error) {
	meeting, err := s.findMeeting(meetingID)
	if err != nil {
		return nil, err
	}
	members, err := s.resolver.Resolve(meeting)
	if err != nil {
		return nil, err
	}
	responses := make([]*domain.MemberResponse, len(members))
	for i, m := range members {
		responses[i] = m.ToResponse()
	}
	return responses, nil
}

// UpdateNotes edits meeting notes. A completed meeting is read-only to
// ordinary editors; only the chair may still change it.
func (s *meetingService) UpdateNotes(meetingID uint, actor *domain.Actor, notes string) (*domain.MeetingResponse, error) {
	meeting, err := s.findMeeting(meetingID)
	if err != nil {
		return nil, err
	}
	if !s.guard.CanManageMeeting(actor, meeting) {
		return nil, common.ErrForbidden
	}
	if meeting.Status == domain.MeetingStatusCompleted && actor.Role != domain.RoleChair {
		return nil, common.ErrForbidden
	}
	if err := s.meetingRepo.UpdateNotes(meetingID, notes); err != nil {
		return nil, err
	}
	meeting.Notes = notes
	return meeting.ToResponse(), nil
}

func (s *meetingService) findMeeting(meetingID uint) (*domain.Meeting, error) {
	meeting, err := s.meetingRepo.FindByID(meetingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrMeetingNotFound
		}
		return nil, err
	}
	return meeting, nil
}

// ruleFromView builds the typed targeting rule from a request payload
func ruleFromView(view domain.TargetView) (domain.TargetingRule, error) {
	switch view.Type {
	case domain.TargetTypeAll:
		return domain.TargetAll{}, nil
	case domain.TargetTypeProgramTeam:
		return domain.TargetProgramTeam{}, nil
	case domain.TargetTypeDivision:
		return domain.TargetByDivision{Divisions: view.Divisions}, nil
	case domain.TargetTypeRole:
		return domain.TargetByRole{Roles: view.Roles}, nil
	case domain.TargetTypeCustom:
		return domain.TargetCustom{MemberIDs: view.MemberIDs}, nil
	default:
		return nil, common.NewValidationError(common.ValidationItem{
			Field:   "target.type",
			Message: "unknown targeting rule type",
		})
	}
}
