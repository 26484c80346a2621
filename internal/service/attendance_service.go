package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sinergi-org/sinergi-backend/internal/common"
	"github.com/sinergi-org/sinergi-backend/internal/domain"
	"github.com/sinergi-org/sinergi-backend/internal/repository"
	"gorm.io/gorm"
)

// ReconcileItem one entry of a bulk attendance update
type ReconcileItem struct {
	MemberID uint    `json:"member_id" validate:"required"`
	Status   string  `json:"status" validate:"required,oneof=present excused sick absent"`
	Note     *string `json:"note,omitempty"`
}

// AttendanceService owns the persisted attendance roster of a meeting.
// Every operation checks attendance authorization before touching storage;
// an unauthorized call fails with ErrForbidden and changes nothing.
type AttendanceService interface {
	Generate(meetingID uint, actor *domain.Actor) ([]*domain.AttendanceResponse, error)
	List(meetingID uint, actor *domain.Actor) ([]*domain.AttendanceResponse, error)
	Reconcile(meetingID uint, actor *domain.Actor, items []ReconcileItem) error
	AddManual(meetingID uint, actor *domain.Actor, memberID uint, status string, note *string) (*domain.AttendanceResponse, error)
	Remove(meetingID uint, actor *domain.Actor, memberID uint) error
}

type attendanceService struct {
	meetingRepo    repository.MeetingRepository
	memberRepo     repository.MemberRepository
	attendanceRepo repository.AttendanceRepository
	resolver       AudienceResolver
	guard          AccessGuard
	validate       *validator.Validate
}

// NewAttendanceService creates a new AttendanceService
func NewAttendanceService(
	meetingRepo repository.MeetingRepository,
	memberRepo repository.MemberRepository,
	attendanceRepo repository.AttendanceRepository,
	resolver AudienceResolver,
	guard AccessGuard,
) AttendanceService {
	return &attendanceService{
		meetingRepo:    meetingRepo,
		memberRepo:     memberRepo,
		attendanceRepo: attendanceRepo,
		resolver:       resolver,
		guard:          guard,
		validate:       validator.New(),
	}
}

// authorize loads the meeting and checks attendance authorization. The
// guard runs before any item validation so an unauthorized caller learns
// nothing beyond the denial.
func (s *attendanceService) authorize(meetingID uint, actor *domain.Actor) (*domain.Meeting, error) {
	meeting, err := s.meetingRepo.FindByID(meetingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrMeetingNotFound
		}
		return nil, err
	}
	if !s.guard.CanManageAttendance(actor, meeting) {
		return nil, common.ErrForbidden
	}
	return meeting, nil
}

// Generate seeds the roster from the resolved audience. Members already on
// the roster keep their row untouched; only missing members get a new row
// with status absent. Calling it again without roster changes inserts
// nothing, and it never deletes.
func (s *attendanceService) Generate(meetingID uint, actor *domain.Actor) ([]*domain.AttendanceResponse, error) {
	meeting, err := s.authorize(meetingID, actor)
	if err != nil {
		return nil, err
	}

	resolved, err := s.resolver.ResolveIDs(meeting)
	if err != nil {
		return nil, err
	}

	existing, err := s.attendanceRepo.MemberIDsByMeeting(meetingID)
	if err != nil {
		return nil, err
	}
	onRoster := make(map[uint]bool, len(existing))
	for _, id := range existing {
		onRoster[id] = true
	}

	var missing []*domain.AttendanceRecord
	for _, memberID := range resolved {
		if onRoster[memberID] {
			continue
		}
		missing = append(missing, &domain.AttendanceRecord{
			MeetingID: meetingID,
			MemberID:  memberID,
			Status:    domain.AttendanceAbsent,
		})
	}

	// The insert skips conflicting rows, so a concurrent generate or
	// manual add for the same member cannot produce duplicates.
	if err := s.attendanceRepo.InsertMissing(missing); err != nil {
		return nil, err
	}

	return s.listResponses(meetingID)
}

// List returns the current roster
func (s *attendanceService) List(meetingID uint, actor *domain.Actor) ([]*domain.AttendanceResponse, error) {
	if _, err := s.authorize(meetingID, actor); err != nil {
		return nil, err
	}
	return s.listResponses(meetingID)
}

// Reconcile applies a bulk status upsert. The whole batch is validated
// before any write: every status must be one of the four values and every
// member id must exist. Any violation rejects the batch with a
// ValidationError naming the offending items; on success either all items
// are applied or none.
func (s *attendanceService) Reconcile(meetingID uint, actor *domain.Actor, items []ReconcileItem) error {
	if _, err := s.authorize(meetingID, actor); err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	var invalid []common.ValidationItem
	memberIDs := make([]uint, 0, len(items))
	for i, item := range items {
		if err := s.validate.Struct(item); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				for _, fe := range verrs {
					if fe.Field() == "MemberID" {
						invalid = append(invalid, common.ValidationItem{
							Index:   i,
							Field:   "member_id",
							Message: "member_id is required",
						})
					} else {
						invalid = append(invalid, common.ValidationItem{
							Index:   i,
							Field:   "status",
							Message: fmt.Sprintf("status %q is not a valid attendance status", item.Status),
						})
					}
				}
			}
			continue
		}
		memberIDs = append(memberIDs, item.MemberID)
	}

	existing, err := s.memberRepo.ExistingIDs(memberIDs)
	if err != nil {
		return err
	}
	for i, item := range items {
		if item.MemberID != 0 && domain.IsValidAttendanceStatus(item.Status) && !existing[item.MemberID] {
			invalid = append(invalid, common.ValidationItem{
				Index:   i,
				Field:   "member_id",
				Message: fmt.Sprintf("member %d does not exist", item.MemberID),
			})
		}
	}
	if len(invalid) > 0 {
		return common.NewValidationError(invalid...)
	}

	records := make([]*domain.AttendanceRecord, len(items))
	for i, item := range items {
		records[i] = &domain.AttendanceRecord{
			MeetingID: meetingID,
			MemberID:  item.MemberID,
			Status:    item.Status,
			Note:      item.Note,
		}
	}
	return s.attendanceRepo.UpsertBatch(records)
}

// AddManual adds (or updates) a single member on the roster. Defaults to
// present: a manual add usually records someone who showed up outside the
// computed audience. Upserts on the composite key, so adding an already
// listed member updates their row instead of duplicating it.
func (s *attendanceService) AddManual(meetingID uint, actor *domain.Actor, memberID uint, status string, note *string) (*domain.AttendanceResponse, error) {
	if _, err := s.authorize(meetingID, actor); err != nil {
		return nil, err
	}

	if status == "" {
		status = domain.AttendancePresent
	}
	if !domain.IsValidAttendanceStatus(status) {
		return nil, common.NewValidationError(common.ValidationItem{
			Field:   "status",
			Message: fmt.Sprintf("status %q is not a valid attendance status", status),
		})
	}
	existing, err := s.memberRepo.ExistingIDs([]uint{memberID})
	if err != nil {
		return nil, err
	}
	if !existing[memberID] {
		return nil, common.NewValidationError(common.ValidationItem{
			Field:   "member_id",
			Message: fmt.Sprintf("member %d does not exist", memberID),
		})
	}

	record := &domain.AttendanceRecord{
		MeetingID: meetingID,
		MemberID:  memberID,
		Status:    status,
		Note:      note,
	}
	if err := s.attendanceRepo.Upsert(record); err != nil {
		return nil, err
	}

	saved, err := s.attendanceRepo.FindByKey(meetingID, memberID)
	if err != nil {
		return nil, err
	}
	return saved.ToResponse(), nil
}

// Remove deletes the member's record if present; absent is a no-op
func (s *attendanceService) Remove(meetingID uint, actor *domain.Actor, memberID uint) error {
	if _, err := s.authorize(meetingID, actor); err != nil {
		return err
	}
	return s.attendanceRepo.Delete(meetingID, memberID)
}

func (s *attendanceService) listResponses(meetingID uint) ([]*domain.AttendanceResponse, error) {
	records, err := s.attendanceRepo.ListByMeeting(meetingID)
	if err != nil {
		return nil, err
	}
	responses := make([]*domain.AttendanceResponse, len(records))
	for i, record := range records {
		responses[i] = record.ToResponse()
	}
	return responses, nil
}
