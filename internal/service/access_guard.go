package service

import (
	"github.com/sinergi-org/sinergi-backend/internal/domain"
)

// AccessGuard answers whether an actor may manage an entity. Pure
// predicates over the actor's identity and role; callers load the entity
// and translate a denial into the external error. Consolidates the
// ownership/role checks so entry points do not repeat boolean logic.
type AccessGuard interface {
	CanManageProgram(actor *domain.Actor, program *domain.Program) bool
	CanManageMeeting(actor *domain.Actor, meeting *domain.Meeting) bool
	CanManageAttendance(actor *domain.Actor, meeting *domain.Meeting) bool
}

type accessGuard struct{}

// NewAccessGuard creates a new AccessGuard
func NewAccessGuard() AccessGuard {
	return &accessGuard{}
}

// CanManageProgram current lead or the chair
func (g *accessGuard) CanManageProgram(actor *domain.Actor, program *domain.Program) bool {
	if actor == nil || program == nil {
		return false
	}
	if actor.Role == domain.RoleChair {
		return true
	}
	return program.LeadMemberID != nil && *program.LeadMemberID == actor.MemberID
}

// CanManageMeeting creator or the chair. Covers edit, status changes and
// notes.
func (g *accessGuard) CanManageMeeting(actor *domain.Actor, meeting *domain.Meeting) bool {
	if actor == nil || meeting == nil {
		return false
	}
	if actor.Role == domain.RoleChair {
		return true
	}
	return meeting.CreatedBy == actor.MemberID
}

// CanManageAttendance a wider set than general edit: attendance-taking is
// delegated to the vice chair and secretary as well.
func (g *accessGuard) CanManageAttendance(actor *domain.Actor, meeting *domain.Meeting) bool {
	if actor == nil || meeting == nil {
		return false
	}
	if actor.Role == domain.RoleViceChair || actor.Role == domain.RoleSecretary {
		return true
	}
	return g.CanManageMeeting(actor, meeting)
}
