package service

import (
	"testing"

	"github.com/sinergi-org/sinergi-backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func uintPtr(v uint) *uint { return &v }

func TestAccessGuard_CanManageProgram(t *testing.T) {
	guard := NewAccessGuard()
	program := &domain.Program{ID: 1, LeadMemberID: uintPtr(7)}

	tests := []struct {
		name  string
		actor *domain.Actor
		want  bool
	}{
		{"nil actor denied", nil, false},
		{"program lead allowed", &domain.Actor{MemberID: 7, Role: domain.RoleMember}, true},
		{"chair allowed", &domain.Actor{MemberID: 99, Role: domain.RoleChair}, true},
		{"other member denied", &domain.Actor{MemberID: 8, Role: domain.RoleMember}, false},
		{"secretary denied for program", &domain.Actor{MemberID: 8, Role: domain.RoleSecretary}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, guard.CanManageProgram(tt.actor, program))
		})
	}
}

func TestAccessGuard_CanManageProgram_NoLead(t *testing.T) {
	guard := NewAccessGuard()
	program := &domain.Program{ID: 1, LeadMemberID: nil}

	assert.False(t, guard.CanManageProgram(&domain.Actor{MemberID: 7, Role: domain.RoleMember}, program))
	assert.True(t, guard.CanManageProgram(&domain.Actor{MemberID: 7, Role: domain.RoleChair}, program))
}

func TestAccessGuard_CanManageMeeting(t *testing.T) {
	guard := NewAccessGuard()
	meeting := &domain.Meeting{ID: 1, CreatedBy: 5}

	tests := []struct {
		name  string
		actor *domain.Actor
		want  bool
	}{
		{"nil actor denied", nil, false},
		{"creator allowed", &domain.Actor{MemberID: 5, Role: domain.RoleMember}, true},
		{"chair allowed", &domain.Actor{MemberID: 9, Role: domain.RoleChair}, true},
		{"secretary denied for general edit", &domain.Actor{MemberID: 9, Role: domain.RoleSecretary}, false},
		{"vice chair denied for general edit", &domain.Actor{MemberID: 9, Role: domain.RoleViceChair}, false},
		{"other member denied", &domain.Actor{MemberID: 9, Role: domain.RoleMember}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, guard.CanManageMeeting(tt.actor, meeting))
		})
	}
}

func TestAccessGuard_CanManageAttendance_WiderThanEdit(t *testing.T) {
	guard := NewAccessGuard()
	meeting := &domain.Meeting{ID: 1, CreatedBy: 5}

	// Attendance-taking is delegated beyond general edit rights.
	secretary := &domain.Actor{MemberID: 9, Role: domain.RoleSecretary}
	viceChair := &domain.Actor{MemberID: 9, Role: domain.RoleViceChair}
	treasurer := &domain.Actor{MemberID: 9, Role: domain.RoleTreasurer}

	assert.True(t, guard.CanManageAttendance(secretary, meeting))
	assert.True(t, guard.CanManageAttendance(viceChair, meeting))
	assert.True(t, guard.CanManageAttendance(&domain.Actor{MemberID: 5, Role: domain.RoleMember}, meeting))
	assert.True(t, guard.CanManageAttendance(&domain.Actor{MemberID: 9, Role: domain.RoleChair}, meeting))
	assert.False(t, guard.CanManageAttendance(treasurer, meeting))
	assert.False(t, guard.CanManageAttendance(nil, meeting))
}
