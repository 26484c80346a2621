package service

import (
	"testing"

	"github.com/sinergi-org/sinergi-backend/internal/domain"
	"github.com/sinergi-org/sinergi-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// MockMemberRepository is a mock implementation of MemberRepository
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) FindByID(id uint) (*domain.Member, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) FindByIDs(ids []uint) ([]*domain.Member, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) ListActiveClass() ([]*domain.Member, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) ListByDivisions(divisions []string) ([]*domain.Member, error) {
	args := m.Called(divisions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) ListByRoles(roles []string) ([]*domain.Member, error) {
	args := m.Called(roles)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) ExistingIDs(ids []uint) (map[uint]bool, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint]bool), args.Error(1)
}

func (m *MockMemberRepository) FindAll(page, limit int) ([]*domain.Member, int64, error) {
	args := m.Called(page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*domain.Member), args.Get(1).(int64), args.Error(2)
}

// MockStaffRepository is a mock implementation of StaffRepository
type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) ListByProgram(programID uint) ([]*domain.ProgramStaffAssignment, error) {
	args := m.Called(programID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ProgramStaffAssignment), args.Error(1)
}

func (m *MockStaffRepository) ListMemberIDsByProgram(programID uint) ([]uint, error) {
	args := m.Called(programID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func meetingWithRule(t *testing.T, rule domain.TargetingRule) *domain.Meeting {
	t.Helper()
	m := &domain.Meeting{ID: 1, Title: "Rapat Koordinasi"}
	assert.NoError(t, m.SetTargetingRule(rule))
	return m
}

func strPtr(s string) *string { return &s }

func TestResolve_All_FiltersToActiveClass(t *testing.T) {
	memberRepo := new(MockMemberRepository)
	staffRepo := new(MockStaffRepository)
	resolver := NewAudienceResolver(memberRepo, staffRepo)

	memberRepo.On("ListActiveClass").Return([]*domain.Member{
		{ID: 2, FullName: "Budi", MembershipStatus: domain.MembershipFull},
		{ID: 1, FullName: "Ani", MembershipStatus: domain.MembershipCandidate},
	}, nil)

	members, err := resolver.Resolve(meetingWithRule(t, domain.TargetAll{}))

	assert.NoError(t, err)
	assert.Len(t, members, 2)
	assert.Equal(t, "Ani", members[0].FullName)
	assert.Equal(t, "Budi", members[1].FullName)
	memberRepo.AssertExpectations(t)
}

// Division targeting reaches every member of the division, including
// inactive and alumni members. Only blanket "all" targeting applies the
// active-class filter.
func TestResolve_ByDivision_IgnoresMembershipStatus(t *testing.T) {
	memberRepo := new(MockMemberRepository)
	staffRepo := new(MockStaffRepository)
	resolver := NewAudienceResolver(memberRepo, staffRepo)

	memberRepo.On("ListByDivisions", []string{domain.DivisionMusic}).Return([]*domain.Member{
		{ID: 3, FullName: "Citra", Division: strPtr(domain.DivisionMusic), MembershipStatus: domain.MembershipInactive},
		{ID: 4, FullName: "Dewi", Division: strPtr(domain.DivisionMusic), MembershipStatus: domain.MembershipFull},
	}, nil)

	members, err := resolver.Resolve(meetingWithRule(t, domain.TargetByDivision{Divisions: []string{domain.DivisionMusic}}))

	assert.NoError(t, err)
	assert.Len(t, members, 2)
	assert.Equal(t, domain.MembershipInactive, members[0].MembershipStatus)
	memberRepo.AssertExpectations(t)
}

func TestResolve_ByDivision_EmptySelectorIsEmptyAudience(t *testing.T) {
	memberRepo := new(MockMemberRepository)
	staffRepo := new(MockStaffRepository)
	resolver := NewAudienceResolver(memberRepo, staffRepo)

	memberRepo.On("ListByDivisions", []string(nil)).Return([]*domain.Member{}, nil)

	members, err := resolver.Resolve(meetingWithRule(t, domain.TargetByDivision{}))

	assert.NoError(t, err)
	assert.Empty(t, members)
}

func TestResolve_ByRole(t *testing.T) {
	memberRepo := new(MockMemberRepository)
	staffRepo := new(MockStaffRepository)
	resolver := NewAudienceResolver(memberRepo, staffRepo)

	memberRepo.On("ListByRoles", []string{domain.RoleChair, domain.RoleSecretary}).Return([]*domain.Member{
		{ID: 5, FullName: "Eka", MembershipStatus: domain.MembershipAlumni},
	}, nil)

	rule := domain.TargetByRole{Roles: []string{domain.RoleChair, domain.RoleSecretary}}
	members, err := resolver.Resolve(meetingWithRule(t, rule))

	assert.NoError(t, err)
	assert.Len(t, members, 1)
	assert.Equal(t, uint(5), members[0].ID)
	memberRepo.AssertExpectations(t)
}

func TestResolve_ProgramTeam(t *testing.T) {
	memberRepo := new(MockMemberRepository)
	staffRepo := new(MockStaffRepository)
	resolver := NewAudienceResolver(memberRepo, staffRepo)

	programID := uint(10)
	meeting := meetingWithRule(t, domain.TargetProgramTeam{})
	meeting.ProgramID = &programID

	staffRepo.On("ListMemberIDsByProgram", programID).Return([]uint{4, 3}, nil)
	memberRepo.On("FindByIDs", []uint{4, 3}).Return([]*domain.Member{
		{ID: 4, FullName: "Dewi"},
		{ID: 3, FullName: "Citra"},
	}, nil)

	members, err := resolver.Resolve(meeting)

	assert.NoError(t, err)
	assert.Len(t, members, 2)
	assert.Equal(t, "Citra", members[0].FullName)
	staffRepo.AssertExpectations(t)
	memberRepo.AssertExpectations(t)
}

func TestResolve_ProgramTeam_NoLinkedProgram(t *testing.T) {
	memberRepo := new(MockMemberRepository)
	staffRepo := new(MockStaffRepository)
	resolver := NewAudienceResolver(memberRepo, staffRepo)

	meeting := meetingWithRule(t, domain.TargetProgramTeam{})
	meeting.ProgramID = nil

	members, err := resolver.Resolve(meeting)

	assert.NoError(t, err)
	assert.Empty(t, members)
	staffRepo.AssertNotCalled(t, "ListMemberIDsByProgram", mock.Anything)
}

func TestResolve_ProgramTeam_NoFilledSeats(t *testing.T) {
	memberRepo := new(MockMemberRepository)
	staffRepo := new(MockStaffRepository)
	resolver := NewAudienceResolver(memberRepo, staffRepo)

	programID := uint(10)
	meeting := meetingWithRule(t, domain.TargetProgramTeam{})
	meeting.ProgramID = &programID

	staffRepo.On("ListMemberIDsByProgram", programID).Return([]uint{}, nil)

	members, err := resolver.Resolve(meeting)

	assert.NoError(t, err)
	assert.Empty(t, members)
	memberRepo.AssertNotCalled(t, "FindByIDs", mock.Anything)
}

func TestResolve_Custom_DanglingIDsAbsentFromPreview(t *testing.T) {
	memberRepo := new(MockMemberRepository)
	staffRepo := new(MockStaffRepository)
	resolver := NewAudienceResolver(memberRepo, staffRepo)

	memberRepo.On("FindByIDs", []uint{7, 999}).Return([]*domain.Member{
		{ID: 7, FullName: "Gita"},
	}, nil)

	members, err := resolver.Resolve(meetingWithRule(t, domain.TargetCustom{MemberIDs: []uint{7, 999}}))

	assert.NoError(t, err)
	assert.Len(t, members, 1)
	assert.Equal(t, uint(7), members[0].ID)
}

func TestResolveIDs_Custom_PassesThroughUnchecked(t *testing.T) {
	memberRepo := new(MockMemberRepository)
	staffRepo := new(MockStaffRepository)
	resolver := NewAudienceResolver(memberRepo, staffRepo)

	rule := domain.TargetCustom{MemberIDs: []uint{7, 8, 7, 999}}
	ids, err := resolver.ResolveIDs(meetingWithRule(t, rule))

	assert.NoError(t, err)
	assert.Equal(t, []uint{7, 8, 999}, ids)
	memberRepo.AssertNotCalled(t, "FindByIDs", mock.Anything)
	memberRepo.AssertNotCalled(t, "ExistingIDs", mock.Anything)
}

func TestResolveIDs_NonCustomUsesResolvedMembers(t *testing.T) {
	memberRepo := new(MockMemberRepository)
	staffRepo := new(MockStaffRepository)
	resolver := NewAudienceResolver(memberRepo, staffRepo)

	memberRepo.On("ListActiveClass").Return([]*domain.Member{
		{ID: 2, FullName: "Budi"},
		{ID: 1, FullName: "Ani"},
	}, nil)

	ids, err := resolver.ResolveIDs(meetingWithRule(t, domain.TargetAll{}))

	assert.NoError(t, err)
	assert.Equal(t, []uint{1, 2}, ids)
}

// newStorageResolver builds a resolver over the real repositories and an
// in-memory database, so the member queries actually run as SQL.
func newStorageResolver(t *testing.T) (*gorm.DB, AudienceResolver) {
	t.Helper()
	db := newTestDB(t)
	return db, NewAudienceResolver(
		repository.NewMemberRepository(db),
		repository.NewStaffRepository(db),
	)
}

// Division targeting must reach every member of the division while blanket
// "all" targeting filters to the active-class statuses. Both rules run
// against the same stored roster here; only the query differs.
func TestResolve_Storage_DivisionIgnoresStatusButAllFilters(t *testing.T) {
	db, resolver := newStorageResolver(t)

	seedMember(t, db, 1, "Ani", domain.DivisionMusic, domain.MembershipFull)
	seedMember(t, db, 2, "Budi", domain.DivisionMusic, domain.MembershipInactive)
	seedMember(t, db, 3, "Citra", domain.DivisionMusic, domain.MembershipAlumni)
	seedMember(t, db, 4, "Dewi", domain.DivisionDance, domain.MembershipCandidate)
	seedMember(t, db, 5, "Eka", domain.DivisionDance, domain.MembershipInactive)

	byDivision, err := resolver.Resolve(meetingWithRule(t, domain.TargetByDivision{
		Divisions: []string{domain.DivisionMusic},
	}))
	require.NoError(t, err)
	require.Len(t, byDivision, 3)
	statuses := make(map[string]bool)
	for _, m := range byDivision {
		statuses[m.MembershipStatus] = true
	}
	assert.True(t, statuses[domain.MembershipInactive])
	assert.True(t, statuses[domain.MembershipAlumni])

	all, err := resolver.Resolve(meetingWithRule(t, domain.TargetAll{}))
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Ani", all[0].FullName)
	assert.Equal(t, "Dewi", all[1].FullName)
}

func TestResolve_Storage_RoleJoinSkipsAccountlessMembers(t *testing.T) {
	db, resolver := newStorageResolver(t)

	seedAccount(t, db, 10, "ani.lestari", domain.RoleSecretary)
	seedAccount(t, db, 11, "budi.santoso", domain.RoleMember)
	seedMember(t, db, 1, "Ani", domain.DivisionMusic, domain.MembershipFull)
	seedMember(t, db, 2, "Budi", domain.DivisionMusic, domain.MembershipFull)
	seedMember(t, db, 3, "Citra", domain.DivisionMusic, domain.MembershipAlumni)
	linkAccount(t, db, 1, 10)
	linkAccount(t, db, 2, 11)
	// Member 3 has no account and can never match a role rule.

	members, err := resolver.Resolve(meetingWithRule(t, domain.TargetByRole{
		Roles: []string{domain.RoleSecretary, domain.RoleChair},
	}))

	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, uint(1), members[0].ID)
}

func TestResolve_Storage_ProgramTeamDeduplicatesSeats(t *testing.T) {
	db, resolver := newStorageResolver(t)

	seedMember(t, db, 1, "Ani", domain.DivisionMusic, domain.MembershipFull)
	seedMember(t, db, 2, "Budi", domain.DivisionDance, domain.MembershipFull)

	program := &domain.Program{Name: "Pentas Seni", Status: domain.ProgramStatusActive}
	require.NoError(t, db.Create(program).Error)

	// Member 1 holds two seats; one seat is unfilled.
	one, two := uint(1), uint(2)
	for _, a := range []*domain.ProgramStaffAssignment{
		{ProgramID: program.ID, MemberID: &one, RoleTitle: "Koordinator Acara"},
		{ProgramID: program.ID, MemberID: &one, RoleTitle: "Koordinator Latihan"},
		{ProgramID: program.ID, MemberID: &two, RoleTitle: "Humas"},
		{ProgramID: program.ID, RoleTitle: "Bendahara Proker"},
	} {
		require.NoError(t, db.Create(a).Error)
	}

	meeting := meetingWithRule(t, domain.TargetProgramTeam{})
	meeting.ProgramID = &program.ID

	members, err := resolver.Resolve(meeting)

	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, uint(1), members[0].ID)
	assert.Equal(t, uint(2), members[1].ID)
}

func TestResolve_OrdersByDisplayNameThenID(t *testing.T) {
	memberRepo := new(MockMemberRepository)
	staffRepo := new(MockStaffRepository)
	resolver := NewAudienceResolver(memberRepo, staffRepo)

	memberRepo.On("ListActiveClass").Return([]*domain.Member{
		{ID: 9, FullName: "Ani"},
		{ID: 2, FullName: "Ani"},
		{ID: 5, FullName: "", Nickname: "Aa"},
	}, nil)

	members, err := resolver.Resolve(meetingWithRule(t, domain.TargetAll{}))

	assert.NoError(t, err)
	assert.Equal(t, []uint{5, 2, 9}, []uint{members[0].ID, members[1].ID, members[2].ID})
}
