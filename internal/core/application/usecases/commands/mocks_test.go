package commands_test

import (
	"context"

	"devbook/internal/core/application/usecases/commands"
	"devbook/internal/core/domain/model/booking"
	"devbook/internal/core/domain/model/developer"
	"devbook/internal/core/domain/model/kernel"
	"devbook/internal/core/domain/model/project"
	"devbook/internal/core/domain/model/skill"
	"devbook/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockDeveloperRepository struct{ mock.Mock }

func (m *MockDeveloperRepository) Add(ctx context.Context, d *developer.Developer) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDeveloperRepository) Update(ctx context.Context, d *developer.Developer) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDeveloperRepository) Get(ctx context.Context, id kernel.UUID) (*developer.Developer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*developer.Developer), args.Error(1)
}

func (m *MockDeveloperRepository) GetByUser(ctx context.Context, id kernel.UUID) (*developer.Developer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*developer.Developer), args.Error(1)
}

func (m *MockDeveloperRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDeveloperRepository) All(ctx context.Context, sort ports.SortBy) ([]*developer.Developer, error) {
	args := m.Called(ctx, sort)
	return args.Get(0).([]*developer.Developer), args.Error(1)
}

func (m *MockDeveloperRepository) FindBySkill(
	ctx context.Context,
	s string,
	sort ports.SortBy,
) ([]*developer.Developer, error) {
	args := m.Called(ctx, s, sort)
	return args.Get(0).([]*developer.Developer), args.Error(1)
}

func (m *MockDeveloperRepository) FindByPriceRange(
	ctx context.Context,
	minRate, maxRate decimal.Decimal,
	sort ports.SortBy,
) ([]*developer.Developer, error) {
	args := m.Called(ctx, minRate, maxRate, sort)
	return args.Get(0).([]*developer.Developer), args.Error(1)
}

func (m *MockDeveloperRepository) Top(ctx context.Context, limit int) ([]*developer.Developer, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]*developer.Developer), args.Error(1)
}

func (m *MockDeveloperRepository) Top6(ctx context.Context) ([]*developer.Developer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*developer.Developer), args.Error(1)
}

func (m *MockDeveloperRepository) IncrementBookingsCount(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDeveloperRepository) RecountBookings(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockSkillRepository struct{ mock.Mock }

func (m *MockSkillRepository) Add(ctx context.Context, s *skill.Skill) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSkillRepository) Get(ctx context.Context, id kernel.UUID) (*skill.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*skill.Skill), args.Error(1)
}

func (m *MockSkillRepository) GetByName(ctx context.Context, name string) (*skill.Skill, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*skill.Skill), args.Error(1)
}

func (m *MockSkillRepository) FindByDeveloper(ctx context.Context, id kernel.UUID) ([]*skill.Skill, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]*skill.Skill), args.Error(1)
}

type MockBookingRepository struct{ mock.Mock }

func (m *MockBookingRepository) Add(ctx context.Context, b *booking.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBookingRepository) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByDeveloper(ctx context.Context, id kernel.UUID) ([]*booking.Booking, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) DeleteByDeveloper(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockProjectRepository struct{ mock.Mock }

func (m *MockProjectRepository) Add(ctx context.Context, p *project.Project) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProjectRepository) FindByDeveloper(ctx context.Context, id kernel.UUID) ([]*project.Project, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]*project.Project), args.Error(1)
}

func (m *MockProjectRepository) DeleteByDeveloper(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) DeveloperRepository() ports.DeveloperRepository {
	return m.Called().Get(0).(ports.DeveloperRepository)
}

func (m *MockUoW) SkillRepository() ports.SkillRepository {
	return m.Called().Get(0).(ports.SkillRepository)
}

func (m *MockUoW) BookingRepository() ports.BookingRepository {
	return m.Called().Get(0).(ports.BookingRepository)
}

func (m *MockUoW) ProjectRepository() ports.ProjectRepository {
	return m.Called().Get(0).(ports.ProjectRepository)
}

type mockUoWFactory struct{ uow *MockUoW }

func (f mockUoWFactory) Create() commands.UoW { return f.uow }

type mockDeveloperUoWFactory struct{ uow *MockUoW }

func (f mockDeveloperUoWFactory) Create() commands.DeveloperUoW { return f.uow }

type mockSkillUoWFactory struct{ uow *MockUoW }

func (f mockSkillUoWFactory) Create() commands.SkillUoW { return f.uow }

const validBio = "Backend engineer focused on payments, queues and careful migrations."

func validProfile(skills ...string) commands.DeveloperProfile {
	return commands.DeveloperProfile{
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Bio:            validBio,
		GithubUsername: "ada",
		HourlyRate:     decimal.RequireFromString("120.00"),
		SkillNames:     skills,
	}
}

func storedDeveloper(id kernel.UUID, skills ...*skill.Skill) *developer.Developer {
	profile := validProfile()
	d, err := developer.RestoreDeveloper(id, developer.Attributes{
		FirstName:      profile.FirstName,
		LastName:       profile.LastName,
		Bio:            profile.Bio,
		GithubUsername: profile.GithubUsername,
		HourlyRate:     profile.HourlyRate,
	}, 0, skills)
	if err != nil {
		panic(err)
	}
	return d
}

func storedSkill(name string) *skill.Skill {
	s, err := skill.RestoreSkill(kernel.NewUUID(), name)
	if err != nil {
		panic(err)
	}
	return s
}
