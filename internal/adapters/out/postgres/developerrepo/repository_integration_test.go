package developerrepo_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "devbook/internal/adapters/out/postgres"
	"devbook/internal/adapters/out/postgres/bookingrepo"
	"devbook/internal/adapters/out/postgres/developerrepo"
	"devbook/internal/adapters/out/postgres/pgtest"
	"devbook/internal/adapters/out/postgres/skillrepo"
	"devbook/internal/core/domain/model/booking"
	"devbook/internal/core/domain/model/developer"
	"devbook/internal/core/domain/model/kernel"
	"devbook/internal/core/domain/model/skill"
	"devbook/internal/core/ports"
	"devbook/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const validBio = "Backend engineer focused on payments, queues and careful migrations."

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// DeveloperRepositoryIntegrationTestSuite exercises GormDeveloperRepository against
// a PostgreSQL container.
type DeveloperRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *developerrepo.GormDeveloperRepository
	skills     *skillrepo.GormSkillRepository
	bookings   *bookingrepo.GormBookingRepository
	tracker    *MockAggregateTracker
}

func (suite *DeveloperRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background(), postgres_adapter.Migrate)
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *DeveloperRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(postgres_adapter.Truncate(suite.database.DB))

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = developerrepo.NewGormDeveloperRepository(suite.database.DB, suite.tracker)
	suite.skills = skillrepo.NewGormSkillRepository(suite.database.DB, suite.tracker)
	suite.bookings = bookingrepo.NewGormBookingRepository(suite.database.DB, suite.tracker)
}

func (suite *DeveloperRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *DeveloperRepositoryIntegrationTestSuite) TestAdd_PersistsDeveloperWithSkillsInOrder() {
	ctx := context.Background()
	ruby := suite.createSkill("ruby")
	golang := suite.createSkill("go_lang")
	dev := suite.newDeveloper("Ada", "120.00", ruby, golang)

	suite.Require().NoError(suite.repository.Add(ctx, dev))

	loaded, err := suite.repository.Get(ctx, dev.ID())
	suite.Require().NoError(err)
	suite.Equal("Ada Lovelace", loaded.FullName())
	suite.Equal("Ruby | Go Lang", loaded.SkillsToS())
	suite.True(decimal.RequireFromString("120").Equal(loaded.HourlyRate()))
	suite.Equal(0, loaded.BookingsCount())
	suite.Nil(loaded.UserID())
}

func (suite *DeveloperRepositoryIntegrationTestSuite) TestAdd_TracksAggregate() {
	tracker := new(MockAggregateTracker)
	repository := developerrepo.NewGormDeveloperRepository(suite.database.DB, tracker)
	dev := suite.newDeveloper("Ada", "50", suite.createSkill("ruby"))
	tracker.On("TrackAggregate", dev.ID(), dev).Once()

	suite.Require().NoError(repository.Add(context.Background(), dev))

	tracker.AssertExpectations(suite.T())
}

func (suite *DeveloperRepositoryIntegrationTestSuite) TestAdd_InvalidDeveloper_NothingStored() {
	ctx := context.Background()
	dev := suite.newDeveloper("Ada", "50", suite.createSkill("ruby"))
	restored, err := developer.RestoreDeveloper(dev.ID(), developer.Attributes{
		FirstName:      "Ada",
		LastName:       "",
		Bio:            "too short",
		GithubUsername: "ada",
	}, 0, dev.Skills())
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, restored)

	suite.Require().True(errs.IsValidationFailure(err))
	suite.Equal([]string{"last_name", "bio"}, errs.FailedAttributes(err))
	suite.assertCount(&developerrepo.DeveloperDTO{}, 0)
	suite.assertCount(&developerrepo.DeveloperSkillDTO{}, 0)
}

func (suite *DeveloperRepositoryIntegrationTestSuite) TestUpdate_ReplacesProfileAndSkills() {
	ctx := context.Background()
	ruby := suite.createSkill("ruby")
	elixir := suite.createSkill("elixir")
	dev := suite.newDeveloper("Ada", "50", ruby)
	suite.Require().NoError(suite.repository.Add(ctx, dev))
	suite.Require().NoError(suite.repository.IncrementBookingsCount(ctx, dev.ID()))

	attrs := dev.Attributes()
	attrs.HourlyRate = decimal.RequireFromString("75.50")
	suite.Require().NoError(dev.Update(attrs, []*skill.Skill{elixir, ruby}))
	suite.Require().NoError(suite.repository.Update(ctx, dev))

	loaded, err := suite.repository.Get(ctx, dev.ID())
	suite.Require().NoError(err)
	suite.Equal("Elixir | Ruby", loaded.SkillsToS())
	suite.True(decimal.RequireFromString("75.5").Equal(loaded.HourlyRate()))
	suite.Equal(1, loaded.BookingsCount())
}

func (suite *DeveloperRepositoryIntegrationTestSuite) TestUpdate_InvalidBio_LeavesRowUnchanged() {
	ctx := context.Background()
	dev := suite.newDeveloper("Ada", "50", suite.createSkill("ruby"))
	suite.Require().NoError(suite.repository.Add(ctx, dev))

	attrs := dev.Attributes()
	attrs.Bio = "short"
	stale, err := developer.RestoreDeveloper(dev.ID(), attrs, 0, dev.Skills())
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, stale)

	suite.Require().ErrorIs(err, errs.ErrValueIsTooShort)
	loaded, err := suite.repository.Get(ctx, dev.ID())
	suite.Require().NoError(err)
	suite.Equal(validBio, loaded.Bio())
}

func (suite *DeveloperRepositoryIntegrationTestSuite) TestUpdate_MissingDeveloper_NotFound() {
	dev := suite.newDeveloper("Ada", "50", suite.createSkill("ruby"))

	err := suite.repository.Update(context.Background(), dev)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DeveloperRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DeveloperRepositoryIntegrationTestSuite) TestGetByUser() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	dev := suite.newDeveloper("Ada", "50", suite.createSkill("ruby"))
	attrs := dev.Attributes()
	attrs.UserID = &userID
	suite.Require().NoError(dev.Update(attrs, dev.Skills()))
	suite.Require().NoError(suite.repository.Add(ctx, dev))

	loaded, err := suite.repository.GetByUser(ctx, userID)

	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(dev.ID()))
	suite.Require().NotNil(loaded.UserID())
	suite.True(loaded.UserID().IsEqual(userID))

	_, err = suite.repository.GetByUser(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DeveloperRepositoryIntegrationTestSuite) TestDelete_RemovesJoinRowsButKeepsSkills() {
	ctx := context.Background()
	ruby := suite.createSkill("ruby")
	golang := suite.createSkill("go")
	dev := suite.newDeveloper("Ada", "50", ruby, golang)
	other := suite.newDeveloper("Grace", "60", ruby)
	suite.Require().NoError(suite.repository.Add(ctx, dev))
	suite.Require().NoError(suite.repository.Add(ctx, other))

	suite.Require().NoError(suite.repository.Delete(ctx, dev.ID()))

	_, err := suite.repository.Get(ctx, dev.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.assertCount(&skillrepo.SkillDTO{}, 2)
	suite.assertCount(&developerrepo.DeveloperSkillDTO{}, 1)

	err = suite.repository.Delete(ctx, dev.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DeveloperRepositoryIntegrationTestSuite) TestAll_DefaultOrderIsHourlyRateDesc() {
	ctx := context.Background()
	ruby := suite.createSkill("ruby")
	cheap := suite.addDeveloper("Cheap", "10", ruby)
	pricey := suite.addDeveloper("Pricey", "300", ruby)
	middle := suite.addDeveloper("Middle", "90", ruby)

	developers, err := suite.repository.All(ctx, nil)

	suite.Require().NoError(err)
	suite.assertOrder(developers, pricey, middle, cheap)

	developers, err = suite.repository.All(ctx, ports.SortBy{{Field: ports.SortByHourlyRate, Direction: ports.Asc}})
	suite.Require().NoError(err)
	suite.assertOrder(developers, cheap, middle, pricey)
}

func (suite *DeveloperRepositoryIntegrationTestSuite) TestFindBySkill_CaseInsensitiveSubstring() {
	ctx := context.Background()
	ruby := suite.createSkill("Ruby")
	rails := suite.createSkill("ruby on rails")
	golang := suite.createSkill("go")
	both := suite.addDeveloper("Both", "80", ruby, rails)
	rubyOnly := suite.addDeveloper("RubyOnly", "100", ruby)
	suite.addDeveloper("Gopher", "200", golang)

	developers, err := suite.repository.FindBySkill(ctx, "RUB", ports.DefaultSort)

	suite.Require().NoError(err)
	suite.assertOrder(developers, rubyOnly, both)

	developers, err = suite.repository.FindBySkill(ctx, "python", ports.DefaultSort)
	suite.Require().NoError(err)
	suite.Empty(developers)
}

func (suite *DeveloperRepositoryIntegrationTestSuite) TestFindBySkill_WildcardsMatchLiterally() {
	ctx := context.Background()
	suite.addDeveloper("Plain", "50", suite.createSkill("go"))
	percent := suite.addDeveloper("Percent", "60", suite.createSkill("100%_coverage"))

	developers, err := suite.repository.FindBySkill(ctx, "%", ports.DefaultSort)
	suite.Require().NoError(err)
	suite.assertOrder(developers, percent)

	developers, err = suite.repository.FindBySkill(ctx, "_", ports.DefaultSort)
	suite.Require().NoError(err)
	suite.assertOrder(developers, percent)
}

func (suite *DeveloperRepositoryIntegrationTestSuite) TestFindBySkill_EmptyTermMatchesEveryDeveloper() {
	ctx := context.Background()
	ruby := suite.createSkill("ruby")
	golang := suite.createSkill("go")
	rubyist := suite.addDeveloper("Rubyist", "50", ruby)
	polyglot := suite.addDeveloper("Polyglot", "70", ruby, golang)
	gopher := suite.addDeveloper("Gopher", "60", golang)

	developers, err := suite.repository.FindBySkill(ctx, "", ports.DefaultSort)

	suite.Require().NoError(err)
	suite.assertOrder(developers, polyglot, gopher, rubyist)
}

func (suite *DeveloperRepositoryIntegrationTestSuite) TestFindBySkill_WhitespaceIsSignificant() {
	ctx := context.Background()
	spaced := suite.addDeveloper("Spaced", "50", suite.createSkill("go lang"))
	suite.addDeveloper("Joined", "60", suite.createSkill("golang"))

	developers, err := suite.repository.FindBySkill(ctx, " lang", ports.DefaultSort)
	suite.Require().NoError(err)
	suite.assertOrder(developers, spaced)

	developers, err = suite.repository.FindBySkill(ctx, "lang ", ports.DefaultSort)
	suite.Require().NoError(err)
	suite.Empty(developers)
}

func (suite *DeveloperRepositoryIntegrationTestSuite) TestFindByPriceRange_Inclusive() {
	ctx := context.Background()
	ruby := suite.createSkill("ruby")
	low := suite.addDeveloper("Low", "50.00", ruby)
	mid := suite.addDeveloper("Mid", "75.00", ruby)
	high := suite.addDeveloper("High", "100.00", ruby)
	suite.addDeveloper("Out", "100.01", ruby)

	developers, err := suite.repository.FindByPriceRange(ctx,
		decimal.RequireFromString("50"), decimal.RequireFromString("100"), ports.DefaultSort)

	suite.Require().NoError(err)
	suite.assertOrder(developers, high, mid, low)
}

func (suite *DeveloperRepositoryIntegrationTestSuite) TestFindByPriceRange_InvertedRangeIsEmpty() {
	ctx := context.Background()
	suite.addDeveloper("Mid", "75", suite.createSkill("ruby"))

	developers, err := suite.repository.FindByPriceRange(ctx,
		decimal.RequireFromString("100"), decimal.RequireFromString("50"), ports.DefaultSort)

	suite.Require().NoError(err)
	suite.NotNil(developers)
	suite.Empty(developers)
}

func (suite *DeveloperRepositoryIntegrationTestSuite) TestTop6_OrdersByBookingsThenRate() {
	ctx := context.Background()
	ruby := suite.createSkill("ruby")

	counts := []struct {
		name     string
		rate     string
		bookings int
	}{
		{"A", "10", 5},
		{"B", "90", 3},
		{"C", "80", 3},
		{"D", "500", 0},
		{"E", "20", 4},
		{"F", "30", 1},
		{"G", "40", 1},
		{"H", "10", 0},
	}
	byName := make(map[string]*developer.Developer, len(counts))
	for _, c := range counts {
		dev := suite.addDeveloper(c.name, c.rate, ruby)
		for i := 0; i < c.bookings; i++ {
			suite.Require().NoError(suite.repository.IncrementBookingsCount(ctx, dev.ID()))
		}
		byName[c.name] = dev
	}

	developers, err := suite.repository.Top6(ctx)

	suite.Require().NoError(err)
	suite.assertOrder(developers,
		byName["A"], byName["E"], byName["B"], byName["C"], byName["G"], byName["F"])
}

func (suite *DeveloperRepositoryIntegrationTestSuite) TestTop_NonPositiveLimit() {
	suite.addDeveloper("A", "10", suite.createSkill("ruby"))

	developers, err := suite.repository.Top(context.Background(), 0)

	suite.Require().NoError(err)
	suite.Empty(developers)
}

func (suite *DeveloperRepositoryIntegrationTestSuite) TestIncrementBookingsCount_MissingDeveloper() {
	err := suite.repository.IncrementBookingsCount(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DeveloperRepositoryIntegrationTestSuite) TestRecountBookings_FixesDriftedCounters() {
	ctx := context.Background()
	ruby := suite.createSkill("ruby")
	drifted := suite.addDeveloper("Drifted", "50", ruby)
	inSync := suite.addDeveloper("InSync", "60", ruby)
	suite.Require().NoError(suite.repository.IncrementBookingsCount(ctx, drifted.ID()))
	suite.Require().NoError(suite.repository.IncrementBookingsCount(ctx, drifted.ID()))

	b, err := booking.NewBooking(kernel.NewUUID(), inSync.ID(), nil,
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.bookings.Add(ctx, b))
	suite.Require().NoError(suite.repository.IncrementBookingsCount(ctx, inSync.ID()))

	changed, err := suite.repository.RecountBookings(ctx)

	suite.Require().NoError(err)
	suite.Equal(int64(1), changed)
	reloaded, err := suite.repository.Get(ctx, drifted.ID())
	suite.Require().NoError(err)
	suite.Equal(0, reloaded.BookingsCount())
	reloaded, err = suite.repository.Get(ctx, inSync.ID())
	suite.Require().NoError(err)
	suite.Equal(1, reloaded.BookingsCount())
}

func (suite *DeveloperRepositoryIntegrationTestSuite) createSkill(name string) *skill.Skill {
	s, err := skill.NewSkill(kernel.NewUUID(), name)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.skills.Add(context.Background(), s))
	return s
}

func (suite *DeveloperRepositoryIntegrationTestSuite) newDeveloper(
	firstName string,
	rate string,
	skills ...*skill.Skill,
) *developer.Developer {
	dev, err := developer.NewDeveloper(kernel.NewUUID(), developer.Attributes{
		FirstName:      firstName,
		LastName:       "Lovelace",
		Bio:            validBio,
		GithubUsername: "gh-" + firstName,
		HourlyRate:     decimal.RequireFromString(rate),
	}, skills)
	suite.Require().NoError(err)
	return dev
}

func (suite *DeveloperRepositoryIntegrationTestSuite) addDeveloper(
	firstName string,
	rate string,
	skills ...*skill.Skill,
) *developer.Developer {
	dev := suite.newDeveloper(firstName, rate, skills...)
	suite.Require().NoError(suite.repository.Add(context.Background(), dev))
	return dev
}

func (suite *DeveloperRepositoryIntegrationTestSuite) assertOrder(
	actual []*developer.Developer,
	expected ...*developer.Developer,
) {
	suite.Require().Len(actual, len(expected))
	for i := range expected {
		suite.Truef(actual[i].ID().IsEqual(expected[i].ID()),
			"position %d: expected %s, got %s", i, expected[i].FirstName(), actual[i].FirstName())
	}
}

func (suite *DeveloperRepositoryIntegrationTestSuite) assertCount(model any, expected int64) {
	var count int64
	suite.Require().NoError(suite.database.DB.Model(model).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestDeveloperRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DeveloperRepositoryIntegrationTestSuite))
}
