package addressrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/addressrepo"
	"marketplace/internal/core/domain/model/address"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker
// interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id int64, aggregate any) {
	m.Called(id, aggregate)
}

// AddressRepositoryIntegrationTestSuite verifies address persistence against
// a real PostgreSQL instance.
type AddressRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *addressrepo.GormAddressRepository
}

func (suite *AddressRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&addressrepo.AddressDTO{}))
}

func (suite *AddressRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE addresses").Error)

	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = addressrepo.NewGormAddressRepository(suite.db, tracker)
}

func (suite *AddressRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AddressRepositoryIntegrationTestSuite) createTestAddress(userID int64, label string, isDefault bool) *address.Address {
	aggregate, err := address.NewAddress(userID, address.Details{
		Label:   label,
		Address: "12 MG Road",
		City:    "Bengaluru",
		State:   "Karnataka",
		Pincode: "560001",
	}, isDefault)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *AddressRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	aggregate := suite.createTestAddress(1, "Home", true)

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))
	suite.Positive(aggregate.ID())

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal("Home", loaded.Details().Label)
	suite.Equal(int64(1), loaded.UserID())
	suite.True(loaded.IsDefault())
}

func (suite *AddressRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), 9999)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AddressRepositoryIntegrationTestSuite) TestUpdate_PersistsClearedDefaultFlag() {
	ctx := context.Background()
	aggregate := suite.createTestAddress(1, "Home", true)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	aggregate.ClearDefault()
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.False(loaded.IsDefault())
}

func (suite *AddressRepositoryIntegrationTestSuite) TestClearDefaults_ScopedToUser() {
	ctx := context.Background()
	mine := suite.createTestAddress(1, "Home", true)
	other := suite.createTestAddress(2, "Home", true)
	suite.Require().NoError(suite.repository.Add(ctx, mine))
	suite.Require().NoError(suite.repository.Add(ctx, other))

	suite.Require().NoError(suite.repository.ClearDefaults(ctx, 1))

	loadedMine, err := suite.repository.Get(ctx, mine.ID())
	suite.Require().NoError(err)
	suite.False(loadedMine.IsDefault())

	loadedOther, err := suite.repository.Get(ctx, other.ID())
	suite.Require().NoError(err)
	suite.True(loadedOther.IsDefault())
}

func (suite *AddressRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	aggregate := suite.createTestAddress(1, "Home", true)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	suite.Require().NoError(suite.repository.Delete(ctx, aggregate.ID()))

	_, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().ErrorIs(suite.repository.Delete(ctx, aggregate.ID()), errs.ErrObjectNotFound)
}

func (suite *AddressRepositoryIntegrationTestSuite) TestGetNewestForUser() {
	ctx := context.Background()

	_, err := suite.repository.GetNewestForUser(ctx, 1)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	older := suite.createTestAddress(1, "Home", true)
	suite.Require().NoError(suite.repository.Add(ctx, older))

	time.Sleep(10 * time.Millisecond)
	newer := suite.createTestAddress(1, "Office", false)
	suite.Require().NoError(suite.repository.Add(ctx, newer))

	newest, err := suite.repository.GetNewestForUser(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal(newer.ID(), newest.ID())
}

func (suite *AddressRepositoryIntegrationTestSuite) TestCountForUser() {
	ctx := context.Background()

	count, err := suite.repository.CountForUser(ctx, 1)
	suite.Require().NoError(err)
	suite.Zero(count)

	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestAddress(1, "Home", true)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestAddress(1, "Office", false)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestAddress(2, "Home", true)))

	count, err = suite.repository.CountForUser(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)
}

func TestAddressRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AddressRepositoryIntegrationTestSuite))
}
