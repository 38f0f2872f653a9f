package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"orderflow/internal/adapters/out/postgres/orderrepo"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id int64, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders RESTART IDENTITY").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	newOrder, err := order.NewOrder(42, 3, 19.99)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything).Once()

	stored, err := suite.repository.Add(ctx, newOrder)
	suite.Require().NoError(err)

	// Database assigns the identifier
	suite.Positive(stored.ID())
	suite.Equal(int64(42), stored.ProductID())
	suite.Equal(3, stored.Quantity())
	suite.InDelta(19.99, stored.Price(), 0.0001)
	suite.Equal(order.Created, stored.Status())

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_AssignsSequentialIDs() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything)

	first := suite.addOrder(ctx, 1, 1, 10.0)
	second := suite.addOrder(ctx, 2, 1, 10.0)

	suite.Less(first.ID(), second.ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_Success() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything)

	stored := suite.addOrder(ctx, 7, 2, 15.5)

	loaded, err := suite.repository.Get(ctx, stored.ID())
	suite.Require().NoError(err)
	suite.True(stored.IsEqual(loaded))
	suite.Equal(stored.ProductID(), loaded.ProductID())
	suite.Equal(stored.Quantity(), loaded.Quantity())
	suite.InDelta(stored.Price(), loaded.Price(), 0.0001)
	suite.Equal(stored.Status(), loaded.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_MissingOrder_ReturnsNotFound() {
	ctx := context.Background()

	loaded, err := suite.repository.Get(ctx, 12345)

	suite.Require().Error(err)
	suite.Nil(loaded)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ExistingOrder_PersistsStatus() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything)

	stored := suite.addOrder(ctx, 7, 2, 15.5)

	next := stored.CompleteValidation()
	suite.Equal(order.Validated, next)
	suite.Require().NoError(suite.repository.Update(ctx, stored))

	loaded, err := suite.repository.Get(ctx, stored.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Validated, loaded.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MissingOrder_ReturnsNotFound() {
	ctx := context.Background()

	ghost, err := order.RestoreOrder(999, 1, 1, 5.0, order.Created)
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, ghost)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestList_ReturnsPageSortedByID() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything)

	for i := 1; i <= 5; i++ {
		suite.addOrder(ctx, int64(i), i, float64(i))
	}

	page, err := suite.repository.List(ctx, 3, 1)
	suite.Require().NoError(err)
	suite.Require().Len(page, 3)
	for i := range len(page) - 1 {
		suite.Less(page[i].ID(), page[i+1].ID())
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestList_EmptyTable_ReturnsEmptySlice() {
	ctx := context.Background()

	page, err := suite.repository.List(ctx, 10, 0)
	suite.Require().NoError(err)
	suite.NotNil(page)
	suite.Empty(page)
}

func (suite *OrderRepositoryIntegrationTestSuite) addOrder(
	ctx context.Context, productID int64, quantity int, price float64,
) *order.Order {
	newOrder, err := order.NewOrder(productID, quantity, price)
	suite.Require().NoError(err)

	stored, err := suite.repository.Add(ctx, newOrder)
	suite.Require().NoError(err)
	return stored
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
