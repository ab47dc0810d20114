package postgres_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/addressrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/partnerrepo"
	"marketplace/internal/core/domain/model/address"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies that the unit of work gives the
// handlers real transaction semantics: everything commits together or
// nothing does.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.OrderStatusHistoryDTO{},
		&addressrepo.AddressDTO{},
		&partnerrepo.DeliveryPartnerDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, order_status_history, addresses, delivery_partners").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) money(v int64) kernel.Money {
	m, err := kernel.NewMoneyFromPaise(v)
	suite.Require().NoError(err)
	return m
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *order.Order {
	item, err := order.NewItem(101, "Paneer Tikka", 2, suite.money(25000), "")
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.GenerateOrderNumber(),
		1, 10, 5,
		[]order.Item{item},
		order.Totals{
			Subtotal:    suite.money(50000),
			DeliveryFee: suite.money(3000),
			Tax:         suite.money(9000),
			Discount:    suite.money(0),
			FinalTotal:  suite.money(62000),
		},
		order.PaymentMethodUPI,
		"",
		nil,
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	aggregate := suite.createTestOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))

	saved, err := address.NewAddress(1, address.Details{
		Label: "Home", Address: "12 MG Road", City: "Bengaluru", State: "Karnataka", Pincode: "560001",
	}, true)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.AddressRepository().Add(ctx, saved))

	suite.Require().NoError(uow.Commit(ctx))

	var orderCount, addressCount int64
	suite.Require().NoError(suite.db.Table("orders").Count(&orderCount).Error)
	suite.Require().NoError(suite.db.Table("addresses").Count(&addressCount).Error)
	suite.Equal(int64(1), orderCount)
	suite.Equal(int64(1), addressCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_LeavesNoPartialRows() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	aggregate := suite.createTestOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Rollback(ctx))

	var orderCount, itemCount, historyCount int64
	suite.Require().NoError(suite.db.Table("orders").Count(&orderCount).Error)
	suite.Require().NoError(suite.db.Table("order_items").Count(&itemCount).Error)
	suite.Require().NoError(suite.db.Table("order_status_history").Count(&historyCount).Error)
	suite.Zero(orderCount)
	suite.Zero(itemCount)
	suite.Zero(historyCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_RevertsPartnerAvailability() {
	ctx := context.Background()
	suite.Require().NoError(suite.db.Create(&partnerrepo.DeliveryPartnerDTO{UserID: 9, IsAvailable: true}).Error)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	partner, err := uow.PartnerRepository().GetFirstAvailable(ctx)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.PartnerRepository().SetAvailability(ctx, partner.ID, false))
	suite.Require().NoError(uow.Rollback(ctx))

	var dto partnerrepo.DeliveryPartnerDTO
	suite.Require().NoError(suite.db.First(&dto, "user_id = ?", 9).Error)
	suite.True(dto.IsAvailable)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_Fails() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
