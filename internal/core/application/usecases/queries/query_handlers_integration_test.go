package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"packtrack/internal/adapters/out/postgres/clientrepo"
	"packtrack/internal/adapters/out/postgres/orderrepo"
	"packtrack/internal/adapters/out/postgres/statusrepo"
	"packtrack/internal/core/application/usecases/queries"
	"packtrack/internal/core/domain/model/client"
	"packtrack/internal/core/domain/model/order"
	"packtrack/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(uint64, any) {}

// QueryHandlersIntegrationTestSuite runs the read-side handlers against a
// real PostgreSQL instance seeded through the write-side repositories.
type QueryHandlersIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	orderRepo  *orderrepo.GormOrderRepository
	clientRepo *clientrepo.GormClientRepository
}

func (suite *QueryHandlersIntegrationTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&clientrepo.ClientDTO{},
		&orderrepo.OrderDTO{},
		&statusrepo.StatusDTO{},
	))
	suite.Require().NoError(statusrepo.Seed(ctx, db))

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.clientRepo = clientrepo.NewGormClientRepository(db, &mockAggregateTracker{})
}

func (suite *QueryHandlersIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, clients").Error)
}

func (suite *QueryHandlersIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlersIntegrationTestSuite) addClient(seq int) *client.Client {
	aggregate, err := client.NewClient(
		"Maria",
		"Lopez",
		fmt.Sprintf("0801-1990-%05d", seq),
		fmt.Sprintf("maria+%d@example.com", seq),
		"$2a$10$0123456789012345678901uBCDEFGHIJKLMNOPQRSTUVWXYZabcde",
		"+504 9999-1234",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.clientRepo.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *QueryHandlersIntegrationTestSuite) addOrder(clientID uint64) *order.Order {
	sender := order.Sender{
		Name:         "Maria",
		Lastname:     "Lopez",
		IDNumber:     "0801-1990-12345",
		Department:   "Francisco Morazan",
		Municipality: "Tegucigalpa",
		Address:      "Col. Kennedy, casa 42",
		Phone:        "+504 9999-1234",
		Email:        "maria@example.com",
	}
	shipment := order.Shipment{
		PackageType:             order.PackageDocuments,
		DestinationDepartment:   "Cortes",
		DestinationMunicipality: "San Pedro Sula",
		RecipientName:           "Juan Perez",
		DestinationAddress:      "Barrio El Centro",
	}

	aggregate, err := order.NewOrder(clientID, sender, shipment)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetClientOrders() {
	ctx := context.Background()
	owner := suite.addClient(1)
	first := suite.addOrder(owner.ID())
	second := suite.addOrder(owner.ID())

	query, err := queries.NewGetClientOrdersQuery(owner.ID())
	suite.Require().NoError(err)

	rows, err := queries.NewGetClientOrdersQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.Equal(second.ID(), rows[0].ID)
	suite.Equal(first.ID(), rows[1].ID)
	suite.Equal("Pending", rows[0].StatusName)
	suite.Equal(first.TrackCode().String(), rows[1].TrackCode)
	suite.Equal(owner.Email(), rows[0].ClientEmail)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetClientOrders_NoOrders_ReturnsNotFound() {
	owner := suite.addClient(1)

	query, err := queries.NewGetClientOrdersQuery(owner.ID())
	suite.Require().NoError(err)

	_, err = queries.NewGetClientOrdersQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetClientOrders_SkipsDeleted() {
	ctx := context.Background()
	owner := suite.addClient(1)
	kept := suite.addOrder(owner.ID())
	removed := suite.addOrder(owner.ID())
	suite.Require().NoError(suite.orderRepo.Delete(ctx, removed.ID()))

	query, err := queries.NewGetClientOrdersQuery(owner.ID())
	suite.Require().NoError(err)

	rows, err := queries.NewGetClientOrdersQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal(kept.ID(), rows[0].ID)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrderByID() {
	ctx := context.Background()
	owner := suite.addClient(1)
	aggregate := suite.addOrder(owner.ID())

	query, err := queries.NewGetOrderByIDQuery(aggregate.ID(), owner.ID())
	suite.Require().NoError(err)

	details, err := queries.NewGetOrderByIDQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), details.ID)
	suite.Equal(aggregate.TrackCode().String(), details.TrackCode)
	suite.Equal("Pending", details.StatusName)
	suite.Equal("Maria", details.SenderName)
	suite.Equal("Juan Perez", details.RecipientName)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrderByID_ForeignOwner_ReturnsNotFound() {
	ctx := context.Background()
	owner := suite.addClient(1)
	other := suite.addClient(2)
	aggregate := suite.addOrder(owner.ID())

	query, err := queries.NewGetOrderByIDQuery(aggregate.ID(), other.ID())
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderByIDQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestTrackOrderByCode() {
	ctx := context.Background()
	owner := suite.addClient(1)
	aggregate := suite.addOrder(owner.ID())

	query, err := queries.NewTrackOrderByCodeQuery(aggregate.TrackCode().String())
	suite.Require().NoError(err)

	info, err := queries.NewTrackOrderByCodeQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(aggregate.TrackCode().String(), info.TrackCode)
	suite.Equal("Pending", info.StatusName)
	suite.Equal("Juan Perez", info.RecipientName)
}

func (suite *QueryHandlersIntegrationTestSuite) TestTrackOrderByCode_Unknown_ReturnsNotFound() {
	query, err := queries.NewTrackOrderByCodeQuery("5e9c1c12-9b3f-4a68-9c63-6f9e9a2d6c11")
	suite.Require().NoError(err)

	_, err = queries.NewTrackOrderByCodeQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetClientProfile_CountsOrdersByStatus() {
	ctx := context.Background()
	owner := suite.addClient(1)
	suite.addOrder(owner.ID())
	suite.addOrder(owner.ID())

	shipped := suite.addOrder(owner.ID())
	suite.Require().NoError(shipped.ChangeStatus(order.InTransit))
	suite.Require().NoError(suite.orderRepo.Update(ctx, shipped))

	query, err := queries.NewGetClientProfileQuery(owner.ID())
	suite.Require().NoError(err)

	profile, err := queries.NewGetClientProfileQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(owner.ID(), profile.ID)
	suite.Equal(owner.Email(), profile.Email)
	suite.EqualValues(3, profile.TotalOrders)

	counts := make(map[string]int64, len(profile.OrderCounts))
	for _, c := range profile.OrderCounts {
		counts[c.StatusName] = c.Count
	}
	suite.EqualValues(2, counts["Pending"])
	suite.EqualValues(1, counts["In transit"])
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetClientProfile_Unknown_ReturnsNotFound() {
	query, err := queries.NewGetClientProfileQuery(424242)
	suite.Require().NoError(err)

	_, err = queries.NewGetClientProfileQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrderStatuses() {
	rows, err := queries.NewGetOrderStatusesQueryHandler(suite.db).Handle(
		context.Background(), queries.NewGetOrderStatusesQuery())

	suite.Require().NoError(err)
	suite.Require().Len(rows, 4)
	suite.Equal("Pending", rows[0].Name)
	suite.Equal("In transit", rows[1].Name)
	suite.Equal("Delivered", rows[2].Name)
	suite.Equal("Canceled", rows[3].Name)
}

func TestQueryHandlersIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(QueryHandlersIntegrationTestSuite))
}
