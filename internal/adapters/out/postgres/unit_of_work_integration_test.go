package postgres_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	postgresadapter "meddelivery/internal/adapters/out/postgres"
	"meddelivery/internal/adapters/out/postgres/outboxrepo"
	"meddelivery/internal/adapters/out/postgres/pgtest"
	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/core/domain/model/order"
	"meddelivery/internal/core/domain/model/pharmacy"
	"meddelivery/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	factory  ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(database.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.PharmacyRepository())
	suite.NotNil(uow1.OutboxRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "a second Begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WritesEventsToOutbox() {
	ctx := context.Background()
	p, medicine := suite.createPharmacy(ctx)
	o := suite.newOrder(p, medicine, 2)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(p.Reserve(o.Items()))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.PharmacyRepository().Update(ctx, p))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Empty(o.DomainEvents(), "events are cleared once stored")

	messages := suite.unpublished()
	suite.Require().Len(messages, 1)
	suite.Equal(order.EventOrderPlaced, messages[0].Name)
	suite.True(messages[0].AggregateID.IsEqual(o.ID()))

	var payload map[string]any
	suite.Require().NoError(json.Unmarshal(messages[0].Payload, &payload))
	suite.Equal(o.ID().String(), payload["order_id"])
	suite.Equal("25.00", payload["total_amount"])

	stored, err := suite.factory.Create().PharmacyRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	m, _ := stored.Medicine(medicine.ID())
	suite.Equal(8, m.Stock())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsStateAndEvents() {
	ctx := context.Background()
	p, medicine := suite.createPharmacy(ctx)
	o := suite.newOrder(p, medicine, 1)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().Error(err)
	suite.Empty(suite.unpublished())
	suite.Len(o.DomainEvents(), 1, "events stay on the aggregate when nothing was stored")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_StatusChangesAreAppendedInOrder() {
	ctx := context.Background()
	p, medicine := suite.createPharmacy(ctx)
	o := suite.newOrder(p, medicine, 1)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	owner, err := kernel.NewActor(p.ID(), kernel.RolePharmacy)
	suite.Require().NoError(err)
	driverID := kernel.NewUUID()

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	loaded, err := uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.ChangeStatus(owner, order.Accepted, time.Now()))
	suite.Require().NoError(loaded.AssignDriver(owner, driverID, time.Now().Add(time.Millisecond)))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, loaded))
	suite.Require().NoError(uow.Commit(ctx))

	messages := suite.unpublished()
	suite.Require().Len(messages, 3)
	suite.Equal(order.EventOrderPlaced, messages[0].Name)
	suite.Equal(order.EventOrderStatusChanged, messages[1].Name)
	suite.Equal(order.EventDriverAssigned, messages[2].Name)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositoriesWithoutTransaction() {
	ctx := context.Background()
	p, medicine := suite.createPharmacy(ctx)
	o := suite.newOrder(p, medicine, 1)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	got, err := uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(got.ID().IsEqual(o.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) createPharmacy(ctx context.Context) (*pharmacy.Pharmacy, *pharmacy.Medicine) {
	loc, err := kernel.NewLocation(28.6139, 77.209, "Connaught Place")
	suite.Require().NoError(err)
	p, err := pharmacy.NewPharmacy(kernel.NewUUID(), "Apollo", loc)
	suite.Require().NoError(err)
	m, err := p.AddMedicine(kernel.NewUUID(), "Paracetamol", decimal.RequireFromString("12.50"), 10)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.PharmacyRepository().Add(ctx, p))
	suite.Require().NoError(uow.Commit(ctx))

	stored, err := suite.factory.Create().PharmacyRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	storedMedicine, ok := stored.Medicine(m.ID())
	suite.Require().True(ok)
	return stored, storedMedicine
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder(p *pharmacy.Pharmacy, m *pharmacy.Medicine, quantity int) *order.Order {
	item, err := order.NewItem(m.ID(), m.Name(), quantity, m.Price())
	suite.Require().NoError(err)
	address, err := kernel.NewLocation(28.62, 77.21, "Janpath 4")
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), p.ID(), []order.Item{item}, address,
		order.UPI, order.Estimate{DistanceKm: 0.69, Minutes: 6}, "", time.Now())
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) unpublished() []ports.OutboxMessage {
	messages, err := outboxrepo.NewGormOutboxRepository(suite.database.DB).GetUnpublished(context.Background(), 100)
	suite.Require().NoError(err)
	return messages
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
