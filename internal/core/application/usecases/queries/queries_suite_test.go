package queries_test

import (
	"context"
	"time"

	"logistics/internal/adapters/out/postgres/parcelrepo"
	"logistics/internal/adapters/out/postgres/routerepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// postgresSuite is the shared base for query handler suites: one Postgres
// container per suite, tables migrated from the repository DTOs, truncated
// before each test.
type postgresSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *postgresSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&routerepo.RouteDTO{}, &parcelrepo.ParcelDTO{})
	suite.Require().NoError(err)
}

func (suite *postgresSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *postgresSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE routes, parcels CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *postgresSuite) seedRoute(status route.Status, courierID string) kernel.UUID {
	id := kernel.NewUUID()
	dto := routerepo.RouteDTO{
		ID:        id.Bytes(),
		Status:    status.String(),
		CourierID: courierID,
		Client:    "M. Gonzalez",
		Destination: routerepo.DestinationDTO{
			Latitude:  -34.6037,
			Longitude: -58.3816,
			Details:   "Av. Corrientes 1234",
		},
		PlannedStart: time.Now().UTC().Truncate(time.Second),
		PlannedEnd:   time.Now().UTC().Add(2 * time.Hour).Truncate(time.Second),
	}
	err := suite.db.Create(&dto).Error
	suite.Require().NoError(err)
	return id
}

// stubSession is a fixed-identity session for query handler tests.
type stubSession struct {
	userID string
}

func (s stubSession) CurrentUserID() string {
	return s.userID
}

func (s stubSession) FreshIDToken(_ context.Context) (string, error) {
	return "test-token", nil
}
