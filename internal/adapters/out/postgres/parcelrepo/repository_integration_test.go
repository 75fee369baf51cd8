package parcelrepo_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/parcelrepo"
	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GormParcelRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *parcelrepo.GormParcelRepository
}

func (suite *GormParcelRepositoryTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&parcelrepo.ParcelDTO{})
	suite.Require().NoError(err)

	suite.repo = parcelrepo.NewGormParcelRepository(db)
}

func (suite *GormParcelRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GormParcelRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE parcels CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GormParcelRepositoryTestSuite) seedParcel(routeID kernel.UUID) kernel.UUID {
	id := kernel.NewUUID()
	dto := parcelrepo.ParcelDTO{
		ID:       id.Bytes(),
		RouteID:  routeID.Bytes(),
		Name:     "Electro box",
		Details:  "fragile",
		WeightKg: 2.5,
		WidthCm:  30,
		LengthCm: 40,
		HeightCm: 20,
		Deposit:  "D1",
		Shelf:    "S3",
		Sector:   "A",
	}
	err := suite.db.Create(&dto).Error
	suite.Require().NoError(err)
	return id
}

func (suite *GormParcelRepositoryTestSuite) TestGetByRoute_ExistingParcel_MapsAllFields() {
	routeID := kernel.NewUUID()
	id := suite.seedParcel(routeID)

	found, err := suite.repo.GetByRoute(context.Background(), routeID)

	suite.Require().NoError(err)
	suite.Require().NotNil(found)
	suite.True(found.ID().IsEqual(id))
	suite.True(found.RouteID().IsEqual(routeID))
	suite.Equal("Electro box", found.Name())
	suite.Equal("fragile", found.Details())
	suite.InDelta(2.5, found.WeightKg(), 1e-9)
	suite.Equal("30x40x20 cm", found.Size().String())
	suite.Equal("D1", found.Slot().Deposit)
	suite.Equal("S3", found.Slot().Shelf)
	suite.Equal("A", found.Slot().Sector)
}

func (suite *GormParcelRepositoryTestSuite) TestGetByRoute_InvalidRouteID_ReturnsError() {
	_, err := suite.repo.GetByRoute(context.Background(), kernel.UUID{})

	suite.Require().ErrorIs(err, kernel.ErrUUIDIsNotConstructed)
}

func (suite *GormParcelRepositoryTestSuite) TestGetByRoute_NoParcel_ReturnsNilNil() {
	found, err := suite.repo.GetByRoute(context.Background(), kernel.NewUUID())

	suite.Require().NoError(err)
	suite.Nil(found)
}

func TestGormParcelRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GormParcelRepositoryTestSuite))
}
