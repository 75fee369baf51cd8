package queries_test

import (
	"context"
	"testing"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type GetRouteQueryHandlerTestSuite struct {
	postgresSuite
	handler queries.GetRouteQueryHandler
}

func (suite *GetRouteQueryHandlerTestSuite) SetupSuite() {
	suite.postgresSuite.SetupSuite()
	suite.handler = queries.NewGetRouteQueryHandler(suite.db)
}

func (suite *GetRouteQueryHandlerTestSuite) TestHandle_ExistingRoute_MapsAllFields() {
	id := suite.seedRoute(route.InProgress, "courier-1")

	query, err := queries.NewGetRouteQuery(id)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(result.ID.IsEqual(id))
	suite.Equal(route.InProgress, result.Status)
	suite.Equal("courier-1", result.CourierID)
	suite.Equal("M. Gonzalez", result.Client)
	suite.InDelta(-34.6037, result.Destination.Latitude(), 1e-9)
	suite.InDelta(-58.3816, result.Destination.Longitude(), 1e-9)
	suite.Equal("Av. Corrientes 1234", result.Details)
	suite.False(result.PlannedStart.IsZero())
	suite.False(result.PlannedEnd.IsZero())
}

func (suite *GetRouteQueryHandlerTestSuite) TestHandle_MissingRoute_ReturnsNotFound() {
	query, err := queries.NewGetRouteQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetRouteQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetRouteQuery{})

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetRouteQuery constructor")
}

func TestGetRouteQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetRouteQueryHandlerTestSuite))
}
