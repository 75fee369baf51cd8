package http

import (
	"errors"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/application/workflows"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// SessionController is the session surface the API needs: the provider
// contract plus login and logout.
type SessionController interface {
	ports.SessionProvider
	Login(userID string) error
	Logout()
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	session SessionController

	// Command handlers
	reserveHandler commands.ReserveRouteCommandHandler
	releaseHandler commands.ReleaseRouteCommandHandler
	startHandler   commands.StartRouteCommandHandler

	// Query handlers
	courierRoutesHandler  queries.GetCourierRoutesQueryHandler
	routesByStatusHandler queries.GetRoutesByStatusQueryHandler
	routeHandler          queries.GetRouteQueryHandler
	routeParcelHandler    queries.GetRouteParcelQueryHandler

	// Confirmation flow
	confirmations *workflows.Manager
}

// NewServer creates the HTTP server with the required handlers.
func NewServer(
	session SessionController,
	reserveHandler commands.ReserveRouteCommandHandler,
	releaseHandler commands.ReleaseRouteCommandHandler,
	startHandler commands.StartRouteCommandHandler,
	courierRoutesHandler queries.GetCourierRoutesQueryHandler,
	routesByStatusHandler queries.GetRoutesByStatusQueryHandler,
	routeHandler queries.GetRouteQueryHandler,
	routeParcelHandler queries.GetRouteParcelQueryHandler,
	confirmations *workflows.Manager,
) *Server {
	return &Server{
		session:               session,
		reserveHandler:        reserveHandler,
		releaseHandler:        releaseHandler,
		startHandler:          startHandler,
		courierRoutesHandler:  courierRoutesHandler,
		routesByStatusHandler: routesByStatusHandler,
		routeHandler:          routeHandler,
		routeParcelHandler:    routeParcelHandler,
		confirmations:         confirmations,
	}
}

// RegisterRoutes binds all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/session", s.Login)
	api.DELETE("/session", s.Logout)

	api.GET("/routes", s.GetRoutesByStatus)
	api.GET("/routes/my", s.GetMyRoutes)
	api.GET("/routes/:routeID", s.GetRoute)
	api.GET("/routes/:routeID/parcel", s.GetRouteParcel)

	api.POST("/routes/:routeID/reserve", s.ReserveRoute)
	api.POST("/routes/:routeID/release", s.ReleaseRoute)
	api.POST("/routes/:routeID/start", s.StartRoute)
	api.POST("/scan", s.StartRouteFromScan)

	api.POST("/routes/:routeID/confirmation", s.BeginConfirmation)
	api.GET("/routes/:routeID/confirmation", s.GetConfirmation)
	api.POST("/routes/:routeID/confirmation/code", s.SubmitConfirmationCode)
	api.POST("/routes/:routeID/confirmation/cancel", s.CancelDelivery)
	api.DELETE("/routes/:routeID/confirmation", s.AbandonConfirmation)
}

// Login handles POST /api/v1/session - starts a courier session.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	if err := s.session.Login(req.UserID); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Logout handles DELETE /api/v1/session - ends the courier session.
func (s *Server) Logout(ctx echo.Context) error {
	s.session.Logout()
	return ctx.NoContent(http.StatusNoContent)
}

// GetMyRoutes handles GET /api/v1/routes/my - the session courier's routes,
// active work first.
func (s *Server) GetMyRoutes(ctx echo.Context) error {
	query := queries.NewGetCourierRoutesQuery()

	routes, err := s.courierRoutesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRoutes(routes))
}

// GetRoutesByStatus handles GET /api/v1/routes?status=available&unassigned=true.
func (s *Server) GetRoutesByStatus(ctx echo.Context) error {
	status, err := route.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetRoutesByStatusQuery(status, ctx.QueryParam("unassigned") == "true")
	if err != nil {
		return writeError(ctx, err)
	}

	routes, err := s.routesByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRoutes(routes))
}

// GetRoute handles GET /api/v1/routes/:routeID.
func (s *Server) GetRoute(ctx echo.Context) error {
	routeID, err := routeIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetRouteQuery(routeID)
	if err != nil {
		return writeError(ctx, err)
	}

	routeResp, err := s.routeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRoute(routeResp))
}

// GetRouteParcel handles GET /api/v1/routes/:routeID/parcel.
func (s *Server) GetRouteParcel(ctx echo.Context) error {
	routeID, err := routeIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetRouteParcelQuery(routeID)
	if err != nil {
		return writeError(ctx, err)
	}

	parcelResp, err := s.routeParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	if parcelResp == nil {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Route has no parcel",
		})
	}

	return ctx.JSON(http.StatusOK, toParcel(parcelResp))
}

// ReserveRoute handles POST /api/v1/routes/:routeID/reserve. The courier
// identity comes from the session.
func (s *Server) ReserveRoute(ctx echo.Context) error {
	routeID, err := routeIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	courierID := s.session.CurrentUserID()
	if courierID == "" {
		return writeError(ctx, errs.NewAuthenticationRequiredError("reserve route"))
	}

	cmd, err := commands.NewReserveRouteCommand(routeID, courierID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.reserveHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReleaseRoute handles POST /api/v1/routes/:routeID/release.
func (s *Server) ReleaseRoute(ctx echo.Context) error {
	routeID, err := routeIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewReleaseRouteCommand(routeID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.releaseHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartRoute handles POST /api/v1/routes/:routeID/start.
func (s *Server) StartRoute(ctx echo.Context) error {
	routeID, err := routeIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewStartRouteCommand(routeID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.startHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartRouteFromScan handles POST /api/v1/scan - starts the route encoded in
// a QR label payload.
func (s *Server) StartRouteFromScan(ctx echo.Context) error {
	var req ScanRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewStartRouteCommandFromScan(req.Payload)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.startHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"routeId": cmd.RouteID().String()})
}

// BeginConfirmation handles POST /api/v1/routes/:routeID/confirmation -
// opens (or resumes) the confirmation flow and its countdown.
func (s *Server) BeginConfirmation(ctx echo.Context) error {
	routeID, err := routeIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	w, err := s.confirmations.Begin(ctx.Request().Context(), routeID)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toConfirmation(w))
}

// GetConfirmation handles GET /api/v1/routes/:routeID/confirmation.
func (s *Server) GetConfirmation(ctx echo.Context) error {
	routeID, err := routeIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	w, ok := s.confirmations.Get(routeID)
	if !ok {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "No confirmation in progress for route",
		})
	}

	return ctx.JSON(http.StatusOK, toConfirmation(w))
}

// SubmitConfirmationCode handles POST /api/v1/routes/:routeID/confirmation/code.
func (s *Server) SubmitConfirmationCode(ctx echo.Context) error {
	routeID, err := routeIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req ConfirmRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	w, ok := s.confirmations.Get(routeID)
	if !ok {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "No confirmation in progress for route",
		})
	}

	if err = w.Confirm(ctx.Request().Context(), req.Code); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toConfirmation(w))
}

// CancelDelivery handles POST /api/v1/routes/:routeID/confirmation/cancel -
// the courier gives up on the delivery.
func (s *Server) CancelDelivery(ctx echo.Context) error {
	routeID, err := routeIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	w, ok := s.confirmations.Get(routeID)
	if !ok {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "No confirmation in progress for route",
		})
	}

	if err = w.Cancel(ctx.Request().Context()); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toConfirmation(w))
}

// AbandonConfirmation handles DELETE /api/v1/routes/:routeID/confirmation -
// tears the flow down without a server transition.
func (s *Server) AbandonConfirmation(ctx echo.Context) error {
	routeID, err := routeIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	if w, ok := s.confirmations.Get(routeID); ok {
		w.Close()
	}

	return ctx.NoContent(http.StatusNoContent)
}

func routeIDParam(ctx echo.Context) (kernel.UUID, error) {
	routeID, err := kernel.UUIDFromString(ctx.Param("routeID"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("routeID", err)
	}
	return routeID, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps application errors onto HTTP statuses.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrAuthenticationRequired):
		status = http.StatusUnauthorized
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidConfirmationCode):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrTransitionRejected),
		errors.Is(err, workflows.ErrConfirmationNotActive):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrTimeout):
		status = http.StatusGatewayTimeout
	case errors.Is(err, errs.ErrNetworkUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
