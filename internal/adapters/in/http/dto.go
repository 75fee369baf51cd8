// Package http exposes the courier-facing REST API: session management, route
// listings, route transitions, and the delivery confirmation flow.
package http

import (
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/application/workflows"
)

// Error is the uniform error body of the API.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LoginRequest carries the courier identity for session start.
type LoginRequest struct {
	UserID string `json:"userID"`
}

// ScanRequest carries the raw QR payload from the scanner.
type ScanRequest struct {
	Payload string `json:"payload"`
}

// ConfirmRequest carries the delivery confirmation code.
type ConfirmRequest struct {
	Code string `json:"code"`
}

// Route is the wire representation of a route.
type Route struct {
	ID           string    `json:"id"`
	Status       string    `json:"status"`
	CourierID    string    `json:"courierId,omitempty"`
	Client       string    `json:"client"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Details      string    `json:"details"`
	PlannedStart time.Time `json:"plannedStart"`
	PlannedEnd   time.Time `json:"plannedEnd"`
}

// Parcel is the wire representation of a route's parcel.
type Parcel struct {
	ID       string  `json:"id"`
	RouteID  string  `json:"routeId"`
	Name     string  `json:"name"`
	Details  string  `json:"details,omitempty"`
	WeightKg float64 `json:"weightKg"`
	WidthCm  int     `json:"widthCm"`
	LengthCm int     `json:"lengthCm"`
	HeightCm int     `json:"heightCm"`
	Deposit  string  `json:"deposit,omitempty"`
	Shelf    string  `json:"shelf,omitempty"`
	Sector   string  `json:"sector,omitempty"`
}

// Confirmation is the wire snapshot of a live confirmation workflow.
type Confirmation struct {
	RouteID          string `json:"routeId"`
	State            string `json:"state"`
	RemainingSeconds int    `json:"remainingSeconds"`
	RemainingDisplay string `json:"remainingDisplay"`
	RunningOut       bool   `json:"runningOut"`
}

func toRoute(r queries.RouteResponse) Route {
	return Route{
		ID:           r.ID.String(),
		Status:       r.Status.String(),
		CourierID:    r.CourierID,
		Client:       r.Client,
		Latitude:     r.Destination.Latitude(),
		Longitude:    r.Destination.Longitude(),
		Details:      r.Details,
		PlannedStart: r.PlannedStart,
		PlannedEnd:   r.PlannedEnd,
	}
}

func toRoutes(responses []queries.RouteResponse) []Route {
	routes := make([]Route, len(responses))
	for i, r := range responses {
		routes[i] = toRoute(r)
	}
	return routes
}

func toParcel(p *queries.ParcelResponse) Parcel {
	return Parcel{
		ID:       p.ID.String(),
		RouteID:  p.RouteID.String(),
		Name:     p.Name,
		Details:  p.Details,
		WeightKg: p.WeightKg,
		WidthCm:  p.WidthCm,
		LengthCm: p.LengthCm,
		HeightCm: p.HeightCm,
		Deposit:  p.Deposit,
		Shelf:    p.Shelf,
		Sector:   p.Sector,
	}
}

func toConfirmation(w *workflows.Workflow) Confirmation {
	return Confirmation{
		RouteID:          w.RouteID().String(),
		State:            string(w.State()),
		RemainingSeconds: w.Remaining(),
		RemainingDisplay: w.RemainingDisplay(),
		RunningOut:       w.RunningOut(),
	}
}
