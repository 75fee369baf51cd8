package workflows

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/countdown"
	"logistics/internal/pkg/errs"
)

// Manager owns the live confirmation workflows, at most one per route.
// Beginning a confirmation for a route that already has one returns the
// existing workflow, so reopening the confirmation screen does not reset the
// countdown.
type Manager struct {
	routes          commands.RouteReader
	completeHandler commands.CompleteDeliveryCommandHandler
	cancelHandler   commands.CancelDeliveryCommandHandler
	logger          *slog.Logger
	durationSeconds int
	timerOpts       []countdown.Option

	mu     sync.Mutex
	active map[kernel.UUID]*Workflow
}

// ManagerOption customizes a Manager.
type ManagerOption func(*Manager)

// WithCountdownSeconds overrides the confirmation window length.
func WithCountdownSeconds(seconds int) ManagerOption {
	return func(m *Manager) {
		m.durationSeconds = seconds
	}
}

// WithTimerOptions passes options through to the countdown timers. Used by
// tests to shrink the tick interval.
func WithTimerOptions(opts ...countdown.Option) ManagerOption {
	return func(m *Manager) {
		m.timerOpts = opts
	}
}

// NewManager creates a confirmation workflow manager.
func NewManager(
	routes commands.RouteReader,
	completeHandler commands.CompleteDeliveryCommandHandler,
	cancelHandler commands.CancelDeliveryCommandHandler,
	logger *slog.Logger,
	opts ...ManagerOption,
) *Manager {
	m := &Manager{
		routes:          routes,
		completeHandler: completeHandler,
		cancelHandler:   cancelHandler,
		logger:          logger.With("component", "confirmation_workflow"),
		durationSeconds: countdown.DefaultDurationSeconds,
		active:          make(map[kernel.UUID]*Workflow),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Begin starts (or resumes) the confirmation workflow for an in-progress
// route and its countdown. Routes in any other state are rejected.
func (m *Manager) Begin(ctx context.Context, routeID kernel.UUID) (*Workflow, error) {
	if err := routeID.Validate(); err != nil {
		return nil, err
	}

	if w, ok := m.Get(routeID); ok {
		return w, nil
	}

	aggregate, err := m.routes.Get(ctx, routeID)
	if err != nil {
		return nil, err
	}

	if aggregate.Status() != route.InProgress {
		return nil, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to confirm", aggregate.Status()))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if w, ok := m.active[routeID]; ok {
		return w, nil
	}

	w := &Workflow{
		routeID:         routeID,
		completeHandler: m.completeHandler,
		cancelHandler:   m.cancelHandler,
		logger:          m.logger.With("route_id", routeID.String()),
		state:           StateAwaitingCode,
		done:            make(chan struct{}),
	}

	timer, err := countdown.Start(m.durationSeconds, w.handleTimeout, m.timerOpts...)
	if err != nil {
		return nil, err
	}
	w.timer = timer

	m.active[routeID] = w
	go m.reap(w)

	return w, nil
}

// Get returns the live workflow for a route, if any.
func (m *Manager) Get(routeID kernel.UUID) (*Workflow, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.active[routeID]
	return w, ok
}

// CloseAll tears down every live workflow without server transitions.
// Called on shutdown.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	workflows := make([]*Workflow, 0, len(m.active))
	for _, w := range m.active {
		workflows = append(workflows, w)
	}
	m.mu.Unlock()

	for _, w := range workflows {
		w.Close()
	}
}

// reap removes the workflow from the live set once it reaches a terminal
// state.
func (m *Manager) reap(w *Workflow) {
	<-w.done
	m.mu.Lock()
	delete(m.active, w.routeID)
	m.mu.Unlock()
}
