// Package workflows coordinates the delivery confirmation flow: from the
// moment a courier opens the confirmation screen for an in-progress route, a
// countdown runs against the delivery. Entering the correct confirmation code
// completes the route; letting the countdown expire cancels it automatically,
// exactly once. A mistyped code keeps the flow alive with the countdown
// untouched.
package workflows

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/countdown"
)

// State is the lifecycle state of a confirmation workflow.
type State string

const (
	// StateAwaitingCode means the countdown is running and the workflow
	// accepts Confirm and Cancel.
	StateAwaitingCode State = "awaiting_code"

	// StateCompleting means a confirmation call is in flight.
	StateCompleting State = "completing"

	// StateCancelling means a cancellation call is in flight.
	StateCancelling State = "cancelling"

	// StateCompleted means the delivery was confirmed. Terminal.
	StateCompleted State = "completed"

	// StateCancelled means the delivery was cancelled, manually or by the
	// countdown expiring. Terminal.
	StateCancelled State = "cancelled"

	// StateClosed means the workflow was torn down without a server
	// transition. Terminal.
	StateClosed State = "closed"
)

// ErrConfirmationNotActive is returned by Confirm and Cancel when the
// workflow is not awaiting a code, either because a call is already in flight
// or because a terminal state was reached.
var ErrConfirmationNotActive = errors.New("confirmation workflow is not awaiting a code")

// Workflow drives the confirmation of one in-progress route. Create it
// through Manager.Begin. All methods are safe for concurrent use.
//
// Exactly one terminal decision is ever applied: the first of a successful
// confirmation, a cancellation, a countdown expiry, or Close wins, and every
// later outcome is discarded.
type Workflow struct {
	routeID         kernel.UUID
	completeHandler commands.CompleteDeliveryCommandHandler
	cancelHandler   commands.CancelDeliveryCommandHandler
	logger          *slog.Logger

	mu      sync.Mutex
	state   State
	decided bool
	expired bool
	timer   *countdown.Timer
	done    chan struct{}
}

// RouteID returns the identifier of the route being confirmed.
func (w *Workflow) RouteID() kernel.UUID {
	return w.routeID
}

// State returns the current workflow state.
func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Remaining returns the remaining whole seconds of the countdown.
func (w *Workflow) Remaining() int {
	return w.timer.Remaining()
}

// RunningOut reports whether the countdown entered its warning stretch.
func (w *Workflow) RunningOut() bool {
	return w.timer.RunningOut()
}

// RemainingDisplay renders the remaining time as M:SS.
func (w *Workflow) RemainingDisplay() string {
	return countdown.FormatSeconds(w.timer.Remaining())
}

// Done returns a channel closed when the workflow reaches a terminal state.
func (w *Workflow) Done() <-chan struct{} {
	return w.done
}

// Confirm submits the confirmation code. On success the route is completed
// and the countdown stops. An InvalidConfirmationCodeError returns the
// workflow to awaiting_code with the countdown untouched, as does any
// transport failure; the courier may retry until the countdown expires.
func (w *Workflow) Confirm(ctx context.Context, code string) error {
	if err := w.begin(StateCompleting); err != nil {
		return err
	}

	cmd, err := commands.NewCompleteDeliveryCommand(w.routeID, code)
	if err == nil {
		err = w.completeHandler.Handle(ctx, cmd)
	}

	return w.settle(ctx, err, StateCompleted)
}

// Cancel abandons the delivery on the courier's request. On success the route
// is cancelled and the countdown stops.
func (w *Workflow) Cancel(ctx context.Context) error {
	if err := w.begin(StateCancelling); err != nil {
		return err
	}

	cmd, err := commands.NewCancelDeliveryCommand(w.routeID)
	if err == nil {
		err = w.cancelHandler.Handle(ctx, cmd)
	}

	return w.settle(ctx, err, StateCancelled)
}

// Close tears the workflow down without a server transition, stopping the
// countdown. Used when the courier leaves the confirmation screen. Closing a
// decided workflow is a no-op.
func (w *Workflow) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.decided || w.state != StateAwaitingCode {
		return
	}

	w.decided = true
	w.state = StateClosed
	w.timer.Cancel()
	close(w.done)
}

// begin moves awaiting_code to the in-flight state for one call.
func (w *Workflow) begin(inFlight State) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateAwaitingCode {
		return ErrConfirmationNotActive
	}

	w.state = inFlight
	return nil
}

// settle applies the outcome of an in-flight call. A failed call normally
// reopens the workflow; if the countdown expired while the call was in
// flight, the deferred automatic cancellation runs instead.
func (w *Workflow) settle(ctx context.Context, callErr error, terminal State) error {
	w.mu.Lock()

	if w.decided {
		// The countdown or Close decided the outcome while this call was
		// in flight; its result no longer matters.
		w.mu.Unlock()
		if callErr == nil {
			w.logger.WarnContext(ctx, "transition landed after the workflow was decided")
		}
		return callErr
	}

	if callErr != nil {
		if w.expired {
			w.decided = true
			w.state = StateCancelling
			w.mu.Unlock()
			go w.autoCancel()
			return callErr
		}

		w.state = StateAwaitingCode
		w.mu.Unlock()
		return callErr
	}

	w.decided = true
	w.state = terminal
	w.timer.Cancel()
	close(w.done)
	w.mu.Unlock()
	return nil
}

// handleTimeout runs on the countdown goroutine when the window expires.
// If a call is in flight its resolution takes over; otherwise the automatic
// cancellation starts here.
func (w *Workflow) handleTimeout() {
	w.mu.Lock()
	w.expired = true
	if w.decided || w.state != StateAwaitingCode {
		w.mu.Unlock()
		return
	}

	w.decided = true
	w.state = StateCancelling
	w.mu.Unlock()

	w.autoCancel()
}

// autoCancel performs the expiry cancellation. The workflow is already
// decided; whatever the transport outcome, the workflow ends cancelled. A
// failed call is logged and left for the backend to reconcile.
func (w *Workflow) autoCancel() {
	ctx := context.Background()

	cmd, err := commands.NewCancelDeliveryCommand(w.routeID)
	if err == nil {
		err = w.cancelHandler.Handle(ctx, cmd)
	}

	if err != nil {
		w.logger.ErrorContext(ctx, "automatic cancellation failed", "error", err)
	} else {
		w.logger.InfoContext(ctx, "delivery cancelled after countdown expiry")
	}

	w.mu.Lock()
	w.state = StateCancelled
	close(w.done)
	w.mu.Unlock()
}
