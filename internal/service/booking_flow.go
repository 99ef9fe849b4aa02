package service

import (
	"context"
	"sync"
	"time"

	"holidaze/internal/booking"
	"holidaze/internal/entities"
	apierrors "holidaze/internal/errors"
	"holidaze/internal/session"
)

// State is the position of the submission flow.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateSubmitting
	StateSuccess
	StateFailed
)

// Outcome classifies how a single submission attempt ended.
type Outcome int

const (
	// OutcomeBooked means the remote API created the booking.
	OutcomeBooked Outcome = iota
	// OutcomeInvalid is a validator rejection; Reason carries why.
	OutcomeInvalid
	// OutcomeNotAuthenticated routes the caller to login; no request
	// was issued and this is not a validation failure.
	OutcomeNotAuthenticated
	// OutcomeFailed means the creation request was issued and failed.
	OutcomeFailed
	// OutcomeIgnored means a submission was already in flight and this
	// trigger was dropped.
	OutcomeIgnored
)

// SubmitResult is what the flow reports back to the UI.
type SubmitResult struct {
	Outcome Outcome
	Reason  booking.FailureReason
	Message string
	Booking *entities.Booking
}

// BookingCreator is the one client call the flow needs.
type BookingCreator interface {
	CreateBooking(ctx context.Context, req entities.CreateBookingRequest) (*entities.Booking, error)
}

// BookingFlow orchestrates a user-initiated booking attempt end to end:
// validator, session check, creation request, and the success linger
// before navigating onward. A second trigger while a submission is in
// flight is a no-op, so repeated clicks issue exactly one request.
type BookingFlow struct {
	api      BookingCreator
	sessions *session.Store

	mu    sync.Mutex
	state State

	// successLinger is how long the success indicator stays visible
	// before onSuccess runs.
	successLinger time.Duration
	onSuccess     func(entities.Booking)
}

const defaultSuccessLinger = 1500 * time.Millisecond

func NewBookingFlow(api BookingCreator, sessions *session.Store) *BookingFlow {
	return &BookingFlow{
		api:           api,
		sessions:      sessions,
		successLinger: defaultSuccessLinger,
	}
}

// OnSuccess registers the post-success navigation hook.
func (f *BookingFlow) OnSuccess(fn func(entities.Booking)) {
	f.onSuccess = fn
}

// SetSuccessLinger overrides the success delay; zero disables it.
func (f *BookingFlow) SetSuccessLinger(d time.Duration) {
	f.successLinger = d
}

// State reports the flow's current position.
func (f *BookingFlow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Edited returns the flow to Idle after a surfaced failure, when the
// user changes any input.
func (f *BookingFlow) Edited() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateFailed || f.state == StateSuccess {
		f.state = StateIdle
	}
}

// Submit runs one booking attempt against a venue. The venue must have
// been fetched with booking expansion so the validator sees the
// existing ranges.
func (f *BookingFlow) Submit(ctx context.Context, venue entities.Venue, candidate booking.Candidate) SubmitResult {
	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return SubmitResult{Outcome: OutcomeIgnored}
	}
	f.state = StateValidating

	result := booking.Validate(candidate, venue)
	if !result.OK {
		f.state = StateFailed
		f.mu.Unlock()
		return SubmitResult{
			Outcome: OutcomeInvalid,
			Reason:  result.Reason,
			Message: result.Reason.Message(),
		}
	}

	if _, ok := f.sessions.Current(); !ok {
		f.state = StateIdle
		f.mu.Unlock()
		return SubmitResult{
			Outcome: OutcomeNotAuthenticated,
			Message: "please log in to book this venue",
		}
	}

	f.state = StateSubmitting
	f.mu.Unlock()

	booked, err := f.api.CreateBooking(ctx, entities.CreateBookingRequest{
		VenueID:  venue.ID,
		DateFrom: result.DateFrom,
		DateTo:   result.DateTo,
		Guests:   candidate.Guests,
	})

	f.mu.Lock()
	if err != nil {
		f.state = StateFailed
		f.mu.Unlock()
		message := "failed to create booking"
		if apierrors.KindOf(err) != apierrors.KindUnknown {
			message = err.Error()
		}
		return SubmitResult{Outcome: OutcomeFailed, Message: message}
	}
	f.state = StateSuccess
	f.mu.Unlock()

	if f.successLinger > 0 {
		time.Sleep(f.successLinger)
	}
	if f.onSuccess != nil {
		f.onSuccess(*booked)
	}
	return SubmitResult{Outcome: OutcomeBooked, Booking: booked}
}
