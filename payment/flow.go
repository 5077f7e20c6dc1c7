package payment

/* Client-side payment confirmation flow. Drives one payment attempt against
 * a previously created client secret and owns the UI state transitions. */

import (
	"context"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"midnightgrove/error_messages"
)

type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateProcessing
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateLoading:
		return "LOADING"
	case StateReady:
		return "READY"
	case StateProcessing:
		return "PROCESSING"
	case StateSucceeded:
		return "SUCCESS"
	case StateFailed:
		return "FAILED"
	}
	return "UNKNOWN"
}

// GenericFailureMessage is shown for transport and unexpected errors; the
// user may retry. Provider declines are shown verbatim instead.
const GenericFailureMessage = "Something went wrong processing your payment. Please try again."

// DeclineError is a provider-reported validation or decline error. Its
// message is surfaced to the user as-is.
type DeclineError struct {
	Message string
}

func (e *DeclineError) Error() string { return e.Message }

// Provider confirms a submitted payment against a client secret.
type Provider interface {
	Confirm(ctx context.Context, clientSecret string) error
}

// MailingList registers a purchaser after a successful payment. Registration
// is best effort and must never delay or fail the success path.
type MailingList interface {
	Register(ctx context.Context, email string) error
}

// CartClearer empties the purchaser's cart once payment succeeds.
type CartClearer interface {
	Clear(storageKey string)
}

// Flow is the confirmation state machine:
//
//	IDLE -> LOADING -> READY -> PROCESSING -> SUCCESS | FAILED
//
// FAILED is re-entrant (the user may resubmit); SUCCESS is terminal.
type Flow struct {
	provider Provider
	mailing  MailingList
	carts    CartClearer
	logger   *log.Logger

	state        State
	clientSecret string
	storageKey   string
	email        string
	lastError    string
	confirmation string
}

func NewFlow(provider Provider, mailing MailingList, carts CartClearer, logger *log.Logger) *Flow {
	return &Flow{
		provider: provider,
		mailing:  mailing,
		carts:    carts,
		logger:   logger,
		state:    StateIdle,
	}
}

func (f *Flow) State() State { return f.state }

// LastError is the user-facing message of the most recent failed attempt.
func (f *Flow) LastError() string { return f.lastError }

// Confirmation is the reference carried to the confirmation destination.
// Empty until the flow succeeds.
func (f *Flow) Confirmation() string { return f.confirmation }

// RedirectURL is the post-success navigation target.
func (f *Flow) RedirectURL() string {
	if f.confirmation == "" {
		return ""
	}
	return "/order-confirmation?ref=" + f.confirmation
}

// Begin starts provider initialization for a client secret.
func (f *Flow) Begin(clientSecret, storageKey, email string) error {
	if f.state != StateIdle {
		return error_messages.ErrFlowState
	}
	f.clientSecret = clientSecret
	f.storageKey = storageKey
	f.email = email
	f.state = StateLoading
	return nil
}

// Ready marks provider initialization complete; the payment form may be
// submitted from here on.
func (f *Flow) Ready() error {
	if f.state != StateLoading {
		return error_messages.ErrFlowState
	}
	f.state = StateReady
	return nil
}

// Submit runs one confirmation attempt. Valid from READY and from FAILED
// (resubmission). The returned error is the transition error only; a payment
// failure lands the flow in FAILED with LastError set.
func (f *Flow) Submit(ctx context.Context) error {
	if f.state != StateReady && f.state != StateFailed {
		return error_messages.ErrFlowState
	}
	f.state = StateProcessing
	f.lastError = ""

	if err := f.provider.Confirm(ctx, f.clientSecret); err != nil {
		f.state = StateFailed
		if decline, ok := err.(*DeclineError); ok {
			f.lastError = decline.Message
		} else {
			f.logger.WithError(err).Warn("Payment confirmation failed")
			f.lastError = GenericFailureMessage
		}
		return nil
	}

	f.succeed(ctx)
	return nil
}

func (f *Flow) succeed(ctx context.Context) {
	f.state = StateSucceeded
	f.confirmation = uuid.NewString()
	f.carts.Clear(f.storageKey)

	if f.email != "" {
		if err := f.mailing.Register(ctx, f.email); err != nil {
			f.logger.WithError(err).WithField("email", f.email).Warn("Mailing list registration failed")
		}
	}
}
