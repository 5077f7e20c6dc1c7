package cart

import (
	log "github.com/sirupsen/logrus"

	"midnightgrove/error_messages"
)

// Store is the single owner of cart state. Every mutation goes through
// Dispatch, which runs the pure reducer and mirrors the result to the
// snapshot repository. The mirror is best-effort caching: a failed write is
// logged and the in-memory result still stands.
type Store struct {
	repo   SnapshotRepository
	logger *log.Logger
}

func NewStore(repo SnapshotRepository, logger *log.Logger) *Store {
	return &Store{repo: repo, logger: logger}
}

// State rehydrates the cart for a storage key. A missing or unreadable
// snapshot yields an empty cart rather than an error.
func (s *Store) State(storageKey string) CartState {
	items, err := s.repo.Load(storageKey)
	if err != nil {
		if err != error_messages.ErrNotExists {
			s.logger.WithError(err).WithField("key", storageKey).Warn("Could not load cart snapshot")
		}
		return Reduce(CartState{}, LoadCart{})
	}
	return Reduce(CartState{}, LoadCart{Items: items})
}

// Dispatch rehydrates, applies one action, and mirrors the new items.
func (s *Store) Dispatch(storageKey string, action Action) CartState {
	state := Reduce(s.State(storageKey), action)

	if err := s.repo.Save(storageKey, state.Items); err != nil {
		s.logger.WithError(err).WithField("key", storageKey).Warn("Cart snapshot write failed")
	}
	return state
}

// Clear empties the cart and drops its snapshot. Used by the payment success
// path; implements the clearer the payment flow depends on.
func (s *Store) Clear(storageKey string) {
	if err := s.repo.Delete(storageKey); err != nil && err != error_messages.ErrDeleteFailed {
		s.logger.WithError(err).WithField("key", storageKey).Warn("Could not delete cart snapshot")
	}
}

// AttachPaymentIntent links a created payment intent to the session's cart.
func (s *Store) AttachPaymentIntent(storageKey string, paymentIntentID string) error {
	// The cart may never have been written (client-supplied items only), so
	// make sure a row exists before pointing the payment intent at it.
	if _, err := s.repo.Load(storageKey); err == error_messages.ErrNotExists {
		if err := s.repo.Save(storageKey, nil); err != nil {
			return err
		}
	}
	return s.repo.AttachPaymentIntent(storageKey, paymentIntentID)
}

// KeyForPaymentIntent resolves a payment intent back to its storage key.
func (s *Store) KeyForPaymentIntent(paymentIntentID string) (string, error) {
	return s.repo.KeyForPaymentIntent(paymentIntentID)
}
