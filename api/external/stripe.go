package external

/* Payment-provider endpoints: Checkout Session and PaymentIntent creation. */

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"midnightgrove/cart"
	"midnightgrove/checkout"
	"midnightgrove/error_messages"
	"midnightgrove/mailing"
	"midnightgrove/session"
)

// Handlers carries the external-facing endpoints' dependencies. Everything is
// injected; there are no package-level singletons.
type Handlers struct {
	store         *cart.Store
	builder       *checkout.Builder
	fulfillment   *Fulfillment
	mailing       *mailing.Client
	webhookSecret string
	logger        *log.Logger
}

func NewHandlers(store *cart.Store, builder *checkout.Builder, fulfillment *Fulfillment,
	mailingClient *mailing.Client, webhookSecret string, logger *log.Logger) *Handlers {
	return &Handlers{
		store:         store,
		builder:       builder,
		fulfillment:   fulfillment,
		mailing:       mailingClient,
		webhookSecret: webhookSecret,
		logger:        logger,
	}
}

func (h *Handlers) Register(r *mux.Router) {
	r.HandleFunc("/api/create-checkout-session", h.handleCreateCheckoutSession).Methods(http.MethodPost)
	r.HandleFunc("/api/create-payment-intent", h.handleCreatePaymentIntent).Methods(http.MethodPost)
	r.HandleFunc("/api/products", h.handleProducts).Methods(http.MethodGet)
}

type checkoutSessionRequest struct {
	Items []cart.CartItem `json:"items"`
}

func (h *Handlers) handleCreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	var req checkoutSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithError(err).Warn("create-checkout-session: could not decode request body")
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session_id, err := h.builder.CreateSession(req.Items)
	if err != nil {
		if errors.Is(err, error_messages.ErrEmptyCart) {
			writeError(w, http.StatusBadRequest, error_messages.ErrEmptyCart.Error())
			return
		}
		h.logger.WithError(err).Error("create-checkout-session: provider call failed")
		writeError(w, http.StatusInternalServerError, error_messages.ErrSessionFailed.Error())
		return
	}

	w.Header().Set("X-CSRF-Token", csrf.Token(r))
	writeJSON(w, struct {
		SessionID string `json:"sessionId"`
	}{
		SessionID: session_id,
	})
}

type paymentIntentRequest struct {
	Items        []cart.CartItem       `json:"items"`
	CustomerData checkout.CustomerData `json:"customerData"`
}

func (h *Handlers) handleCreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req paymentIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithError(err).Warn("create-payment-intent: could not decode request body")
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pi, err := h.builder.CreatePaymentIntent(req.Items, req.CustomerData)
	if err != nil {
		if errors.Is(err, error_messages.ErrEmptyCart) || errors.Is(err, error_messages.ErrMissingCustomer) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.WithError(err).Error("create-payment-intent: provider call failed")
		writeError(w, http.StatusInternalServerError, error_messages.ErrIntentFailed.Error())
		return
	}

	// Link the intent to the caller's cart so the webhook can clear it
	// after the payment settles.
	session_id := session.BeginSession(w, r)
	if err := h.store.AttachPaymentIntent(session_id, pi.ID); err != nil {
		h.logger.WithError(err).WithField("payment_intent", pi.ID).
			Warn("Could not attach payment intent to cart")
	}

	h.logger.WithFields(log.Fields{
		"payment_intent": pi.ID,
		"amount":         pi.Amount,
	}).Info("Created payment intent")

	w.Header().Set("X-CSRF-Token", csrf.Token(r))
	writeJSON(w, struct {
		ClientSecret string `json:"clientSecret"`
	}{
		ClientSecret: pi.ClientSecret,
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		log.WithError(err).Error("json encode failed")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err := io.Copy(w, &buf); err != nil {
		log.WithError(err).Error("response write failed")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(struct {
		Error string `json:"error"`
	}{
		Error: message,
	})
}
