package external

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/webhook"

	"midnightgrove/error_messages"
)

func (h *Handlers) RegisterWebhook(r *mux.Router) {
	r.HandleFunc("/webhook", h.handleWebhook).Methods(http.MethodPost)
}

func (h *Handlers) handleWebhook(w http.ResponseWriter, req *http.Request) {
	const MaxBodyBytes = int64(65536)
	req.Body = http.MaxBytesReader(w, req.Body, MaxBodyBytes)
	payload, err := io.ReadAll(req.Body)
	if err != nil {
		h.logger.WithError(err).Error("webhook: error reading request body")
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	signatureHeader := req.Header.Get("Stripe-Signature")
	event, err := webhook.ConstructEvent(payload, signatureHeader, h.webhookSecret)
	if err != nil {
		h.logger.WithError(err).Warn("webhook: signature verification failed")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch event.Type {
	case "payment_intent.succeeded":
		var paymentIntent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &paymentIntent); err != nil {
			h.logger.WithError(err).Error("webhook: error parsing event payload")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		h.logger.WithFields(log.Fields{
			"payment_intent": paymentIntent.ID,
			"amount":         paymentIntent.Amount,
		}).Info("Payment succeeded")
		if err := h.handlePaymentIntentSucceeded(req.Context(), paymentIntent); err != nil {
			h.logger.WithError(err).Error("webhook: success handling failed")
		}
	case "payment_intent.payment_failed":
		var paymentIntent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &paymentIntent); err != nil {
			h.logger.WithError(err).Error("webhook: error parsing event payload")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		h.logger.WithFields(log.Fields{
			"payment_intent": paymentIntent.ID,
			"amount":         paymentIntent.Amount,
		}).Warn("Payment failed")
	}

	w.WriteHeader(http.StatusOK)
}

// handlePaymentIntentSucceeded finishes a settled payment: submit the
// fulfillment order, clear the purchaser's cart, and register them with the
// mailing list. The mailing call is best effort and never fails this path.
func (h *Handlers) handlePaymentIntentSucceeded(ctx context.Context, payment_intent stripe.PaymentIntent) error {
	storage_key, err := h.store.KeyForPaymentIntent(payment_intent.ID)
	if err != nil {
		if err == error_messages.ErrNotExists {
			h.logger.WithField("payment_intent", payment_intent.ID).
				Warn("No cart found for settled payment intent")
			return nil
		}
		return err
	}

	state := h.store.State(storage_key)
	if len(state.Items) > 0 {
		client_info := formClientInfo(payment_intent)
		if err := h.fulfillment.SubmitOrder(state.Items, client_info); err != nil {
			h.logger.WithError(err).WithField("payment_intent", payment_intent.ID).
				Error("Fulfillment order submission failed")
		}
	}

	h.store.Clear(storage_key)

	if payment_intent.ReceiptEmail != "" {
		if err := h.mailing.Register(ctx, payment_intent.ReceiptEmail); err != nil {
			h.logger.WithError(err).Warn("Mailing list registration failed")
		}
	}

	return nil
}

func formClientInfo(payment_intent stripe.PaymentIntent) *ClientInfo {
	info := &ClientInfo{
		PaymentIntentID: payment_intent.ID,
		Email:           payment_intent.ReceiptEmail,
	}
	if payment_intent.Shipping != nil {
		info.Name = payment_intent.Shipping.Name
		if payment_intent.Shipping.Address != nil {
			info.Address = &Address{
				Line1:      payment_intent.Shipping.Address.Line1,
				Line2:      payment_intent.Shipping.Address.Line2,
				City:       payment_intent.Shipping.Address.City,
				Country:    payment_intent.Shipping.Address.Country,
				PostalCode: payment_intent.Shipping.Address.PostalCode,
				State:      payment_intent.Shipping.Address.State,
			}
		}
	}
	return info
}
