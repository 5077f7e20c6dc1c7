package payment

import (
	"context"
	"strings"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/paymentintent"
)

// StripeProvider confirms payment intents through the Stripe API. The
// browser checkout confirms with Stripe.js; this implementation backs
// headless flows.
type StripeProvider struct {
	// PaymentMethod is the id or test token to confirm with.
	PaymentMethod string
}

func (p *StripeProvider) Confirm(ctx context.Context, clientSecret string) error {
	payment_intent_id := strings.Split(clientSecret, "_secret")[0]

	params := &stripe.PaymentIntentConfirmParams{
		PaymentMethod: stripe.String(p.PaymentMethod),
	}
	params.Context = ctx

	_, err := paymentintent.Confirm(payment_intent_id, params)
	if err == nil {
		return nil
	}

	// Card declines and validation failures carry a user-facing message;
	// anything else surfaces generically upstream.
	if stripeErr, ok := err.(*stripe.Error); ok {
		if stripeErr.Type == stripe.ErrorTypeCard || stripeErr.Type == stripe.ErrorTypeInvalidRequest {
			return &DeclineError{Message: stripeErr.Msg}
		}
	}
	return err
}
