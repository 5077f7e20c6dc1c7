package checkout

/* Builds Stripe Checkout Sessions and PaymentIntents from cart contents. */

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v74"
	checkoutsession "github.com/stripe/stripe-go/v74/checkout/session"
	"github.com/stripe/stripe-go/v74/paymentintent"

	"midnightgrove/cart"
	"midnightgrove/error_messages"
)

// CustomerData accompanies an embedded-form payment attempt.
type CustomerData struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (c CustomerData) Validate() error {
	if strings.TrimSpace(c.FirstName) == "" ||
		strings.TrimSpace(c.LastName) == "" ||
		strings.TrimSpace(c.Email) == "" {
		return error_messages.ErrMissingCustomer
	}
	return nil
}

// LineItem is the provider-facing shape of one cart line. Ephemeral: built
// per checkout attempt, never persisted.
type LineItem struct {
	Name       string
	UnitAmount int64
	Quantity   int64
	Image      string
}

// BuildLineItems converts cart items for submission to the provider. The
// provider computes its own line totals from UnitAmount * Quantity.
func BuildLineItems(items []cart.CartItem) ([]LineItem, error) {
	if len(items) == 0 {
		return nil, error_messages.ErrEmptyCart
	}

	line_items := make([]LineItem, 0, len(items))
	for _, line := range items {
		name := line.Title
		if line.VariantName != "" {
			name = line.Title + " - " + line.VariantName
		}
		line_items = append(line_items, LineItem{
			Name:       name,
			UnitAmount: ToCents(line.Price),
			Quantity:   int64(line.Quantity),
			Image:      line.Image,
		})
	}
	return line_items, nil
}

// Builder creates provider-side checkout objects.
type Builder struct {
	SuccessURL string
	CancelURL  string
}

func NewBuilder(successURL, cancelURL string) *Builder {
	return &Builder{SuccessURL: successURL, CancelURL: cancelURL}
}

// CreateSession creates a redirect-based Checkout Session and returns its id.
// An empty cart is rejected before any provider call; a provider failure
// surfaces as one generic error with no retry.
func (b *Builder) CreateSession(items []cart.CartItem) (string, error) {
	line_items, err := BuildLineItems(items)
	if err != nil {
		return "", err
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(b.SuccessURL),
		CancelURL:  stripe.String(b.CancelURL),
	}
	for _, li := range line_items {
		product_data := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(li.Name),
		}
		if li.Image != "" {
			product_data.Images = []*string{stripe.String(li.Image)}
		}
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(string(stripe.CurrencyUSD)),
				UnitAmount:  stripe.Int64(li.UnitAmount),
				ProductData: product_data,
			},
			Quantity: stripe.Int64(li.Quantity),
		})
	}

	// Shipping and tax ride along as their own lines so the hosted page
	// total matches the local policy.
	totals := ComputeTotals(items)
	if totals.Shipping > 0 {
		params.LineItems = append(params.LineItems, extraLine("Shipping", totals.Shipping))
	}
	if totals.Tax > 0 {
		params.LineItems = append(params.LineItems, extraLine("Sales Tax", totals.Tax))
	}

	s, err := checkoutsession.New(params)
	if err != nil {
		return "", errors.WithMessage(error_messages.ErrSessionFailed, err.Error())
	}
	return s.ID, nil
}

// CreatePaymentIntent creates an embedded-form payment intent for the cart
// and returns it. The charge amount is the locally computed total, rounded
// once to cents.
func (b *Builder) CreatePaymentIntent(items []cart.CartItem, customer CustomerData) (*stripe.PaymentIntent, error) {
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, error_messages.ErrEmptyCart
	}

	totals := ComputeTotals(items)

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(ToCents(totals.Total)),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		ReceiptEmail: stripe.String(customer.Email),
	}
	params.AddMetadata("customer_name", customer.FirstName+" "+customer.LastName)
	if customer.Phone != "" {
		params.AddMetadata("customer_phone", customer.Phone)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, errors.WithMessage(error_messages.ErrIntentFailed, err.Error())
	}
	return pi, nil
}

func extraLine(name string, amount float64) *stripe.CheckoutSessionLineItemParams {
	return &stripe.CheckoutSessionLineItemParams{
		PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
			Currency:   stripe.String(string(stripe.CurrencyUSD)),
			UnitAmount: stripe.Int64(ToCents(amount)),
			ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
				Name: stripe.String(name),
			},
		},
		Quantity: stripe.Int64(1),
	}
}
