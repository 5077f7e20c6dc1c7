package external

/* Print-fulfillment provider glue: order submission through the go-printify
 * client, plus a thin passthrough to the provider's product catalog. */

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	go_printify "github.com/ericdbishop/go-printify"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"midnightgrove/cart"
)

type Fulfillment struct {
	client     *go_printify.Client
	shop_id    int
	catalogURL string
	httpc      *http.Client
	logger     *log.Logger
}

func NewFulfillment(api_token string, shop_id int, catalogURL string, logger *log.Logger) *Fulfillment {
	client := go_printify.NewClient(api_token)
	client.UserAgent = "Go"
	return &Fulfillment{
		client:     client,
		shop_id:    shop_id,
		catalogURL: strings.TrimRight(catalogURL, "/"),
		httpc:      &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}
}

// ClientInfo is the purchaser identity attached to a settled payment.
type ClientInfo struct {
	PaymentIntentID string
	Name            string
	Email           string
	Address         *Address
}

type Address struct {
	Line1      string
	Line2      string
	City       string
	Country    string
	PostalCode string
	State      string
}

// SubmitOrder sends the purchased items to the fulfillment provider.
func (f *Fulfillment) SubmitOrder(items []cart.CartItem, client_info *ClientInfo) error {
	if client_info.Address == nil {
		return errors.New("no shipping address on payment")
	}

	line_items := make([]*go_printify.LineItem, 0, len(items))
	for _, item := range items {
		sku := itemSKU(item)
		line_items = append(line_items, &go_printify.LineItem{
			Sku:      &sku,
			Quantity: item.Quantity,
		})
	}

	full_name := strings.Split(client_info.Name, " ")
	address_to := &go_printify.AddressTo{
		FirstName: full_name[0],
		Country:   client_info.Address.Country,
		Region:    client_info.Address.State,
		Address1:  client_info.Address.Line1,
		Address2:  client_info.Address.Line2,
		City:      client_info.Address.City,
		Zip:       client_info.Address.PostalCode,
		Email:     client_info.Email,
	}
	if len(full_name) > 1 {
		address_to.LastName = full_name[len(full_name)-1]
	}

	shipping_notification := true
	order := &go_printify.OrderSubmission{
		LineItems:                line_items,
		AddressTo:                address_to,
		Label:                    orderLabel(client_info.PaymentIntentID),
		SendShippingNotification: &shipping_notification,
		ShippingMethod:           1,
	}

	f.logger.WithFields(log.Fields{
		"payment_intent": client_info.PaymentIntentID,
		"label":          order.Label,
		"lines":          len(line_items),
	}).Info("Submitting fulfillment order")

	f.client.SubmitOrder(f.shop_id, order)
	return nil
}

/*
SKU naming:

	{product id}-{variant id}, uppercased

	ex: GROVE-BOOK-1-PAPERBACK
*/
func itemSKU(item cart.CartItem) string {
	return strings.ToUpper(item.ProductID + "-" + item.VariantID)
}

// Order labels used to come from a database counter; with no order table the
// label is derived from the payment intent reference instead.
func orderLabel(payment_intent_id string) string {
	label := strings.TrimPrefix(payment_intent_id, "pi_")
	return strings.ToUpper(fmt.Sprintf("%.8s", label))
}

// Products fetches the provider's catalog: one product by id, a filtered
// search, or the full list. The response body passes through untouched.
func (f *Fulfillment) Products(product_id, search string) ([]byte, error) {
	if f.catalogURL == "" {
		return nil, errors.New("no catalog URL configured")
	}

	endpoint := f.catalogURL + "/products"
	switch {
	case product_id != "":
		endpoint += "/" + url.PathEscape(product_id)
	case search != "":
		endpoint += "?search=" + url.QueryEscape(search)
	}

	resp, err := f.httpc.Get(endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "catalog request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("catalog returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read catalog response")
	}
	return body, nil
}
