package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
)

// Config is the full runtime configuration, loaded from the environment
// (optionally seeded from a .env file).
type Config struct {
	Addr        string `envconfig:"ADDR" default:"localhost:4242"`
	WebhookAddr string `envconfig:"WEBHOOK_ADDR" default:"localhost:4343"`
	LogFile     string `envconfig:"LOGFILE" default:"server.log"`

	DatabaseFile string `envconfig:"DATABASE_FILE" default:"cart.db"`

	StripeSecret        string `envconfig:"STRIPE_SECRET" required:"true"`
	StripeWebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET" required:"true"`
	CSRFAuthToken       string `envconfig:"CSRF_AUTH_TOKEN" required:"true"`

	CheckoutSuccessURL string `envconfig:"CHECKOUT_SUCCESS_URL" default:"http://localhost:3000/order-confirmation"`
	CheckoutCancelURL  string `envconfig:"CHECKOUT_CANCEL_URL" default:"http://localhost:3000/cart"`

	FulfillmentAPIToken   string `envconfig:"FULFILLMENT_API_TOKEN"`
	FulfillmentShopID     int    `envconfig:"FULFILLMENT_SHOP_ID"`
	FulfillmentCatalogURL string `envconfig:"FULFILLMENT_CATALOG_URL"`

	MailingListURL string `envconfig:"MAILING_LIST_URL"`
	MailingListKey string `envconfig:"MAILING_LIST_KEY"`
}

// Load reads .env if present, then parses the environment. Missing required
// values are a startup failure.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file loaded, relying on environment")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
