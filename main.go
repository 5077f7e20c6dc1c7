package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v74"

	"midnightgrove/api/external"
	"midnightgrove/api/site"
	"midnightgrove/cart"
	"midnightgrove/checkout"
	"midnightgrove/config"
	"midnightgrove/mailing"
	"midnightgrove/worksheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Could not load configuration")
	}

	logger := log.New()
	logger.SetFormatter(&log.JSONFormatter{})
	logFile, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0666)
	if err == nil {
		logger.SetOutput(logFile)
		defer logFile.Close()
	}

	// The stripe-go client keys itself off this package-level value.
	stripe.Key = cfg.StripeSecret

	repo, err := cart.OpenDatabase(cfg.DatabaseFile)
	if err != nil {
		logger.WithError(err).Fatal("Could not open cart database")
	}

	store := cart.NewStore(repo, logger)
	builder := checkout.NewBuilder(cfg.CheckoutSuccessURL, cfg.CheckoutCancelURL)
	composer := worksheet.NewComposer(worksheet.DefaultTemplates(), worksheet.DefaultStories(), logger)
	fulfillment := external.NewFulfillment(cfg.FulfillmentAPIToken, cfg.FulfillmentShopID, cfg.FulfillmentCatalogURL, logger)
	mailingClient := mailing.NewClient(cfg.MailingListURL, cfg.MailingListKey)

	siteHandlers := site.NewHandlers(store, composer, logger)
	externalHandlers := external.NewHandlers(store, builder, fulfillment, mailingClient, cfg.StripeWebhookSecret, logger)

	CSRF := csrf.Protect(
		[]byte(cfg.CSRFAuthToken),
		csrf.SameSite(csrf.SameSiteStrictMode),
	)

	siteRouter := mux.NewRouter()
	siteHandlers.Register(siteRouter)
	externalHandlers.Register(siteRouter)

	webhookRouter := mux.NewRouter()
	externalHandlers.RegisterWebhook(webhookRouter)

	logger.WithFields(log.Fields{
		"addr":         cfg.Addr,
		"webhook_addr": cfg.WebhookAddr,
	}).Info("Starting server")

	siteSrv := &http.Server{Addr: cfg.Addr, Handler: CSRF(logMiddleware(siteRouter, logger))}
	webhookSrv := &http.Server{Addr: cfg.WebhookAddr, Handler: webhookRouter}

	go func() {
		if err := webhookSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Webhook server failed")
		}
	}()
	go func() {
		if err := siteSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Site server failed")
		}
	}()

	waitForKillSignal(logger)
	siteSrv.Shutdown(context.Background())
	webhookSrv.Shutdown(context.Background())
}

func waitForKillSignal(logger *log.Logger) {
	killSignalChan := make(chan os.Signal, 1)
	signal.Notify(killSignalChan, os.Interrupt, syscall.SIGTERM)

	switch <-killSignalChan {
	case os.Interrupt:
		logger.Info("Got SIGINT...")
	case syscall.SIGTERM:
		logger.Info("Got SIGTERM...")
	}
}

func logMiddleware(h http.Handler, logger *log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.WithFields(log.Fields{
			"method":     r.Method,
			"url":        r.URL.Path,
			"remoteAddr": r.RemoteAddr,
		}).Info("Request")
		h.ServeHTTP(w, r)
	})
}
