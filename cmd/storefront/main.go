package main

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"storefront/internal/api"
	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/store"
	"storefront/pkg/kit"
)

func main() {
	service := "storefront"

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := kit.NewLogger(service, cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	st := store.New()

	// One-shot catalog seed. A failure is logged and the service starts
	// with whatever subset made it into the store.
	loader := catalog.NewLoader(cfg.CatalogURL, cfg.CatalogTimeout)
	if n, err := loader.Load(context.Background(), st); err != nil {
		log.Warn("catalog load failed, starting with partial or empty catalog",
			zap.Error(err), zap.String("url", cfg.CatalogURL))
	} else {
		log.Info("catalog loaded", zap.Int("products", n))
	}

	s := &api.Server{
		Store:               st,
		Log:                 log,
		CheckoutLimit:       cfg.CheckoutLimit,
		CheckoutLimitWindow: cfg.CheckoutLimitWindow,
	}

	h := api.NewHandler(s, api.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       prometheus.NewRegistry(),
		MetricsEnabled: cfg.MetricsEnabled,
		MetricsToken:   cfg.MetricsToken,
	})

	if err := kit.RunHTTPServer(cfg.Addr, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}
