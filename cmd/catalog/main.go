package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/Deepeshlodhii/product-search-engine/internal/catalog"
	"github.com/Deepeshlodhii/product-search-engine/internal/config"
	"github.com/Deepeshlodhii/product-search-engine/pkg/kit"
)

const service = "catalog"

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		boot, _ := zap.NewProduction()
		boot.Fatal("config load failed", zap.Error(err))
	}

	log := kit.NewLogger(service, cfg.Env)
	defer func() { _ = log.Sync() }()

	registry := prometheus.NewRegistry()

	s := &catalog.Server{
		Store:   catalog.NewStore(),
		Log:     log,
		Metrics: catalog.NewMetrics(registry),
	}

	h := catalog.NewHandler(s, catalog.HTTPDeps{
		Log:      log,
		Service:  service,
		Registry: registry,

		MetricsEnabled: cfg.MetricsEnabled,
		MetricsToken:   cfg.MetricsToken,

		RateLimit:              cfg.RateLimit,
		RateLimitWindowSeconds: cfg.RateLimitWindowSeconds,
	})

	if err := kit.RunHTTPServer(fmt.Sprintf(":%d", cfg.Port), h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}
