package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"GlowDerma/internal/config"
	"GlowDerma/internal/pages"
	"GlowDerma/internal/shop"
	"GlowDerma/pkg/kit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	service := "glowderma"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	accessLog, err := kit.NewAccessLog(cfg.AccessLogFile)
	if err != nil {
		log.Fatal("open access log failed", zap.Error(err))
	}
	defer func() { _ = accessLog.Close() }()

	pg, err := pages.NewServer(log)
	if err != nil {
		log.Fatal("parse templates failed", zap.Error(err))
	}

	s := &shop.Server{Store: shop.NewStore(), Log: log}

	h := shop.NewHandler(s, pg, shop.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       prometheus.NewRegistry(),
		MetricsEnabled: cfg.MetricsEnabled,
		MetricsToken:   cfg.MetricsToken,
		Limiter:        kit.NewIPRateLimiter(cfg.RateLimit, cfg.RateWindowSeconds),
		AccessLog:      accessLog,
	})

	if err := kit.RunHTTPServer(":"+cfg.Port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}
