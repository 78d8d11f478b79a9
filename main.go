package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"commission-engine/internal/commission"
	"commission-engine/internal/config"
	"commission-engine/internal/engine"
	"commission-engine/internal/handler"
	"commission-engine/internal/logging"
	"commission-engine/internal/metrics"
)

func main() {
	configPath := flag.String("config", "configs/default.yaml", "Path to the YAML config file.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	defer logger.Sync()

	collector := metrics.NewCollector(cfg.MetricsNamespace)
	eng := engine.New(commission.NewCalculator(cfg.CommissionRate), logger, collector)
	h := handler.New(eng, collector, logger)

	server := &fasthttp.Server{
		Name:               cfg.ServiceName,
		Handler:            h.Handle,
		ReadTimeout:        cfg.ReadTimeout,
		WriteTimeout:       cfg.WriteTimeout,
		MaxRequestBodySize: cfg.MaxRequestBodySize,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := ":" + strconv.Itoa(cfg.HTTPPort)
	errCh := make(chan error, 1)
	go func() {
		logger.Info("commission engine starting",
			zap.String("addr", addr),
			zap.Float64("commission_rate", cfg.CommissionRate),
		)
		errCh <- server.ListenAndServe(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		if err := server.Shutdown(); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	}
}
