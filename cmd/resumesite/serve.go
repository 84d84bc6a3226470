package main

import (
	"context"
	"errors"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/resume-site/internal/metrics"
	"github.com/joseph-ayodele/resume-site/internal/pipeline"
	"github.com/joseph-ayodele/resume-site/internal/repository"
	"github.com/joseph-ayodele/resume-site/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, err := repository.Open(ctx, cfg.Store, logger)
	if err != nil {
		logger.Error("failed to open store", "driver", cfg.Store.Driver, "error", err)
		return err
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("failed to close store", "error", err)
		}
	}()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	err = repo.Ping(pingCtx)
	cancel()
	if err != nil {
		logger.Error("failed to ping store", "error", err)
		return err
	}

	normalizer, err := newNormalizer(cfg.LLM, logger)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	processor := pipeline.NewProcessor(logger,
		newExtractor(cfg.Extract, logger),
		normalizer,
		repo,
		pipeline.WithMetrics(m),
	)

	srv, err := server.New(server.Config{
		BodyLimitMB:  cfg.Server.BodyLimitMB,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, server.Deps{
		Ingestor: processor,
		Store:    repo,
		Metrics:  m,
		Registry: reg,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 2)
	if cfg.Server.GRPCAddr != "" {
		lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
		if err != nil {
			logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
			return err
		}
		hs := server.NewHealthServer(repo, 15*time.Second, logger)
		go func() { errCh <- hs.Serve(ctx, lis) }()
	}
	go func() { errCh <- srv.Listen(cfg.Server.HTTPAddr) }()

	logger.Info("resumesite started",
		"http_addr", cfg.Server.HTTPAddr,
		"grpc_addr", cfg.Server.GRPCAddr,
		"store", cfg.Store.Driver,
		"provider", cfg.LLM.Provider,
	)

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			logger.Error("server stopped", "error", err)
			return err
		}
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("http shutdown failed", "error", err)
	}
	return nil
}
