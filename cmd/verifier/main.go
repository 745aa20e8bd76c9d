package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/healthfactguardian/verifier-node/internal/api"
	"github.com/healthfactguardian/verifier-node/internal/buildinfo"
	"github.com/healthfactguardian/verifier-node/internal/config"
	"github.com/healthfactguardian/verifier-node/internal/core/services"
	"github.com/healthfactguardian/verifier-node/internal/gateways/analyzer"
	"github.com/healthfactguardian/verifier-node/internal/gateways/pubmed"
	"github.com/healthfactguardian/verifier-node/internal/gateways/registry"
	"github.com/healthfactguardian/verifier-node/internal/loader"
	"github.com/healthfactguardian/verifier-node/internal/log"
	"github.com/healthfactguardian/verifier-node/pkg/cache"
	client "github.com/healthfactguardian/verifier-node/pkg/http"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Error(context.Background(), "cannot load config", err)
		os.Exit(1)
	}

	// Context with log
	ctx := log.NewContext(context.Background(), cfg.Log.Level, cfg.Log.Mode, os.Stdout)

	if err := cfg.Sanitize(ctx); err != nil {
		log.Error(ctx, "there are errors in the configuration", err)
		os.Exit(1)
	}

	registryGateway, err := registry.NewGateway(ctx, cfg.Registry, cache.NewMemoryCache())
	if err != nil {
		log.Error(ctx, "cannot create registry gateway", err)
		os.Exit(1)
	}

	factStore := loader.NewFactStore(ctx, cfg.Facts.Dir)

	evidenceSource := pubmed.NewService(cfg.PubMed, client.NewClientWithRetry(cfg.PubMed.ResponseTimeout))

	analyzerService, err := analyzer.New(ctx, cfg.Analyzer, client.NewClientWithRetry(cfg.Analyzer.ResponseTimeout))
	if err != nil {
		log.Error(ctx, "cannot create analyzer", err)
		os.Exit(1)
	}

	verification := services.NewVerification(registryGateway, factStore, evidenceSource, analyzerService)

	mux := api.NewServer(verification, registryGateway, factStore.Len()).Routes(ctx)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: mux,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info(ctx, fmt.Sprintf("server started on port:%d", cfg.ServerPort), "revision", buildinfo.Revision())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(ctx, "starting http server", err)
		}
	}()

	<-quit
	log.Info(ctx, "Shutting down")
	if err := server.Shutdown(context.Background()); err != nil {
		log.Error(ctx, "shutting down http server", err)
	}
}
