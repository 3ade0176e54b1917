package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/career-pulse/internal/catalog"
	"github.com/jonathan/career-pulse/internal/config"
	"github.com/jonathan/career-pulse/internal/insights"
	"github.com/jonathan/career-pulse/internal/llm"
	"github.com/jonathan/career-pulse/internal/observability"
	"github.com/jonathan/career-pulse/internal/server/ratelimit"
)

// app holds the process-wide collaborators shared by every command
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	metrics *observability.Metrics
	client  llm.Client
	service *insights.Service
}

// bootstrap loads configuration and wires the insight service.
// offline skips client construction even when a credential is present.
func bootstrap(ctx context.Context, offline bool) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return nil, err
	}

	pool, err := loadCatalog(cfg.Insights.CatalogPath)
	if err != nil {
		return nil, err
	}

	settings, tier, err := cfg.LLMSettings()
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:     cfg,
		logger:  logger,
		metrics: observability.NewMetrics(),
	}

	var completer insights.Completer
	if !offline && !cfg.Offline() {
		client, err := llm.NewClient(ctx, settings, cfg.LLM.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		a.client = client
		completer = client
		logger.Debug("completion client ready",
			zap.String("provider", string(settings.Provider)),
			zap.String("model", settings.GetModel(tier)))
	} else {
		logger.Debug("running offline, every insight is synthetic")
	}

	a.service = insights.NewService(insights.Options{
		Client:   completer,
		Tier:     tier,
		Timeout:  cfg.LLM.Timeout,
		Catalog:  pool,
		Random:   insights.NewRandomSource(cfg.Insights.Seed),
		Logger:   logger,
		Recorder: a.metrics,
	})
	return a, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}

// rateLimitConfig converts the configured limits for the HTTP server
func (a *app) rateLimitConfig() *ratelimit.Config {
	rl := a.cfg.RateLimit
	return &ratelimit.Config{
		Enabled:         rl.Enabled,
		DefaultLimit:    rl.DefaultLimit,
		DefaultWindow:   rl.DefaultWindow,
		CleanupInterval: rl.CleanupInterval,
		Whitelist:       ratelimit.ParseIPList(rl.Whitelist),
		Blacklist:       ratelimit.ParseIPList(rl.Blacklist),
		EndpointConfigs: ratelimit.DefaultEndpointConfigs(),
	}
}

// Close releases the client and flushes the logger
func (a *app) Close() {
	if a.client != nil {
		if err := a.client.Close(); err != nil {
			a.logger.Warn("failed to close LLM client", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}
