package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/askbot/internal/config"
	dbRedis "github.com/kailas-cloud/askbot/internal/db/redis"
	"github.com/kailas-cloud/askbot/internal/domain/knowledge"
	"github.com/kailas-cloud/askbot/internal/metrics"
	"github.com/kailas-cloud/askbot/internal/repository/intents"
	"github.com/kailas-cloud/askbot/internal/repository/summarycache"
	"github.com/kailas-cloud/askbot/internal/transport/wikipedia"
	"github.com/kailas-cloud/askbot/internal/units"
	chatuc "github.com/kailas-cloud/askbot/internal/usecase/chat"
	"github.com/kailas-cloud/askbot/internal/usecase/classify"
	healthuc "github.com/kailas-cloud/askbot/internal/usecase/health"
	"github.com/kailas-cloud/askbot/internal/usecase/resolve"
	suggestuc "github.com/kailas-cloud/askbot/internal/usecase/suggest"
)

// app holds the assembled services. Close releases the cache connection, if any.
type app struct {
	knowledge *knowledge.Base
	chat      *chatuc.Service
	suggest   *suggestuc.Service
	health    *healthuc.Service
	store     *dbRedis.Store
}

func (a *app) Close() {
	if a.store != nil {
		a.store.Close()
	}
}

// buildApp is the composition root shared by every subcommand.
func buildApp(ctx context.Context, cfg config.Config, logger *zap.Logger) (*app, error) {
	// Registered explicitly (no init()) so tests control the default registry.
	metrics.RegisterAnswerMetrics()

	intentsFS := intents.BundledFS()
	if cfg.Data.IntentsDir != "" {
		intentsFS = os.DirFS(cfg.Data.IntentsDir)
	}
	kb, err := intents.NewLoader(intentsFS, logger).Load(ctx)
	if err != nil {
		if cfg.Data.IntentsDir != "" && intents.IsMissing(err) {
			return nil, fmt.Errorf("load intents: data.intents_dir %q is incomplete: %w", cfg.Data.IntentsDir, err)
		}
		return nil, fmt.Errorf("load intents: %w", err)
	}

	var lookup chatuc.SummaryLookup = wikipedia.NewClient(&wikipedia.Config{
		BaseURL:   cfg.Wikipedia.BaseURL,
		Timeout:   time.Duration(cfg.Wikipedia.TimeoutSec) * time.Second,
		UserAgent: cfg.Wikipedia.UserAgent,
		Logger:    logger,
	})

	a := &app{knowledge: kb}

	// Pass a nil interface (not a typed nil pointer) to health when the cache is off.
	var cachePinger healthuc.CachePinger
	if cfg.Cache.Enabled() {
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Cache.Addrs,
			Password: cfg.Cache.Password,
		})
		if err != nil {
			return nil, fmt.Errorf("create cache store: %w", err)
		}
		readiness := time.Duration(cfg.Cache.ReadinessTimeout) * time.Second
		if err := store.WaitForReady(ctx, readiness); err != nil {
			store.Close()
			return nil, fmt.Errorf("cache not ready: %w", err)
		}
		logger.Info("Connected to summary cache", zap.Strings("addrs", cfg.Cache.Addrs))

		a.store = store
		cachePinger = store
		lookup = summarycache.New(
			lookup, store,
			time.Duration(cfg.Cache.TTLSec)*time.Second,
			cfg.Wikipedia.Language,
			metrics.LookupCacheTotal,
			logger,
		)
	}

	a.chat = chatuc.New(kb, classify.New(), resolve.New(), units.New(), lookup, chatuc.Placeholders{
		BotName:        cfg.Bot.Name,
		DeveloperName:  cfg.Bot.DeveloperName,
		DeveloperEmail: cfg.Bot.DeveloperEmail,
		BugReportURL:   cfg.Bot.BugReportURL,
	}).WithThreshold(cfg.Data.MatchThreshold)
	a.suggest = suggestuc.New(kb)
	a.health = healthuc.New(kb, cachePinger)

	return a, nil
}
