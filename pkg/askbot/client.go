package askbot

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/askbot/internal/db"
	dbRedis "github.com/kailas-cloud/askbot/internal/db/redis"
	"github.com/kailas-cloud/askbot/internal/domain/reply"
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
	"github.com/kailas-cloud/askbot/internal/version"
)

const (
	defaultWikipediaURL     = "https://en.wikipedia.org"
	defaultLookupTimeout    = 10 * time.Second
	defaultReadinessTimeout = 10 * time.Second
	defaultCacheTTL         = 24 * time.Hour
	defaultCacheNamespace   = "sdk"
)

// Internal interfaces, swapped out in tests.
type chatUseCase interface {
	Answer(ctx context.Context, raw string) (reply.Reply, error)
	Welcome() string
	AllQuestions() []string
}

type suggestUseCase interface {
	Suggest(query string, limit int) []string
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// Client is the askbot entry point. It is safe for concurrent use.
type Client struct {
	store     db.Store
	chat      chatUseCase
	suggest   suggestUseCase
	healthSvc healthUseCase
	obs       *observer
}

// New creates a Client. The provided context bounds intent loading and the cache readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		intents:        intents.BundledFS(),
		wikipediaURL:   defaultWikipediaURL,
		lookupTimeout:  defaultLookupTimeout,
		cacheTTL:       defaultCacheTTL,
		botName:        version.Name,
		developerName:  version.AuthorName,
		developerEmail: version.AuthorEmail,
		bugReportURL:   version.BugReportURL,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	kb, err := intents.NewLoader(cfg.intents, zap.NewNop()).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("askbot: %w", err)
	}

	var lookup chatuc.SummaryLookup = cfg.lookup
	if lookup == nil {
		lookup = wikipedia.NewClient(&wikipedia.Config{
			BaseURL:   cfg.wikipediaURL,
			Timeout:   cfg.lookupTimeout,
			UserAgent: fmt.Sprintf("%s/%s (%s)", version.Name, version.Version, cfg.bugReportURL),
			Logger:    zap.NewNop(),
		})
	}

	c := &Client{obs: obs}

	var cachePinger healthuc.CachePinger
	if len(cfg.cacheAddrs) > 0 {
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.cacheAddrs,
			Password: cfg.cachePassword,
		})
		if err != nil {
			return nil, fmt.Errorf("askbot: create redis store: %w", err)
		}
		if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
			store.Close()
			return nil, fmt.Errorf("askbot: cache not ready: %w", err)
		}
		c.store = store
		cachePinger = store
		lookup = summarycache.New(lookup, store, cfg.cacheTTL, defaultCacheNamespace,
			metrics.LookupCacheTotal, zap.NewNop())
	}

	c.chat = chatuc.New(kb, classify.New(), resolve.New(), units.New(), lookup, chatuc.Placeholders{
		BotName:        cfg.botName,
		DeveloperName:  cfg.developerName,
		DeveloperEmail: cfg.developerEmail,
		BugReportURL:   cfg.bugReportURL,
	}).WithThreshold(cfg.threshold)
	c.suggest = suggestuc.New(kb)
	c.healthSvc = healthuc.New(kb, cachePinger)

	return c, nil
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ask answers one free-text query.
func (c *Client) Ask(ctx context.Context, text string) (ans Answer, err error) {
	start := time.Now()
	defer func() { c.obs.answered(text, ans, start, err) }()

	r, err := c.chat.Answer(ctx, text)
	if err != nil {
		return Answer{}, fmt.Errorf("ask: %w", err)
	}
	return Answer{
		Text:            r.Text,
		Query:           r.Query,
		Rating:          r.Rating,
		Action:          Action(r.Action),
		IsFallback:      r.IsFallback,
		SimilarQuestion: r.SimilarQuestion,
	}, nil
}

// Welcome returns a random greeting.
func (c *Client) Welcome() string {
	return c.chat.Welcome()
}

// Questions lists the known questions in random order.
func (c *Client) Questions() []string {
	return c.chat.AllQuestions()
}

// Suggest returns up to limit known questions fuzzily matching a partial query.
// limit <= 0 selects the default.
func (c *Client) Suggest(query string, limit int) []string {
	return c.suggest.Suggest(query, limit)
}

// Health checks the knowledge base and, when configured, the cache.
func (c *Client) Health(ctx context.Context) HealthStatus {
	report := c.healthSvc.Check(ctx)
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	h := HealthStatus{
		Status: string(report.Status),
		Checks: checks,
	}
	c.obs.checkedHealth(h)
	return h
}
