package askbot

import (
	"io/fs"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	intents fs.FS

	wikipediaURL  string
	lookupTimeout time.Duration
	lookup        Lookup

	cacheAddrs    []string
	cachePassword string
	cacheTTL      time.Duration

	botName        string
	developerName  string
	developerEmail string
	bugReportURL   string
	threshold      float64

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithIntentsFS loads intent files from fsys instead of the bundled set.
func WithIntentsFS(fsys fs.FS) Option {
	return optionFunc(func(c *clientConfig) {
		c.intents = fsys
	})
}

// WithWikipedia sets the encyclopedia base URL, e.g. https://de.wikipedia.org.
// Defaults to https://en.wikipedia.org.
func WithWikipedia(baseURL string) Option {
	return optionFunc(func(c *clientConfig) {
		c.wikipediaURL = baseURL
	})
}

// WithLookupTimeout bounds every encyclopedia lookup. Default: 10s.
func WithLookupTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.lookupTimeout = d
	})
}

// WithLookup replaces the encyclopedia client entirely.
func WithLookup(l Lookup) Option {
	return optionFunc(func(c *clientConfig) {
		c.lookup = l
	})
}

// WithRedisCache caches summaries in Redis for ttl.
func WithRedisCache(addr, password string, ttl time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.cacheAddrs = []string{addr}
		c.cachePassword = password
		c.cacheTTL = ttl
	})
}

// WithBotIdentity sets the values substituted for the answer placeholders.
func WithBotIdentity(name, developerName, developerEmail, bugReportURL string) Option {
	return optionFunc(func(c *clientConfig) {
		c.botName = name
		c.developerName = developerName
		c.developerEmail = developerEmail
		c.bugReportURL = bugReportURL
	})
}

// WithMatchThreshold sets the score a chat match must exceed. Default: 0.6.
func WithMatchThreshold(t float64) Option {
	return optionFunc(func(c *clientConfig) {
		c.threshold = t
	})
}

// WithLogger enables structured logging for client operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers client metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
