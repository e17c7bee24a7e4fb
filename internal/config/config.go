package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/askbot/internal/version"
)

// Config holds the askbot configuration.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Bot       BotConfig       `yaml:"bot"`
	Data      DataConfig      `yaml:"data"`
	Wikipedia WikipediaConfig `yaml:"wikipedia"`
	Cache     CacheConfig     `yaml:"cache"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// BotConfig holds the values substituted for [BOT_NAME], [DEVELOPER_NAME],
// [DEVELOPER_EMAIL] and [BUG_URL] in answers.
type BotConfig struct {
	Name           string `yaml:"name"`
	DeveloperName  string `yaml:"developer_name"`
	DeveloperEmail string `yaml:"developer_email"`
	BugReportURL   string `yaml:"bug_report_url"`
}

// DataConfig holds knowledge base settings.
type DataConfig struct {
	IntentsDir     string  `yaml:"intents_dir"` // empty: intents compiled into the binary
	PublicDir      string  `yaml:"public_dir"`
	MatchThreshold float64 `yaml:"match_threshold"`
}

// WikipediaConfig holds encyclopedia lookup settings.
type WikipediaConfig struct {
	BaseURL    string `yaml:"base_url"` // default: https://<language>.wikipedia.org
	Language   string `yaml:"language"`
	TimeoutSec int    `yaml:"timeout_sec"`
	UserAgent  string `yaml:"user_agent"`
}

// CacheConfig holds summary cache settings. The cache is disabled when Addrs is empty.
type CacheConfig struct {
	Addrs            []string `yaml:"addrs"`
	Password         string   `yaml:"password"`
	TTLSec           int      `yaml:"ttl_sec"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// Enabled reports whether a cache backend is configured.
func (c CacheConfig) Enabled() bool {
	return len(c.Addrs) > 0
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	return LoadFile(findConfigPath(env))
}

// LoadFile reads configuration from the YAML file at path.
func LoadFile(configPath string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// LoadDotEnv loads variables from the given .env files (default ".env") into the process
// environment without overriding variables that are already set. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.Port <= 0 {
		c.HTTP.Port = version.DefaultHTTPPort
	}
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 30
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Bot.Name == "" {
		c.Bot.Name = version.Name
	}
	if c.Bot.DeveloperName == "" {
		c.Bot.DeveloperName = version.AuthorName
	}
	if c.Bot.DeveloperEmail == "" {
		c.Bot.DeveloperEmail = version.AuthorEmail
	}
	if c.Bot.BugReportURL == "" {
		c.Bot.BugReportURL = version.BugReportURL
	}
	if c.Data.PublicDir == "" {
		c.Data.PublicDir = "public"
	}
	if c.Data.MatchThreshold == 0 {
		c.Data.MatchThreshold = 0.6
	}
	if c.Wikipedia.Language == "" {
		c.Wikipedia.Language = "en"
	}
	if c.Wikipedia.BaseURL == "" {
		c.Wikipedia.BaseURL = "https://" + c.Wikipedia.Language + ".wikipedia.org"
	}
	if c.Wikipedia.TimeoutSec <= 0 {
		c.Wikipedia.TimeoutSec = 10
	}
	if c.Wikipedia.UserAgent == "" {
		c.Wikipedia.UserAgent = fmt.Sprintf("%s/%s (%s)", version.Name, version.Version, c.Bot.BugReportURL)
	}
	if c.Cache.TTLSec <= 0 {
		c.Cache.TTLSec = 86400
	}
	if c.Cache.ReadinessTimeout <= 0 {
		c.Cache.ReadinessTimeout = 10
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if c.Data.MatchThreshold <= 0 || c.Data.MatchThreshold >= 1 {
		return fmt.Errorf("data.match_threshold must be between 0 and 1 (exclusive), got %v", c.Data.MatchThreshold)
	}
	u, err := url.Parse(c.Wikipedia.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("wikipedia.base_url must be an absolute http(s) URL, got %q", c.Wikipedia.BaseURL)
	}
	for _, addr := range c.Cache.Addrs {
		if strings.TrimSpace(addr) == "" {
			return errors.New("cache.addrs must not contain empty entries")
		}
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
