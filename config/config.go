package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"time"

	"bettracker/database"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken string `envconfig:"DISCORD_TOKEN"`
	GuildID      string `envconfig:"GUILD_ID"` // empty registers commands globally

	// Channel for win/loss streak milestones; empty disables announcements
	StreakChannelID string `envconfig:"STREAK_CHANNEL_ID"`

	// Database configuration
	DatabaseURL        string        `envconfig:"DATABASE_URL"`
	DatabaseName       string        `envconfig:"DATABASE_NAME"`
	DBMaxConns         int32         `envconfig:"DB_MAX_CONNS" default:"10"`
	DBMinConns         int32         `envconfig:"DB_MIN_CONNS" default:"1"`
	DBMaxConnIdleTime  time.Duration `envconfig:"DB_MAX_CONN_IDLE_TIME" default:"5m"`
	DBStatementTimeout time.Duration `envconfig:"DB_STATEMENT_TIMEOUT" default:"15s"`

	// NATS servers; empty disables remote event publishing
	NATSServers string `envconfig:"NATS_SERVERS"`

	// Tracker configuration
	DefaultUnitSize         decimal.Decimal `envconfig:"DEFAULT_UNIT_SIZE" default:"100"`
	LeaderboardDefaultLimit int             `envconfig:"LEADERBOARD_DEFAULT_LIMIT" default:"50"`
	StatsRebuildSchedule    string          `envconfig:"STATS_REBUILD_SCHEDULE" default:"0 4 * * *"`
	VerifiedDiscordIDs      []int64         `envconfig:"VERIFIED_DISCORD_IDS"` // members shown as verified cappers

	// Logging
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Environment
	Environment string `envconfig:"ENVIRONMENT" default:"development"` // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
	mu       sync.RWMutex
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		cfg, err := load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
		mu.Lock()
		instance = cfg
		mu.Unlock()
	})

	mu.RLock()
	defer mu.RUnlock()
	return instance
}

// GetDatabaseURL returns the database URL including the database name
func (c *Config) GetDatabaseURL() string {
	return database.ConstructDatabaseURL(c.DatabaseURL, c.DatabaseName)
}

// PoolOptions returns the connection pool sizing
func (c *Config) PoolOptions() database.PoolOptions {
	return database.PoolOptions{
		MaxConns:         c.DBMaxConns,
		MinConns:         c.DBMinConns,
		MaxConnIdleTime:  c.DBMaxConnIdleTime,
		StatementTimeout: c.DBStatementTimeout,
	}
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// load loads configuration from a .env file and environment variables
func load() (*Config, error) {
	// A missing .env file is normal outside local development
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if cfg.Environment == "test" {
		return &cfg, nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration needed to run the bot
func (c *Config) Validate() error {
	if c.DiscordToken == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.DBMaxConns < 1 {
		return fmt.Errorf("DB_MAX_CONNS must be at least 1, got %d", c.DBMaxConns)
	}
	if c.DBMinConns < 0 || c.DBMinConns > c.DBMaxConns {
		return fmt.Errorf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS, got %d", c.DBMinConns)
	}
	if !c.DefaultUnitSize.IsPositive() {
		return fmt.Errorf("DEFAULT_UNIT_SIZE must be positive, got %s", c.DefaultUnitSize)
	}
	if c.LeaderboardDefaultLimit < 1 || c.LeaderboardDefaultLimit > 100 {
		return fmt.Errorf("LEADERBOARD_DEFAULT_LIMIT must be between 1 and 100, got %d", c.LeaderboardDefaultLimit)
	}
	if _, err := cron.ParseStandard(c.StatsRebuildSchedule); err != nil {
		return fmt.Errorf("STATS_REBUILD_SCHEDULE is invalid: %w", err)
	}
	return nil
}

// Test helpers - only use in tests

// SetTestConfig overrides the global config instance for testing
func SetTestConfig(testConfig *Config) {
	once.Do(func() {})
	mu.Lock()
	defer mu.Unlock()
	instance = testConfig
}

// ResetConfig resets the global config instance and sync.Once for testing
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
	once = sync.Once{}
}

// NewTestConfig creates a minimal config suitable for unit tests
func NewTestConfig() *Config {
	return &Config{
		Environment:             "test",
		DefaultUnitSize:         decimal.NewFromInt(100),
		LeaderboardDefaultLimit: 50,
		StatsRebuildSchedule:    "0 4 * * *",
		VerifiedDiscordIDs:      []int64{999999},
		LogLevel:                "debug",
	}
}
