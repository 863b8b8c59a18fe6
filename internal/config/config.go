// /internal/config/config.go
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config is the whole runtime configuration, read from the environment.
type Config struct {
	DiscordToken      string `env:"DISCORD_TOKEN"`
	InitSlashCommands bool   `env:"INIT_SLASH_COMMANDS" envDefault:"true"`

	StorageDriver  string `env:"STORAGE_DRIVER" envDefault:"json"`
	StoragePath    string `env:"STORAGE_PATH" envDefault:"data/toolmaker.json"`
	StorageBackups int    `env:"STORAGE_BACKUPS" envDefault:"3"`

	Timezone    string `env:"TIMEZONE" envDefault:"Europe/Moscow"`
	ActiveFrom  string `env:"ACTIVE_FROM" envDefault:"2026-01-17 16:00"`
	ActiveUntil string `env:"ACTIVE_UNTIL" envDefault:"2026-04-11 23:59"`

	TickInterval          time.Duration `env:"TICK_INTERVAL" envDefault:"60s"`
	TriggerGrace          time.Duration `env:"TRIGGER_GRACE" envDefault:"10m"`
	WakeAt                ClockTime     `env:"WAKE_AT" envDefault:"05:30"`
	NightlyAt             ClockTime     `env:"NIGHTLY_AT" envDefault:"23:00"`
	WeeklyReportDay       Weekday       `env:"WEEKLY_REPORT_DAY" envDefault:"monday"`
	WeeklyReportAt        ClockTime     `env:"WEEKLY_REPORT_AT" envDefault:"08:00"`
	BonusMinute           int           `env:"BONUS_MINUTE" envDefault:"55"`
	BonusFromHour         int           `env:"BONUS_FROM_HOUR" envDefault:"6"`
	BonusUntilHour        int           `env:"BONUS_UNTIL_HOUR" envDefault:"22"`
	CriticalAlertInterval time.Duration `env:"CRITICAL_ALERT_INTERVAL" envDefault:"30m"`

	ImageProvider         string        `env:"IMAGE_PROVIDER" envDefault:"gigachat"`
	ImageTimeout          time.Duration `env:"IMAGE_TIMEOUT" envDefault:"90s"`
	ImageMinInterval      time.Duration `env:"IMAGE_MIN_INTERVAL" envDefault:"30s"`
	GigaChatAuth          string        `env:"GIGACHAT_AUTH"`
	GigaChatOAuthURL      string        `env:"GIGACHAT_OAUTH_URL" envDefault:"https://ngw.devices.sberbank.ru:9443/api/v2/oauth"`
	GigaChatAPIURL        string        `env:"GIGACHAT_API_URL" envDefault:"https://gigachat.devices.sberbank.ru/api/v1"`
	GigaChatScope         string        `env:"GIGACHAT_SCOPE" envDefault:"GIGACHAT_API_PERS"`
	GigaChatModel         string        `env:"GIGACHAT_MODEL" envDefault:"GigaChat-Max"`
	GigaChatSkipTLSVerify bool          `env:"GIGACHAT_SKIP_TLS_VERIFY" envDefault:"false"`
	PollinationsURL       string        `env:"POLLINATIONS_URL" envDefault:"https://image.pollinations.ai"`

	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile       string `env:"LOG_FILE"`
	LogMaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"10"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`

	location *time.Location
	from     time.Time
	until    time.Time
}

const windowLayout = "2006-01-02 15:04"

// Load reads .env (when present) and the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, falling back to system environment variables")
	}
	return Parse()
}

// Parse reads the environment without touching .env.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) resolve() error {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("TIMEZONE %q: %w", c.Timezone, err)
	}
	c.location = loc

	if c.from, err = time.ParseInLocation(windowLayout, c.ActiveFrom, loc); err != nil {
		return fmt.Errorf("ACTIVE_FROM %q: %w", c.ActiveFrom, err)
	}
	if c.until, err = time.ParseInLocation(windowLayout, c.ActiveUntil, loc); err != nil {
		return fmt.Errorf("ACTIVE_UNTIL %q: %w", c.ActiveUntil, err)
	}
	if !c.until.After(c.from) {
		return fmt.Errorf("active window is empty: %s .. %s", c.ActiveFrom, c.ActiveUntil)
	}

	switch c.StorageDriver {
	case "json", "sqlite":
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER: %s", c.StorageDriver)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("TICK_INTERVAL must be positive")
	}
	if c.TriggerGrace <= c.TickInterval {
		return fmt.Errorf("TRIGGER_GRACE (%s) must exceed TICK_INTERVAL (%s)", c.TriggerGrace, c.TickInterval)
	}
	if c.BonusMinute < 0 || c.BonusMinute > 59 {
		return fmt.Errorf("BONUS_MINUTE out of range: %d", c.BonusMinute)
	}
	return nil
}

// Location is the resolved TIMEZONE.
func (c *Config) Location() *time.Location { return c.location }

// Window returns the active window [from, until).
func (c *Config) Window() (from, until time.Time) { return c.from, c.until }

// RequireDiscord reports a missing bot token.
func (c *Config) RequireDiscord() error {
	if strings.TrimSpace(c.DiscordToken) == "" {
		return fmt.Errorf("DISCORD_TOKEN is not set")
	}
	return nil
}
