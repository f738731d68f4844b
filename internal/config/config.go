package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string   `mapstructure:"env"`       // current application environment (local, dev, production etc)
	TelegramAPIToken string   `mapstructure:"-"`         // Telegram API token loaded from environment
	QuizPath         string   `mapstructure:"quiz_path"` // optional JSON file replacing the built-in quiz
	Session          Session  `mapstructure:"session"`   // per-chat session lifecycle
	Telegram         Telegram `mapstructure:"telegram"`  // bot transport options
}

// Session contains lifecycle parameters for chat sessions.
type Session struct {
	IdleTTL       time.Duration `mapstructure:"idle_ttl"`       // sessions idle longer than this are discarded
	SweepSchedule string        `mapstructure:"sweep_schedule"` // cron spec for the idle sweeper
}

// Telegram contains bot transport options.
type Telegram struct {
	Debug          bool `mapstructure:"debug"`           // log raw Bot API traffic
	UpdatesTimeout int  `mapstructure:"updates_timeout"` // long polling timeout in seconds
}

// Option tweaks the loader.
type Option func(*loader)

type loader struct {
	configFile   string
	requireToken bool
}

// WithConfigFile reads configuration from an explicit file instead of ./config/config.yaml.
func WithConfigFile(path string) Option {
	return func(l *loader) {
		l.configFile = path
	}
}

// RequireTelegramToken makes Load fail when TELEGRAM_API_TOKEN is not set.
func RequireTelegramToken() Option {
	return func(l *loader) {
		l.requireToken = true
	}
}

// Load reads configuration from an optional .env file, config files and environment variables.
func Load(opts ...Option) (*Config, error) {
	l := loader{}
	for _, opt := range opts {
		opt(&l)
	}

	// Populate the process environment from .env if one exists.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	if l.configFile != "" {
		v.SetConfigFile(l.configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
	}

	v.SetDefault("env", "local")
	v.SetDefault("quiz_path", "")
	v.SetDefault("session.idle_ttl", "1h")
	v.SetDefault("session.sweep_schedule", "@every 10m")
	v.SetDefault("telegram.debug", false)
	v.SetDefault("telegram.updates_timeout", 60)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("quiz_path", "QUIZ_PATH")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if l.requireToken && cfg.TelegramAPIToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	if cfg.Session.IdleTTL <= 0 {
		return nil, fmt.Errorf("session.idle_ttl must be positive, got %s", cfg.Session.IdleTTL)
	}

	return &cfg, nil
}
