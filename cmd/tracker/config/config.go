package config

import (
	"fmt"
	"time"

	"github.com/MichalMitros/price-tracker/internal/tracker"
	"github.com/caarlos0/env/v6"
	"github.com/rs/zerolog"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL          string        `env:"DATABASE_URL"`
	LogLevel             string        `env:"LOG_LEVEL" envDefault:"info"`
	HTTPTimeout          time.Duration `env:"HTTP_TIMEOUT" envDefault:"15s"`
	UserAgent            string        `env:"USER_AGENT" envDefault:"price-tracker/0.1.0"`
	SitesFile            string        `env:"SITES_FILE"`
	BatchSize            uint          `env:"BATCH_SIZE" envDefault:"100"`
	MarkUnseenOutOfStock bool          `env:"MARK_UNSEEN_OUT_OF_STOCK" envDefault:"true"`

	AbsentPrice AbsentPrice
	Browser     Browser
	API         API
	RabbitMQ    RabbitMQ
}

// AbsentPrice holds policies applied when scraped record misses a price.
type AbsentPrice struct {
	Original tracker.AbsentPricePolicy `env:"ABSENT_ORIGINAL_PRICE" envDefault:"keep"`
	Final    tracker.AbsentPricePolicy `env:"ABSENT_FINAL_PRICE" envDefault:"keep"`
}

// Browser holds headless browser configuration.
type Browser struct {
	Enabled    bool          `env:"BROWSER_ENABLED" envDefault:"false"`
	ExecPath   string        `env:"BROWSER_EXEC_PATH"`
	RenderWait time.Duration `env:"BROWSER_RENDER_WAIT" envDefault:"3s"`
}

// API holds read API configuration.
type API struct {
	Addr    string `env:"API_ADDR" envDefault:":8080"`
	GinMode string `env:"GIN_MODE" envDefault:"release"`
}

// RabbitMQ holds RabbitMQ configuration.
type RabbitMQ struct {
	URL        string `env:"RABBITMQ_URL"`
	Exchange   string `env:"RABBITMQ_EXCHANGE" envDefault:"price-tracker-ex"`
	Queue      string `env:"RABBITMQ_QUEUE" envDefault:"price-tracker.commands"`
	RoutingKey string `env:"RABBITMQ_ROUTING_KEY" envDefault:"scrape"`
}

// Parse reads configuration from environment variables.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("can't parse env variables: %w", err)
	}

	if _, err := cfg.Level(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Level returns configured log level.
func (c *Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return level, nil
}

// Policy returns absent price policy of tracker.
func (c *Config) Policy() tracker.Policy {
	return tracker.Policy{
		OriginalPrice: c.AbsentPrice.Original,
		FinalPrice:    c.AbsentPrice.Final,
	}
}
