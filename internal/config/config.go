package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core
	BotToken    string `env:"BOT_TOKEN,required"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	// Environment selects the update transport: "production" serves the
	// Telegram webhook over HTTP, anything else long-polls.
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	WebhookURL  string `env:"WEBHOOK_URL"`
	Port        int    `env:"PORT" envDefault:"3000"`

	// Verification channels the user must be a member of before the menu is
	// shown, and the chat receiving withdrawal-approval notifications.
	RequiredChannels []int64 `env:"REQUIRED_CHANNELS" envSeparator:"," envDefault:"-1002193506007,-1002240023653"`
	OpsChatID        int64   `env:"OPS_CHAT_ID" envDefault:"-1002240023653"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
