package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/rotaduty/slack-duty-bot/internal/domain"
)

// Config carries everything an invocation needs: where the two rotation
// artifacts live, the Slack credentials for notify, and the optional
// history database path. It is built once in main and passed down; there
// are no package-level singletons.
type Config struct {
	SlackBotToken  string `env:"SLACK_BOT_TOKEN"`
	SlackChannelID string `env:"SLACK_CHANNEL_ID"`
	QueuePath      string `env:"DUTY_QUEUE_PATH" envDefault:"./queue.txt"`
	CurrentPath    string `env:"DUTY_CURRENT_PATH" envDefault:"./current.txt"`
	DatabasePath   string `env:"DUTY_DB_PATH"`
	Environment    string `env:"ENVIRONMENT" envDefault:"production"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// ValidateNotify checks the credentials notify needs before any Slack
// client is constructed, so a missing credential fails before any network
// call.
func (c *Config) ValidateNotify() error {
	if c.SlackBotToken == "" {
		return fmt.Errorf("%w: SLACK_BOT_TOKEN is not set", domain.ErrMissingCredential)
	}
	if c.SlackChannelID == "" {
		return fmt.Errorf("%w: SLACK_CHANNEL_ID is not set", domain.ErrMissingCredential)
	}
	return nil
}
