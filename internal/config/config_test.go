package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rotaduty/slack-duty-bot/internal/domain"
)

func TestLoad_defaults(t *testing.T) {
	t.Setenv("SLACK_BOT_TOKEN", "")
	t.Setenv("SLACK_CHANNEL_ID", "")
	t.Setenv("DUTY_QUEUE_PATH", "")
	t.Setenv("DUTY_CURRENT_PATH", "")
	t.Setenv("ENVIRONMENT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "./queue.txt", cfg.QueuePath)
	assert.Equal(t, "./current.txt", cfg.CurrentPath)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoad_fromEnvironment(t *testing.T) {
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
	t.Setenv("SLACK_CHANNEL_ID", "C123456789")
	t.Setenv("DUTY_QUEUE_PATH", "/var/lib/dutybot/queue.txt")
	t.Setenv("DUTY_CURRENT_PATH", "/var/lib/dutybot/current.txt")
	t.Setenv("ENVIRONMENT", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "xoxb-test", cfg.SlackBotToken)
	assert.Equal(t, "C123456789", cfg.SlackChannelID)
	assert.Equal(t, "/var/lib/dutybot/queue.txt", cfg.QueuePath)
	assert.True(t, cfg.IsDevelopment())
}

func TestConfig_ValidateNotify(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "Should accept token and channel",
			cfg:  Config{SlackBotToken: "xoxb-test", SlackChannelID: "C123456789"},
		},
		{
			name:    "Should reject a missing token",
			cfg:     Config{SlackChannelID: "C123456789"},
			wantErr: true,
		},
		{
			name:    "Should reject a missing channel",
			cfg:     Config{SlackBotToken: "xoxb-test"},
			wantErr: true,
		},
		{
			name:    "Should reject both missing",
			cfg:     Config{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.ValidateNotify()

			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrMissingCredential)
				return
			}
			require.NoError(t, err)
		})
	}
}
