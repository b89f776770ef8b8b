package command

import (
	"context"

	"github.com/slack-go/slack"
	"github.com/spf13/cobra"

	"github.com/rotaduty/slack-duty-bot/internal/config"
	"github.com/rotaduty/slack-duty-bot/internal/domain/service"
	"github.com/rotaduty/slack-duty-bot/internal/filestore"
)

type Notify struct{}

func (c Notify) Command(ctx context.Context, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "notify",
		Short: "send the duty reminder to the configured Slack channel",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.run(ctx, cfg)
		},
	}
}

func (c Notify) run(ctx context.Context, cfg *config.Config) error {
	if err := cfg.ValidateNotify(); err != nil {
		return err
	}

	store := filestore.New(cfg.QueuePath, cfg.CurrentPath)
	slackClient := slack.New(cfg.SlackBotToken)

	svcs := service.NewInstance(store, nil, slackClient, cfg.SlackChannelID)

	return svcs.Notifier.Notify(ctx)
}
