package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rotaduty/slack-duty-bot/internal/config"
	"github.com/rotaduty/slack-duty-bot/internal/domain/service"
	"github.com/rotaduty/slack-duty-bot/internal/filestore"
)

type Current struct{}

func (c Current) Command(ctx context.Context, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "print the participant whose turn it is",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.run(ctx, cfg)
		},
	}
}

func (c Current) run(_ context.Context, cfg *config.Config) error {
	store := filestore.New(cfg.QueuePath, cfg.CurrentPath)
	svcs := service.NewInstance(store, nil, nil, "")

	current, err := svcs.Rotation.CurrentParticipant()
	if err != nil {
		return err
	}

	fmt.Println(current)
	return nil
}
