package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rotaduty/slack-duty-bot/internal/config"
	"github.com/rotaduty/slack-duty-bot/internal/domain/service"
	"github.com/rotaduty/slack-duty-bot/internal/filestore"
)

type List struct{}

func (c List) Command(ctx context.Context, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "print the rotation queue, marking the current participant",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.run(ctx, cfg)
		},
	}
}

func (c List) run(_ context.Context, cfg *config.Config) error {
	store := filestore.New(cfg.QueuePath, cfg.CurrentPath)
	svcs := service.NewInstance(store, nil, nil, "")

	queue, err := svcs.Rotation.ListParticipants()
	if err != nil {
		return err
	}

	if len(queue) == 0 {
		fmt.Println("queue is empty")
		return nil
	}

	current, err := svcs.Rotation.CurrentParticipant()
	if err != nil {
		return err
	}

	for _, p := range queue {
		marker := "  "
		if p.String() == current.String() {
			marker = "* "
		}
		fmt.Printf("%s%s\n", marker, p)
	}

	return nil
}
