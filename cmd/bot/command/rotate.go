package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rotaduty/slack-duty-bot/internal/config"
	"github.com/rotaduty/slack-duty-bot/internal/domain/service"
	"github.com/rotaduty/slack-duty-bot/internal/filestore"
)

type Rotate struct{}

func (c Rotate) Command(ctx context.Context, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "rotate",
		Short: "advance the duty pointer to the next participant in the queue",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.run(ctx, cfg)
		},
	}
}

func (c Rotate) run(ctx context.Context, cfg *config.Config) error {
	dm, closeDB, err := openHistory(cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	store := filestore.New(cfg.QueuePath, cfg.CurrentPath)
	svcs := service.NewInstance(store, dm, nil, "")

	next, rotated, err := svcs.Rotation.Rotate(ctx)
	if err != nil {
		return err
	}

	if !rotated {
		fmt.Println("nothing to rotate")
		return nil
	}

	fmt.Printf("current participant is now %s\n", next)
	return nil
}
