package command

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rotaduty/slack-duty-bot/internal/config"
	"github.com/rotaduty/slack-duty-bot/internal/domain/service"
	"github.com/rotaduty/slack-duty-bot/internal/filestore"
)

const historyListLimit = 20

type History struct{}

func (c History) Command(ctx context.Context, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "print recent rotation records",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.run(ctx, cfg)
		},
	}
}

func (c History) run(ctx context.Context, cfg *config.Config) error {
	if cfg.DatabasePath == "" {
		return fmt.Errorf("history database is not configured (set DUTY_DB_PATH)")
	}

	dm, closeDB, err := openHistory(cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	store := filestore.New(cfg.QueuePath, cfg.CurrentPath)
	svcs := service.NewInstance(store, dm, nil, "")

	records, err := svcs.Rotation.RecentHistory(ctx, historyListLimit)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("no rotations recorded yet")
		return nil
	}

	for _, r := range records {
		line := fmt.Sprintf("%s  %s -> %s", r.RotatedAt.Format(time.RFC3339), r.Previous, r.Next)
		if r.Wrapped {
			line += "  (wrapped)"
		}
		fmt.Println(line)
	}

	return nil
}
