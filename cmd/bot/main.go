package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rotaduty/slack-duty-bot/cmd/bot/command"
	"github.com/rotaduty/slack-duty-bot/internal/config"
	"github.com/rotaduty/slack-duty-bot/internal/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	envErr := godotenv.Load()

	cfg, err := config.Load()
	logx.Init(cfg != nil && cfg.IsDevelopment())
	if err != nil {
		logx.Fatal(err, "failed to load configuration")
	}
	if envErr != nil {
		logx.Warn(".env file not found")
	}

	root := &cobra.Command{
		Use:           "dutybot",
		Short:         "Slack duty rotation notifier",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		command.Notify{}.Command(ctx, cfg),
		command.Rotate{}.Command(ctx, cfg),
		command.Current{}.Command(ctx, cfg),
		command.List{}.Command(ctx, cfg),
		command.History{}.Command(ctx, cfg),
	)

	if err := root.Execute(); err != nil {
		logx.Error(err, "command failed", "valid_commands", "notify, rotate, current, list, history")
		os.Exit(1)
	}
}
