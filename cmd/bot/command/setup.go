package command

import (
	"fmt"

	"github.com/rotaduty/slack-duty-bot/internal/config"
	"github.com/rotaduty/slack-duty-bot/internal/database"
	"github.com/rotaduty/slack-duty-bot/internal/domain/contract"
	"github.com/rotaduty/slack-duty-bot/migrator/sqlite"
)

// openHistory opens the rotation history database and runs its migrations.
// History is optional: with no database path configured it returns a nil
// DataManager and the invocation touches nothing but the two text
// artifacts.
func openHistory(cfg *config.Config) (dm contract.DataManager, closeDB func(), err error) {
	if cfg.DatabasePath == "" {
		return nil, func() {}, nil
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize history database: %w", err)
	}

	if err := sqlite.Migrate(db.DB()); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return database.NewInstance(db), func() { db.Close() }, nil
}
