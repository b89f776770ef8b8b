package database

import (
	"context"
	"fmt"

	"github.com/rotaduty/slack-duty-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db          *DB
	historyRepo contract.HistoryRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	return &instance{
		db:          db,
		historyRepo: newHistoryRepository(db.conn),
	}
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		historyRepo: newHistoryRepository(db),
	}
}

// History returns the rotation history repository
func (i *instance) History() contract.HistoryRepo {
	return i.historyRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
