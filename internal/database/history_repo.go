package database

import (
	"context"
	"fmt"

	"github.com/rotaduty/slack-duty-bot/internal/domain/entity"
)

type historyRepository struct {
	db dbConn
}

func newHistoryRepository(db dbConn) *historyRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) Create(ctx context.Context, record *entity.RotationRecord) error {
	query := `
		INSERT INTO rotation_history (previous, next, wrapped, rotated_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		record.Previous,
		record.Next,
		record.Wrapped,
		record.RotatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create rotation record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	record.ID = id
	return nil
}

func (r *historyRepository) GetRecent(ctx context.Context, limit int) ([]*entity.RotationRecord, error) {
	query := `
		SELECT id, previous, next, wrapped, rotated_at
		FROM rotation_history
		ORDER BY rotated_at DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get rotation history: %w", err)
	}
	defer rows.Close()

	var records []*entity.RotationRecord
	for rows.Next() {
		record := &entity.RotationRecord{}
		err := rows.Scan(
			&record.ID,
			&record.Previous,
			&record.Next,
			&record.Wrapped,
			&record.RotatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rotation record: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rotation history: %w", err)
	}

	return records, nil
}

// Prune keeps the newest `keep` records and deletes the rest.
func (r *historyRepository) Prune(ctx context.Context, keep int) error {
	query := `
		DELETE FROM rotation_history
		WHERE id NOT IN (
			SELECT id FROM rotation_history
			ORDER BY id DESC
			LIMIT ?
		)
	`

	if _, err := r.db.ExecContext(ctx, query, keep); err != nil {
		return fmt.Errorf("failed to prune rotation history: %w", err)
	}

	return nil
}
