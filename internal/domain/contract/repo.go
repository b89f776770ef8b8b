package contract

import (
	"context"

	"github.com/rotaduty/slack-duty-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	History() HistoryRepo
}

// HistoryRepo defines the contract for the rotation history repository
type HistoryRepo interface {
	Create(ctx context.Context, record *entity.RotationRecord) error
	GetRecent(ctx context.Context, limit int) ([]*entity.RotationRecord, error)
	Prune(ctx context.Context, keep int) error
}
