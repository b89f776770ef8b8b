package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rotaduty/slack-duty-bot/internal/domain"
	"github.com/rotaduty/slack-duty-bot/internal/domain/contract"
	"github.com/rotaduty/slack-duty-bot/internal/domain/entity"
	"github.com/rotaduty/slack-duty-bot/internal/pkg/logx"
)

// historyKeep is how many rotation records Prune retains.
const historyKeep = 100

type rotationService struct {
	store contract.QueueStore
	dm    contract.DataManager // nil when the history database is not configured
}

func newRotation(store contract.QueueStore, dm contract.DataManager) *rotationService {
	return &rotationService{
		store: store,
		dm:    dm,
	}
}

// NextInRotation computes the participant after current in rotation order.
// It is pure; persisting the result is the caller's job.
//
// Queues of length 0 or 1 have nothing to rotate: current comes back
// unchanged with rotated=false. Otherwise the queue is scanned for the
// first entry whose one-line form equals current's (exact trimmed-string
// match, never ID-only match); a current that is missing from the queue or
// sits at the tail advances to the queue head, reported via wrapped.
func NextInRotation(queue []entity.Participant, current entity.Participant) (next entity.Participant, rotated, wrapped bool) {
	if len(queue) <= 1 {
		return current, false, false
	}

	currentIndex := -1
	for i, p := range queue {
		if p.String() == current.String() {
			currentIndex = i
			break
		}
	}

	if currentIndex == -1 || currentIndex == len(queue)-1 {
		return queue[0], true, true
	}

	return queue[currentIndex+1], true, false
}

// ListParticipants returns the rotation queue in order.
func (s *rotationService) ListParticipants() ([]entity.Participant, error) {
	queue, err := s.store.ReadQueue()
	if err != nil {
		return nil, fmt.Errorf("failed to read queue: %w", err)
	}
	return queue, nil
}

// CurrentParticipant resolves whose turn it is, applying the queue-head
// fallback when the current artifact cannot be read.
func (s *rotationService) CurrentParticipant() (entity.Participant, error) {
	queue, err := s.store.ReadQueue()
	if err != nil {
		return entity.Participant{}, fmt.Errorf("failed to read queue: %w", err)
	}
	return s.resolveCurrent(queue)
}

// resolveCurrent returns the persisted current participant. Any failure to
// read it, missing file or otherwise, falls back to the queue head; with an
// empty queue there is nothing to fall back to and the resolution fails.
func (s *rotationService) resolveCurrent(queue []entity.Participant) (entity.Participant, error) {
	current, err := s.store.ReadCurrent()
	if err == nil {
		return current, nil
	}

	if len(queue) == 0 {
		return entity.Participant{}, domain.ErrEmptyQueue
	}

	if errors.Is(err, domain.ErrCurrentNotFound) {
		logx.Info("current participant not set, starting from queue head")
	} else {
		logx.Warn("could not read current participant, falling back to queue head", "error", err.Error())
	}

	return queue[0], nil
}

// Rotate advances the current pointer to the next participant and persists
// it. A queue of length 0 or 1 is a successful no-op: nothing is written
// and rotated is false.
func (s *rotationService) Rotate(ctx context.Context) (next entity.Participant, rotated bool, err error) {
	queue, err := s.store.ReadQueue()
	if err != nil {
		return entity.Participant{}, false, fmt.Errorf("failed to read queue: %w", err)
	}

	current, err := s.resolveCurrent(queue)
	if err != nil {
		return entity.Participant{}, false, err
	}

	next, rotated, wrapped := NextInRotation(queue, current)
	if !rotated {
		logx.Info("nothing to rotate", "queue_size", len(queue), "current", current.String())
		return current, false, nil
	}

	if err := s.store.WriteCurrent(next); err != nil {
		return entity.Participant{}, false, fmt.Errorf("failed to persist current participant: %w", err)
	}

	s.recordRotation(ctx, current, next, wrapped)

	logx.Info("rotation advanced", "previous", current.String(), "current", next.String())
	return next, true, nil
}

// recordRotation appends a history record when the history database is
// configured. A history failure is logged and swallowed: better to keep the
// rotation than to fail it over bookkeeping.
func (s *rotationService) recordRotation(ctx context.Context, previous, next entity.Participant, wrapped bool) {
	if s.dm == nil {
		return
	}

	err := s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		record := &entity.RotationRecord{
			Previous:  previous.String(),
			Next:      next.String(),
			Wrapped:   wrapped,
			RotatedAt: time.Now().UTC(),
		}

		if err := dm.History().Create(ctx, record); err != nil {
			return fmt.Errorf("failed to create history record: %w", err)
		}

		if err := dm.History().Prune(ctx, historyKeep); err != nil {
			return fmt.Errorf("failed to prune history: %w", err)
		}

		return nil
	})
	if err != nil {
		logx.Error(err, "failed to record rotation history")
	}
}

// RecentHistory returns the most recent rotation records, newest first.
func (s *rotationService) RecentHistory(ctx context.Context, limit int) ([]*entity.RotationRecord, error) {
	if s.dm == nil {
		return nil, fmt.Errorf("history database is not configured")
	}
	return s.dm.History().GetRecent(ctx, limit)
}
