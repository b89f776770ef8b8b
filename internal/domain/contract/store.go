package contract

import "github.com/rotaduty/slack-duty-bot/internal/domain/entity"

// QueueStore defines the contract for the persisted queue and current
// artifacts.
type QueueStore interface {
	// ReadQueue returns the rotation queue in order. A missing queue
	// artifact reads as an empty queue.
	ReadQueue() ([]entity.Participant, error)

	// ReadCurrent returns the persisted current participant. It returns
	// domain.ErrCurrentNotFound when the artifact is missing or blank; the
	// caller decides whether to fall back to the queue head.
	ReadCurrent() (entity.Participant, error)

	// WriteCurrent overwrites the current artifact with the participant's
	// one-line form.
	WriteCurrent(p entity.Participant) error
}
