package filestore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotaduty/slack-duty-bot/internal/domain"
	"github.com/rotaduty/slack-duty-bot/internal/domain/entity"
)

// Store reads and writes the two plain-text rotation artifacts: the queue
// (one participant per line, externally edited) and the current participant
// (a single line, the only state this program mutates).
type Store struct {
	queuePath   string
	currentPath string
}

func New(queuePath, currentPath string) *Store {
	return &Store{
		queuePath:   queuePath,
		currentPath: currentPath,
	}
}

// ReadQueue reads the queue artifact, one participant per line in rotation
// order. Blank lines are discarded. A missing file is an empty queue.
func (s *Store) ReadQueue() ([]entity.Participant, error) {
	data, err := os.ReadFile(s.queuePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to read queue file %s: %v", domain.ErrStorageUnavailable, s.queuePath, err)
	}

	var queue []entity.Participant
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		queue = append(queue, entity.ParseParticipant(line))
	}

	return queue, nil
}

// ReadCurrent reads the current artifact. A missing or blank file returns
// domain.ErrCurrentNotFound so the caller can apply the queue-head
// fallback.
func (s *Store) ReadCurrent() (entity.Participant, error) {
	data, err := os.ReadFile(s.currentPath)
	if err != nil {
		if os.IsNotExist(err) {
			return entity.Participant{}, domain.ErrCurrentNotFound
		}
		return entity.Participant{}, fmt.Errorf("%w: failed to read current file %s: %v", domain.ErrStorageUnavailable, s.currentPath, err)
	}

	line := strings.TrimSpace(string(data))
	if line == "" {
		return entity.Participant{}, domain.ErrCurrentNotFound
	}

	return entity.ParseParticipant(line), nil
}

// WriteCurrent overwrites the current artifact with the participant's
// one-line form. The write goes to a temp file in the same directory and is
// renamed into place, so a crash mid-write never leaves a truncated
// artifact.
func (s *Store) WriteCurrent(p entity.Participant) error {
	dir := filepath.Dir(s.currentPath)

	tmp, err := os.CreateTemp(dir, ".current-*")
	if err != nil {
		return fmt.Errorf("%w: failed to create temp file in %s: %v", domain.ErrStorageUnavailable, dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(p.String() + "\n"); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: failed to write current participant: %v", domain.ErrStorageUnavailable, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: failed to close temp file: %v", domain.ErrStorageUnavailable, err)
	}

	if err := os.Rename(tmpName, s.currentPath); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: failed to replace current file %s: %v", domain.ErrStorageUnavailable, s.currentPath, err)
	}

	return nil
}
