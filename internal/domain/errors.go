package domain

import "errors"

// Error kinds surfaced at the command boundary. Storage and services wrap
// these with fmt.Errorf("%w: ...") so callers can match with errors.Is.
var (
	// ErrEmptyQueue means no current participant could be resolved because
	// the rotation queue has no entries.
	ErrEmptyQueue = errors.New("no participants in rotation queue")

	// ErrMissingCredential means the bot token or channel ID required for
	// notifications is not configured.
	ErrMissingCredential = errors.New("missing credential")

	// ErrCurrentNotFound means the current artifact does not exist or is
	// blank. Callers recover by falling back to the queue head.
	ErrCurrentNotFound = errors.New("current participant not found")

	// ErrStorageUnavailable means a persisted artifact could not be read or
	// written for a reason other than not existing.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
