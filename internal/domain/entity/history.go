package entity

import "time"

// RotationRecord is one row of the rotation history: who held the duty
// before the rotation, who holds it after, and whether the pointer wrapped
// back to the queue head (end of queue or stale current).
type RotationRecord struct {
	ID        int64
	Previous  string
	Next      string
	Wrapped   bool
	RotatedAt time.Time
}
