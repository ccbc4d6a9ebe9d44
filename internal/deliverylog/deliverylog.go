// Package deliverylog records every confirmation email the service accepts
// for delivery, giving operators an audit trail to answer "was the
// confirmation for order X actually sent, and to whom?".
//
// Two implementations of the Log interface are provided:
//   - MemoryLog: in-process, for testing and development.
//   - PostgresLog: durable, for production use.
package deliverylog

import (
	"context"
	"time"
)

// Delivery statuses.
const (
	StatusSent   = "sent"
	StatusFailed = "failed"
)

// Entry is a single delivery record.
type Entry struct {
	ID        int64     `json:"id"`
	MessageID string    `json:"message_id"`
	Recipient string    `json:"recipient"`
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"` // sent, failed
	Detail    string    `json:"detail,omitempty"`
	SentAt    time.Time `json:"sent_at"`
}

// Log is the delivery audit trail.
type Log interface {
	// Append records one delivery attempt. The entry's ID and SentAt are
	// assigned by the implementation.
	Append(ctx context.Context, e Entry) (*Entry, error)

	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]*Entry, error)

	// Count returns the total number of entries by status.
	Count(ctx context.Context) (map[string]int64, error)
}
