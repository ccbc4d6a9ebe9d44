package email

import "context"

// Sender delivers a rendered HTML message to a single recipient.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
