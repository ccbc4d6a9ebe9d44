package deliverylog

import (
	"context"
	"fmt"
	"testing"
)

func TestMemoryLog_appendAssignsIDAndTimestamp(t *testing.T) {
	l := NewMemoryLog()

	e, err := l.Append(context.Background(), Entry{
		MessageID: "msg_1",
		Recipient: "a@b.com",
		OrderID:   "123",
		Status:    StatusSent,
	})
	if err != nil {
		t.Fatalf("Append() error: %v", err)
	}
	if e.ID != 1 {
		t.Errorf("ID: got %d, want 1", e.ID)
	}
	if e.SentAt.IsZero() {
		t.Error("SentAt not assigned")
	}
}

func TestMemoryLog_recentNewestFirst(t *testing.T) {
	l := NewMemoryLog()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := l.Append(ctx, Entry{OrderID: fmt.Sprintf("order-%d", i), Status: StatusSent}); err != nil {
			t.Fatalf("Append() error: %v", err)
		}
	}

	got, err := l.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Recent(3): got %d entries", len(got))
	}
	if got[0].OrderID != "order-4" || got[2].OrderID != "order-2" {
		t.Errorf("ordering: got %q..%q, want order-4..order-2", got[0].OrderID, got[2].OrderID)
	}
}

func TestMemoryLog_countByStatus(t *testing.T) {
	l := NewMemoryLog()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		l.Append(ctx, Entry{Status: StatusSent}) //nolint:errcheck
	}
	l.Append(ctx, Entry{Status: StatusFailed}) //nolint:errcheck

	counts, err := l.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error: %v", err)
	}
	if counts[StatusSent] != 3 {
		t.Errorf("sent count: got %d, want 3", counts[StatusSent])
	}
	if counts[StatusFailed] != 1 {
		t.Errorf("failed count: got %d, want 1", counts[StatusFailed])
	}
}

func TestMemoryLog_bounded(t *testing.T) {
	l := NewMemoryLog()
	l.max = 10
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		if _, err := l.Append(ctx, Entry{OrderID: fmt.Sprintf("order-%d", i), Status: StatusSent}); err != nil {
			t.Fatalf("Append() error: %v", err)
		}
	}

	all, err := l.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(all) != 10 {
		t.Fatalf("entries after overflow: got %d, want 10", len(all))
	}
	if all[0].OrderID != "order-24" {
		t.Errorf("newest entry: got %q, want order-24", all[0].OrderID)
	}
}
