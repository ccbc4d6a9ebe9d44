package mailer

import (
	"context"
	"errors"
	"strings"
	"testing"

	emailv1 "github.com/orderpost/orderpost/api/proto/email/v1"
	"github.com/orderpost/orderpost/internal/deliverylog"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// fakeSender records sends and returns a scripted error.
type fakeSender struct {
	to      []string
	subject string
	body    string
	err     error
}

func (f *fakeSender) Send(_ context.Context, to, subject, htmlBody string) error {
	f.to = append(f.to, to)
	f.subject = subject
	f.body = htmlBody
	return f.err
}

func testOrder() *emailv1.OrderResult {
	return &emailv1.OrderResult{
		OrderId:            "ord_456",
		ShippingTrackingId: "track_789",
		ShippingCost:       &emailv1.Money{CurrencyCode: "USD", Units: 4, Nanos: 990_000_000},
		ShippingAddress: &emailv1.Address{
			StreetAddress: "1600 Amphitheatre Pkwy",
			City:          "Mountain View",
			State:         "CA",
			Country:       "USA",
			ZipCode:       94043,
		},
		Items: []*emailv1.OrderItem{
			{
				Item: &emailv1.CartItem{ProductId: "OLJCESPC7Z", Quantity: 2},
				Cost: &emailv1.Money{CurrencyCode: "USD", Units: 19, Nanos: 990_000_000},
			},
		},
	}
}

func TestSendOrderConfirmation_success(t *testing.T) {
	sender := &fakeSender{}
	dlog := deliverylog.NewMemoryLog()
	svc := New(Config{}, sender, dlog, zap.NewNop())

	resp, err := svc.SendOrderConfirmation(context.Background(), &emailv1.SendOrderConfirmationRequest{
		Email: "customer@example.com",
		Order: testOrder(),
	})
	if err != nil {
		t.Fatalf("SendOrderConfirmation() error: %v", err)
	}
	if resp.GetMessageId() == "" {
		t.Error("response has empty message_id")
	}

	if len(sender.to) != 1 || sender.to[0] != "customer@example.com" {
		t.Fatalf("sender recipients: got %v", sender.to)
	}
	if sender.subject != DefaultSubject {
		t.Errorf("subject: got %q", sender.subject)
	}
	for _, want := range []string{"ord_456", "track_789", "OLJCESPC7Z", "USD 19.99"} {
		if !strings.Contains(sender.body, want) {
			t.Errorf("rendered body missing %q", want)
		}
	}

	entries, err := dlog.Recent(context.Background(), 1)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("delivery log entries: got %d, want 1", len(entries))
	}
	if entries[0].Status != deliverylog.StatusSent {
		t.Errorf("entry status: got %q, want %q", entries[0].Status, deliverylog.StatusSent)
	}
	if entries[0].MessageID != resp.GetMessageId() {
		t.Errorf("entry message id %q != response %q", entries[0].MessageID, resp.GetMessageId())
	}
}

func TestSendOrderConfirmation_validation(t *testing.T) {
	tests := []struct {
		name string
		req  *emailv1.SendOrderConfirmationRequest
	}{
		{"missing email", &emailv1.SendOrderConfirmationRequest{Order: testOrder()}},
		{"malformed email", &emailv1.SendOrderConfirmationRequest{Email: "not-an-address", Order: testOrder()}},
		{"missing order", &emailv1.SendOrderConfirmationRequest{Email: "a@b.com"}},
	}

	sender := &fakeSender{}
	svc := New(Config{}, sender, deliverylog.NewMemoryLog(), zap.NewNop())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SendOrderConfirmation(context.Background(), tt.req)
			if status.Code(err) != codes.InvalidArgument {
				t.Errorf("got code %v, want InvalidArgument (err=%v)", status.Code(err), err)
			}
		})
	}
	if len(sender.to) != 0 {
		t.Errorf("sender invoked %d times for invalid requests", len(sender.to))
	}
}

func TestSendOrderConfirmation_transportFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp: connection refused")}
	dlog := deliverylog.NewMemoryLog()
	svc := New(Config{}, sender, dlog, zap.NewNop())

	_, err := svc.SendOrderConfirmation(context.Background(), &emailv1.SendOrderConfirmationRequest{
		Email: "customer@example.com",
		Order: testOrder(),
	})
	if status.Code(err) != codes.Internal {
		t.Fatalf("got code %v, want Internal (err=%v)", status.Code(err), err)
	}

	entries, _ := dlog.Recent(context.Background(), 1)
	if len(entries) != 1 || entries[0].Status != deliverylog.StatusFailed {
		t.Fatalf("delivery log: got %+v, want one failed entry", entries)
	}
	if !strings.Contains(entries[0].Detail, "connection refused") {
		t.Errorf("entry detail: got %q", entries[0].Detail)
	}
}

func TestSendOrderConfirmation_rateLimited(t *testing.T) {
	sender := &fakeSender{}
	svc := New(Config{RateLimit: rate.Limit(0.001), RateBurst: 1}, sender, deliverylog.NewMemoryLog(), zap.NewNop())

	req := &emailv1.SendOrderConfirmationRequest{Email: "a@b.com", Order: testOrder()}
	if _, err := svc.SendOrderConfirmation(context.Background(), req); err != nil {
		t.Fatalf("first call: %v", err)
	}
	_, err := svc.SendOrderConfirmation(context.Background(), req)
	if status.Code(err) != codes.ResourceExhausted {
		t.Fatalf("second call: got code %v, want ResourceExhausted", status.Code(err))
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   *emailv1.Money
		want string
	}{
		{nil, ""},
		{&emailv1.Money{CurrencyCode: "USD", Units: 12, Nanos: 340_000_000}, "USD 12.34"},
		{&emailv1.Money{CurrencyCode: "EUR", Units: 5}, "EUR 5.00"},
	}
	for _, tt := range tests {
		if got := formatMoney(tt.in); got != tt.want {
			t.Errorf("formatMoney(%v): got %q, want %q", tt.in, got, tt.want)
		}
	}
}
