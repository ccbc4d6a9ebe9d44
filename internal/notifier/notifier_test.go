package notifier_test

import (
	"context"
	"net"
	"sync"
	"testing"

	emailv1 "github.com/orderpost/orderpost/api/proto/email/v1"
	"github.com/orderpost/orderpost/internal/notifier"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// fakeEmailService records incoming requests and returns a scripted outcome.
type fakeEmailService struct {
	emailv1.UnimplementedEmailServiceServer

	mu   sync.Mutex
	reqs []*emailv1.SendOrderConfirmationRequest
	err  error
}

func (f *fakeEmailService) SendOrderConfirmation(_ context.Context, req *emailv1.SendOrderConfirmationRequest) (*emailv1.SendOrderConfirmationResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reqs = append(f.reqs, req)
	if f.err != nil {
		return nil, f.err
	}
	return &emailv1.SendOrderConfirmationResponse{MessageId: "msg_test"}, nil
}

func (f *fakeEmailService) requests() []*emailv1.SendOrderConfirmationRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*emailv1.SendOrderConfirmationRequest(nil), f.reqs...)
}

// startServer serves svc on a loopback listener and returns its address.
func startServer(t *testing.T, svc emailv1.EmailServiceServer) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	srv := grpc.NewServer()
	emailv1.RegisterEmailServiceServer(srv, svc)
	go srv.Serve(lis) //nolint:errcheck
	t.Cleanup(srv.Stop)
	return lis.Addr().String()
}

// newObserved creates a Notifier whose log output is captured for assertions.
func newObserved(addr string) (*notifier.Notifier, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return notifier.New(addr, zap.New(core)), logs
}

func sampleOrder() *emailv1.OrderResult {
	return &emailv1.OrderResult{OrderId: "123"}
}

func TestNotify_success(t *testing.T) {
	svc := &fakeEmailService{}
	addr := startServer(t, svc)

	n, logs := newObserved(addr)
	n.Notify("a@b.com", sampleOrder())

	reqs := svc.requests()
	if len(reqs) != 1 {
		t.Fatalf("remote calls: got %d, want 1", len(reqs))
	}
	if got := reqs[0].GetEmail(); got != "a@b.com" {
		t.Errorf("request email: got %q, want %q", got, "a@b.com")
	}
	if got := reqs[0].GetOrder().GetOrderId(); got != "123" {
		t.Errorf("request order id: got %q, want %q", got, "123")
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("log entries: got %d, want 1", len(entries))
	}
	if entries[0].Level != zap.InfoLevel {
		t.Errorf("log level: got %v, want info", entries[0].Level)
	}
	if entries[0].Message != "Request sent." {
		t.Errorf("log message: got %q, want %q", entries[0].Message, "Request sent.")
	}
}

func TestNotify_remoteFailure(t *testing.T) {
	svc := &fakeEmailService{err: status.Error(codes.Unavailable, "unavailable")}
	addr := startServer(t, svc)

	n, logs := newObserved(addr)
	n.Notify("a@b.com", sampleOrder())

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("log entries: got %d, want 2", len(entries))
	}
	for i, e := range entries {
		if e.Level != zap.ErrorLevel {
			t.Errorf("entry %d level: got %v, want error", i, e.Level)
		}
	}
	if entries[0].Message != "unavailable" {
		t.Errorf("detail entry: got %q, want %q", entries[0].Message, "unavailable")
	}
	if entries[1].Message != "UNAVAILABLE, 14" {
		t.Errorf("code entry: got %q, want %q", entries[1].Message, "UNAVAILABLE, 14")
	}
}

func TestNotify_unreachableEndpoint(t *testing.T) {
	// Grab a loopback port and close it so nothing is listening there.
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := lis.Addr().String()
	lis.Close() //nolint:errcheck

	n, logs := newObserved(addr)
	n.Notify("a@b.com", sampleOrder())

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("log entries: got %d, want 2", len(entries))
	}
	if entries[1].Message != "UNAVAILABLE, 14" {
		t.Errorf("code entry: got %q, want %q", entries[1].Message, "UNAVAILABLE, 14")
	}
}

func TestNotify_repeatedCallsIndependent(t *testing.T) {
	svc := &fakeEmailService{}
	addr := startServer(t, svc)

	n, logs := newObserved(addr)
	n.Notify("first@example.com", &emailv1.OrderResult{OrderId: "1"})
	n.Notify("second@example.com", &emailv1.OrderResult{OrderId: "2"})

	reqs := svc.requests()
	if len(reqs) != 2 {
		t.Fatalf("remote calls: got %d, want 2", len(reqs))
	}
	if reqs[0].GetEmail() != "first@example.com" || reqs[1].GetEmail() != "second@example.com" {
		t.Errorf("recipients: got %q, %q", reqs[0].GetEmail(), reqs[1].GetEmail())
	}
	if got := logs.Len(); got != 2 {
		t.Errorf("log entries: got %d, want 2", got)
	}
}
