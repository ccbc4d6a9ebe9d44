package client_test

import (
	"context"
	"net"
	"testing"
	"time"

	emailv1 "github.com/orderpost/orderpost/api/proto/email/v1"
	"github.com/orderpost/orderpost/pkg/client"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// fakeEmailService returns a scripted outcome with an optional delay.
type fakeEmailService struct {
	emailv1.UnimplementedEmailServiceServer

	delay time.Duration
	err   error
}

func (f *fakeEmailService) SendOrderConfirmation(ctx context.Context, req *emailv1.SendOrderConfirmationRequest) (*emailv1.SendOrderConfirmationResponse, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &emailv1.SendOrderConfirmationResponse{MessageId: "msg_" + req.GetOrder().GetOrderId()}, nil
}

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

func TestSendOrderConfirmation_returnsMessageID(t *testing.T) {
	addr := startServer(t, &fakeEmailService{})

	c, err := client.New(addr)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer c.Close()

	id, err := c.SendOrderConfirmation(context.Background(), "a@b.com", &emailv1.OrderResult{OrderId: "123"})
	if err != nil {
		t.Fatalf("SendOrderConfirmation() error: %v", err)
	}
	if id != "msg_123" {
		t.Errorf("message id: got %q, want %q", id, "msg_123")
	}
}

func TestSendOrderConfirmation_propagatesError(t *testing.T) {
	addr := startServer(t, &fakeEmailService{err: status.Error(codes.InvalidArgument, "invalid email")})

	c, err := client.New(addr)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer c.Close()

	_, err = c.SendOrderConfirmation(context.Background(), "not-an-address", &emailv1.OrderResult{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("got code %v, want InvalidArgument (err=%v)", status.Code(err), err)
	}
}

func TestSendOrderConfirmation_timeout(t *testing.T) {
	addr := startServer(t, &fakeEmailService{delay: 2 * time.Second})

	c, err := client.New(addr, client.WithTimeout(100*time.Millisecond))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer c.Close()

	_, err = c.SendOrderConfirmation(context.Background(), "a@b.com", &emailv1.OrderResult{OrderId: "1"})
	if status.Code(err) != codes.DeadlineExceeded {
		t.Fatalf("got code %v, want DeadlineExceeded (err=%v)", status.Code(err), err)
	}
}

func TestClient_connectionReuse(t *testing.T) {
	addr := startServer(t, &fakeEmailService{})

	c, err := client.New(addr)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer c.Close()

	for i := 0; i < 3; i++ {
		if _, err := c.SendOrderConfirmation(context.Background(), "a@b.com", &emailv1.OrderResult{OrderId: "1"}); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}
}
