package client

import (
	"context"
	"fmt"
	"time"

	emailv1 "github.com/orderpost/orderpost/api/proto/email/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// DefaultTimeout bounds each SendOrderConfirmation call when no timeout
// option is given.
const DefaultTimeout = 10 * time.Second

// Client is a reusable EmailService client.
type Client struct {
	conn    *grpc.ClientConn
	stub    emailv1.EmailServiceClient
	timeout time.Duration
}

// Option is a functional option for configuring a Client.
type Option func(*settings)

type settings struct {
	timeout  time.Duration
	dialOpts []grpc.DialOption
}

// WithTimeout sets the per-call deadline applied to every RPC.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) {
		s.timeout = d
	}
}

// WithDialOptions replaces the default dial options (plaintext transport).
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(s *settings) {
		s.dialOpts = opts
	}
}

// New creates a Client that shares one connection across calls.
// Close must be called when the client is no longer needed.
func New(addr string, opts ...Option) (*Client, error) {
	s := settings{
		timeout: DefaultTimeout,
		dialOpts: []grpc.DialOption{
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		},
	}
	for _, opt := range opts {
		opt(&s)
	}

	conn, err := grpc.NewClient(addr, s.dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("dial email service %s: %w", addr, err)
	}

	return &Client{
		conn:    conn,
		stub:    emailv1.NewEmailServiceClient(conn),
		timeout: s.timeout,
	}, nil
}

// SendOrderConfirmation requests delivery of a confirmation email and
// returns the server-assigned message ID. Unlike the fire-and-forget
// notifier, failures are returned to the caller.
func (c *Client) SendOrderConfirmation(ctx context.Context, recipient string, order *emailv1.OrderResult) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.stub.SendOrderConfirmation(ctx, &emailv1.SendOrderConfirmationRequest{
		Email: recipient,
		Order: order,
	})
	if err != nil {
		return "", fmt.Errorf("send order confirmation: %w", err)
	}
	return resp.GetMessageId(), nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
