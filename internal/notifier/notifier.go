// Package notifier asks the email service to deliver order-confirmation
// email on behalf of the checkout flow.
//
// Delivery is fire-and-forget: the remote call's outcome is reported through
// structured logs and never surfaced to the caller, so a confirmation email
// can never fail a checkout. Callers that need the outcome should use
// pkg/client instead.
package notifier

import (
	"context"
	"fmt"
	"strings"

	emailv1 "github.com/orderpost/orderpost/api/proto/email/v1"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// DefaultAddr is the email service endpoint used when none is configured.
const DefaultAddr = "[::]:8080"

// Notifier sends confirmation requests to a fixed email service endpoint.
type Notifier struct {
	addr   string
	logger *zap.Logger
}

// New creates a Notifier targeting addr. An empty addr falls back to
// DefaultAddr. Log output is tagged with the "emailservice-client" name.
func New(addr string, logger *zap.Logger) *Notifier {
	if addr == "" {
		addr = DefaultAddr
	}
	return &Notifier{
		addr:   addr,
		logger: logger.Named("emailservice-client"),
	}
}

// Notify requests delivery of a confirmation email for order to recipient.
//
// Each call opens its own insecure channel, issues one synchronous
// SendOrderConfirmation RPC, and closes the channel. The recipient and order
// are forwarded exactly as given; validation is the remote service's job.
// On success one info entry is logged. On failure two error entries are
// logged (the status detail, then the code name and value) and the error is
// swallowed — Notify never reports failure to its caller.
func (n *Notifier) Notify(recipient string, order *emailv1.OrderResult) {
	conn, err := grpc.NewClient(n.addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		n.logFailure(err)
		return
	}
	defer conn.Close() //nolint:errcheck

	stub := emailv1.NewEmailServiceClient(conn)
	_, err = stub.SendOrderConfirmation(context.Background(), &emailv1.SendOrderConfirmationRequest{
		Email: recipient,
		Order: order,
	})
	if err != nil {
		n.logFailure(err)
		return
	}

	n.logger.Info("Request sent.")
}

// logFailure emits the two-line failure record: detail first, then the
// status code as "NAME, VALUE".
func (n *Notifier) logFailure(err error) {
	st := status.Convert(err)
	n.logger.Error(st.Message())
	n.logger.Error(fmt.Sprintf("%s, %d", strings.ToUpper(st.Code().String()), int(st.Code())))
}
