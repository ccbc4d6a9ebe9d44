// Package client is the orderpost Go SDK.
//
// It wraps the EmailService gRPC contract behind a reusable connection with
// an explicit per-call timeout, for callers that need to know whether a
// confirmation was accepted. Fire-and-forget callers should use the
// internal notifier instead, which never reports failure.
//
// # Sending a confirmation
//
//	c, err := client.New("emailservice:8080",
//	    client.WithTimeout(5*time.Second),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	messageID, err := c.SendOrderConfirmation(ctx, "customer@example.com", order)
//
// The returned message ID matches the entry in the service's delivery log,
// so support staff can correlate a customer report with the audit trail.
//
// # Transport security
//
// The default dial options use plaintext, matching an in-mesh deployment
// where TLS terminates at the sidecar. Override with WithDialOptions to
// supply credentials for anything that crosses a trust boundary:
//
//	c, _ := client.New(addr, client.WithDialOptions(
//	    grpc.WithTransportCredentials(creds),
//	))
package client
