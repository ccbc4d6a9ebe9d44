// Package mailer implements the orderpost EmailService gRPC server.
//
// SendOrderConfirmation renders an HTML confirmation from the order record,
// hands it to an email.Sender, and records the outcome in the delivery log.
package mailer

import (
	"context"
	"net/mail"
	"time"

	"github.com/google/uuid"
	emailv1 "github.com/orderpost/orderpost/api/proto/email/v1"
	"github.com/orderpost/orderpost/internal/deliverylog"
	"github.com/orderpost/orderpost/internal/email"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DefaultSubject is used when no subject line is configured.
const DefaultSubject = "Your Confirmation Email"

// Config holds mailer service configuration.
type Config struct {
	Subject   string     // subject line for confirmation email
	RateLimit rate.Limit // steady-state sends per second; 0 disables limiting
	RateBurst int        // maximum burst size
}

// Service implements emailv1.EmailServiceServer.
type Service struct {
	emailv1.UnimplementedEmailServiceServer

	cfg     Config
	sender  email.Sender
	log     deliverylog.Log
	limiter *rate.Limiter
	logger  *zap.Logger
}

// New creates a mailer Service.
func New(cfg Config, sender email.Sender, dlog deliverylog.Log, logger *zap.Logger) *Service {
	if cfg.Subject == "" {
		cfg.Subject = DefaultSubject
	}
	svc := &Service{
		cfg:    cfg,
		sender: sender,
		log:    dlog,
		logger: logger,
	}
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst <= 0 {
			burst = 1
		}
		svc.limiter = rate.NewLimiter(cfg.RateLimit, burst)
	}
	return svc
}

// SendOrderConfirmation implements EmailServiceServer.SendOrderConfirmation.
//
// It validates the recipient address, renders the confirmation body from the
// order, and delivers it through the configured transport. Each accepted
// message gets a server-assigned ID that is returned to the caller and
// recorded in the delivery log.
func (s *Service) SendOrderConfirmation(ctx context.Context, req *emailv1.SendOrderConfirmationRequest) (*emailv1.SendOrderConfirmationResponse, error) {
	if req.GetEmail() == "" {
		return nil, status.Error(codes.InvalidArgument, "email is required")
	}
	if _, err := mail.ParseAddress(req.GetEmail()); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid email address %q", req.GetEmail())
	}
	if req.GetOrder() == nil {
		return nil, status.Error(codes.InvalidArgument, "order is required")
	}

	if s.limiter != nil && !s.limiter.Allow() {
		sendsTotal.WithLabelValues("throttled").Inc()
		return nil, status.Error(codes.ResourceExhausted, "send rate exceeded, retry later")
	}

	body, err := renderConfirmation(req.GetOrder())
	if err != nil {
		sendsTotal.WithLabelValues("render_error").Inc()
		return nil, status.Errorf(codes.Internal, "render confirmation: %v", err)
	}

	messageID := uuid.New().String()
	start := time.Now()

	if err := s.sender.Send(ctx, req.GetEmail(), s.cfg.Subject, body); err != nil {
		sendsTotal.WithLabelValues("failed").Inc()
		s.record(ctx, req, messageID, deliverylog.StatusFailed, err.Error())
		s.logger.Error("confirmation send failed",
			zap.String("recipient", req.GetEmail()),
			zap.String("order_id", req.GetOrder().GetOrderId()),
			zap.Error(err),
		)
		return nil, status.Errorf(codes.Internal, "send confirmation: %v", err)
	}

	sendsTotal.WithLabelValues("sent").Inc()
	sendDuration.Observe(time.Since(start).Seconds())
	s.record(ctx, req, messageID, deliverylog.StatusSent, "")

	s.logger.Info("confirmation sent",
		zap.String("recipient", req.GetEmail()),
		zap.String("order_id", req.GetOrder().GetOrderId()),
		zap.String("message_id", messageID),
	)

	return &emailv1.SendOrderConfirmationResponse{MessageId: messageID}, nil
}

// record appends a delivery-log entry. A logging failure must not fail the
// RPC — the send already happened — so it is only warned about.
func (s *Service) record(ctx context.Context, req *emailv1.SendOrderConfirmationRequest, messageID, st, detail string) {
	if s.log == nil {
		return
	}
	_, err := s.log.Append(ctx, deliverylog.Entry{
		MessageID: messageID,
		Recipient: req.GetEmail(),
		OrderID:   req.GetOrder().GetOrderId(),
		Status:    st,
		Detail:    detail,
	})
	if err != nil {
		s.logger.Warn("delivery log append failed", zap.Error(err))
	}
}
