// Package health probes the outbound SMTP relay and reflects the result in
// the gRPC health service, so orchestrators stop routing confirmation
// traffic to an instance that cannot deliver mail.
package health

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

var probesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "orderpost_smtp_probes_total",
	Help: "Total SMTP relay reachability probes by result.",
}, []string{"result"})

// Config holds relay check configuration.
type Config struct {
	CheckInterval time.Duration
	ProbeTimeout  time.Duration
	FailThreshold int // consecutive failures before flipping to NOT_SERVING
}

// Prober checks that the outbound relay is reachable.
type Prober interface {
	Probe(ctx context.Context) error
}

// TCPProber probes by opening and closing a TCP connection.
type TCPProber struct {
	Addr string
}

// Probe implements Prober.
func (p *TCPProber) Probe(ctx context.Context) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", p.Addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", p.Addr, err)
	}
	return conn.Close()
}

// StatusSetter is the part of the gRPC health server the checker drives.
type StatusSetter interface {
	SetServingStatus(service string, status healthpb.HealthCheckResponse_ServingStatus)
}

// Checker runs periodic relay probes and updates a service's health status.
type Checker struct {
	prober  Prober
	setter  StatusSetter
	service string
	cfg     Config
	logger  *zap.Logger

	mu        sync.Mutex
	failCount int
	serving   bool
}

// New creates a Checker for the named gRPC service.
func New(prober Prober, setter StatusSetter, service string, cfg Config, logger *zap.Logger) *Checker {
	if cfg.CheckInterval == 0 {
		cfg.CheckInterval = time.Minute
	}
	if cfg.ProbeTimeout == 0 {
		cfg.ProbeTimeout = 10 * time.Second
	}
	if cfg.FailThreshold == 0 {
		cfg.FailThreshold = 3
	}
	return &Checker{
		prober:  prober,
		setter:  setter,
		service: service,
		cfg:     cfg,
		logger:  logger,
		serving: true,
	}
}

// Start runs the probe loop until ctx is cancelled.
func (c *Checker) Start(ctx context.Context) {
	ticker := time.NewTicker(c.cfg.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(ctx, c.cfg.ProbeTimeout)
			c.CheckOnce(probeCtx)
			cancel()
		}
	}
}

// CheckOnce runs a single probe and applies the threshold logic.
func (c *Checker) CheckOnce(ctx context.Context) {
	err := c.prober.Probe(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		probesTotal.WithLabelValues("failure").Inc()
		c.failCount++
		c.logger.Warn("smtp relay probe failed",
			zap.Int("consecutive", c.failCount),
			zap.Error(err),
		)
		if c.serving && c.failCount >= c.cfg.FailThreshold {
			c.serving = false
			c.setter.SetServingStatus(c.service, healthpb.HealthCheckResponse_NOT_SERVING)
			c.logger.Error("smtp relay unreachable, marking NOT_SERVING",
				zap.Int("threshold", c.cfg.FailThreshold),
			)
		}
		return
	}

	probesTotal.WithLabelValues("success").Inc()
	c.failCount = 0
	if !c.serving {
		c.serving = true
		c.setter.SetServingStatus(c.service, healthpb.HealthCheckResponse_SERVING)
		c.logger.Info("smtp relay recovered, marking SERVING")
	}
}
