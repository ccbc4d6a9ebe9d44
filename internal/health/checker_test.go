package health

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type fakeProber struct {
	mu  sync.Mutex
	err error
}

func (f *fakeProber) Probe(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *fakeProber) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

type fakeSetter struct {
	statuses []healthpb.HealthCheckResponse_ServingStatus
}

func (f *fakeSetter) SetServingStatus(_ string, s healthpb.HealthCheckResponse_ServingStatus) {
	f.statuses = append(f.statuses, s)
}

func TestCheckOnce_flipsAfterThreshold(t *testing.T) {
	prober := &fakeProber{err: errors.New("connection refused")}
	setter := &fakeSetter{}
	c := New(prober, setter, "svc", Config{FailThreshold: 3}, zap.NewNop())

	ctx := context.Background()
	c.CheckOnce(ctx)
	c.CheckOnce(ctx)
	if len(setter.statuses) != 0 {
		t.Fatalf("status changed before threshold: %v", setter.statuses)
	}

	c.CheckOnce(ctx)
	if len(setter.statuses) != 1 || setter.statuses[0] != healthpb.HealthCheckResponse_NOT_SERVING {
		t.Fatalf("after threshold: got %v, want [NOT_SERVING]", setter.statuses)
	}

	// Further failures must not re-announce.
	c.CheckOnce(ctx)
	if len(setter.statuses) != 1 {
		t.Errorf("duplicate status updates: %v", setter.statuses)
	}
}

func TestCheckOnce_recovers(t *testing.T) {
	prober := &fakeProber{err: errors.New("connection refused")}
	setter := &fakeSetter{}
	c := New(prober, setter, "svc", Config{FailThreshold: 2}, zap.NewNop())

	ctx := context.Background()
	c.CheckOnce(ctx)
	c.CheckOnce(ctx) // NOT_SERVING

	prober.setErr(nil)
	c.CheckOnce(ctx)

	want := []healthpb.HealthCheckResponse_ServingStatus{
		healthpb.HealthCheckResponse_NOT_SERVING,
		healthpb.HealthCheckResponse_SERVING,
	}
	if len(setter.statuses) != len(want) {
		t.Fatalf("statuses: got %v, want %v", setter.statuses, want)
	}
	for i := range want {
		if setter.statuses[i] != want[i] {
			t.Errorf("status %d: got %v, want %v", i, setter.statuses[i], want[i])
		}
	}
}

func TestCheckOnce_successKeepsServing(t *testing.T) {
	setter := &fakeSetter{}
	c := New(&fakeProber{}, setter, "svc", Config{}, zap.NewNop())

	c.CheckOnce(context.Background())
	if len(setter.statuses) != 0 {
		t.Errorf("healthy probe changed status: %v", setter.statuses)
	}
}
