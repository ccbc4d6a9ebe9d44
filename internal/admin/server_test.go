package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/orderpost/orderpost/internal/deliverylog"
	"go.uber.org/zap"
)

const testSecret = "test-admin-secret"

func newTestRouter(t *testing.T) (*gin.Engine, *deliverylog.MemoryLog) {
	t.Helper()
	dlog := deliverylog.NewMemoryLog()
	router := NewRouter(Config{AdminSecret: testSecret}, dlog, zap.NewNop())
	return router, dlog
}

func doRequest(router *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthz_open(t *testing.T) {
	router, _ := newTestRouter(t)
	w := doRequest(router, http.MethodGet, "/healthz", "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /healthz: got %d, want 200", w.Code)
	}
}

func TestDeliveries_requiresToken(t *testing.T) {
	router, _ := newTestRouter(t)

	if w := doRequest(router, http.MethodGet, "/api/v1/deliveries", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("no token: got %d, want 401", w.Code)
	}
	if w := doRequest(router, http.MethodGet, "/api/v1/deliveries", "not-a-jwt"); w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: got %d, want 401", w.Code)
	}

	wrong, err := IssueToken("some-other-secret", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if w := doRequest(router, http.MethodGet, "/api/v1/deliveries", wrong); w.Code != http.StatusUnauthorized {
		t.Errorf("wrong secret: got %d, want 401", w.Code)
	}
}

func TestDeliveries_disabledWithoutSecret(t *testing.T) {
	router := NewRouter(Config{}, deliverylog.NewMemoryLog(), zap.NewNop())
	if w := doRequest(router, http.MethodGet, "/api/v1/deliveries", ""); w.Code != http.StatusServiceUnavailable {
		t.Errorf("no secret configured: got %d, want 503", w.Code)
	}
}

func TestDeliveries_list(t *testing.T) {
	router, dlog := newTestRouter(t)

	for _, e := range []deliverylog.Entry{
		{MessageID: "m1", Recipient: "a@b.com", OrderID: "1", Status: deliverylog.StatusSent},
		{MessageID: "m2", Recipient: "c@d.com", OrderID: "2", Status: deliverylog.StatusFailed, Detail: "smtp timeout"},
	} {
		if _, err := dlog.Append(context.Background(), e); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	token, err := IssueToken(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	w := doRequest(router, http.MethodGet, "/api/v1/deliveries?limit=10", token)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/v1/deliveries: got %d, want 200 (body=%s)", w.Code, w.Body.String())
	}

	var body struct {
		Deliveries []deliverylog.Entry `json:"deliveries"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Deliveries) != 2 {
		t.Fatalf("deliveries: got %d, want 2", len(body.Deliveries))
	}
	// Newest first.
	if body.Deliveries[0].MessageID != "m2" {
		t.Errorf("first entry: got %q, want m2", body.Deliveries[0].MessageID)
	}
}

func TestDeliveries_badLimit(t *testing.T) {
	router, _ := newTestRouter(t)
	token, err := IssueToken(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if w := doRequest(router, http.MethodGet, "/api/v1/deliveries?limit=zero", token); w.Code != http.StatusBadRequest {
		t.Errorf("bad limit: got %d, want 400", w.Code)
	}
}

func TestDeliveryStats(t *testing.T) {
	router, dlog := newTestRouter(t)

	for i := 0; i < 3; i++ {
		dlog.Append(context.Background(), deliverylog.Entry{Status: deliverylog.StatusSent}) //nolint:errcheck
	}

	token, err := IssueToken(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	w := doRequest(router, http.MethodGet, "/api/v1/deliveries/stats", token)
	if w.Code != http.StatusOK {
		t.Fatalf("GET stats: got %d, want 200", w.Code)
	}

	var body struct {
		Counts map[string]int64 `json:"counts"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Counts[deliverylog.StatusSent] != 3 {
		t.Errorf("sent count: got %d, want 3", body.Counts[deliverylog.StatusSent])
	}
}
