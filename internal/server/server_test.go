package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alfat81/fto/internal/config"
	"github.com/alfat81/fto/internal/order"
)

type fakeRelay struct {
	err    error
	orders []order.Order
}

func (f *fakeRelay) SendOrder(_ context.Context, o order.Order, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.orders = append(f.orders, o)
	return nil
}

func testConfig(env string) *config.Config {
	return &config.Config{
		Env:        env,
		CORSOrigin: "https://alfat81.github.io",
	}
}

func newTestServer(relay OrderRelay) http.Handler {
	return New(testConfig("development"), relay, zap.NewNop()).Routes()
}

func postOrder(t *testing.T, h http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/order", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func validPayload() map[string]any {
	return map[string]any{
		"items": []map[string]any{
			{"id": "p1", "name": "Стул", "price": 1500, "quantity": 2},
		},
		"customer": map[string]any{"name": "Иван", "phone": "+79601786738", "comment": ""},
		"total":    3000,
	}
}

func TestOrderSuccess(t *testing.T) {
	relay := &fakeRelay{}
	h := newTestServer(relay)

	rec := postOrder(t, h, validPayload())
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["message"])
	assert.Regexp(t, regexp.MustCompile(`^ORD-[A-F0-9]+-\d+$`), body["orderId"])

	require.Len(t, relay.orders, 1)
	assert.Equal(t, int64(3000), relay.orders[0].Total)
	assert.False(t, relay.orders[0].Date.IsZero(), "missing date defaults to submission time")
}

func TestOrderValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(map[string]any)
		wantMsg string
	}{
		{
			name:    "empty items",
			mutate:  func(p map[string]any) { p["items"] = []any{} },
			wantMsg: order.MsgMissingItems,
		},
		{
			name: "blank customer",
			mutate: func(p map[string]any) {
				p["customer"] = map[string]any{"name": "", "phone": ""}
			},
			wantMsg: order.MsgMissingCustomerData,
		},
		{
			name:    "zero total",
			mutate:  func(p map[string]any) { p["total"] = 0 },
			wantMsg: order.MsgInvalidTotal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			relay := &fakeRelay{}
			h := newTestServer(relay)

			payload := validPayload()
			tt.mutate(payload)

			rec := postOrder(t, h, payload)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			body := decode(t, rec)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantMsg, body["error"])
			assert.Empty(t, relay.orders, "rejected order must not reach the relay")
		})
	}
}

func TestOrderMalformedBody(t *testing.T) {
	h := newTestServer(&fakeRelay{})

	req := httptest.NewRequest(http.MethodPost, "/api/order", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderRelayFailure(t *testing.T) {
	relay := &fakeRelay{err: order.NewRelay("Ошибка при обработке заказа. Пожалуйста, попробуйте позже.", "chat not found")}
	h := newTestServer(relay)

	rec := postOrder(t, h, validPayload())
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["error"])
	assert.Equal(t, "chat not found", body["details"], "development exposes the upstream description")
}

func TestOrderRelayFailureHidesDetailsInProduction(t *testing.T) {
	relay := &fakeRelay{err: order.NewRelay("Ошибка при обработке заказа. Пожалуйста, попробуйте позже.", "chat not found")}
	h := New(testConfig("production"), relay, zap.NewNop()).Routes()

	rec := postOrder(t, h, validPayload())
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, decode(t, rec), "details")
}

func TestOrderWithoutRelayConfigured(t *testing.T) {
	h := newTestServer(nil)

	rec := postOrder(t, h, validPayload())
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, false, decode(t, rec)["success"])
}

func TestHealth(t *testing.T) {
	h := newTestServer(&fakeRelay{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, true, body["telegramConfigured"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestHealthWithoutRelay(t *testing.T) {
	h := newTestServer(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decode(t, rec)["telegramConfigured"])
}

func TestNotFound(t *testing.T) {
	h := newTestServer(&fakeRelay{})

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "/api/unknown", body["path"])
	assert.Equal(t, http.MethodGet, body["method"])
	assert.NotEmpty(t, body["error"])
}

func TestRequestIDHeader(t *testing.T) {
	h := newTestServer(&fakeRelay{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-Id"))
}
