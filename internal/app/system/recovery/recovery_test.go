package recovery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func panicky() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
}

func TestMiddleware(t *testing.T) {
	t.Run("panic becomes failure envelope", func(t *testing.T) {
		h := Middleware(zap.NewNop(), false)(panicky())

		req := httptest.NewRequest(http.MethodGet, "/api/blogs", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
		}

		var resp map[string]any
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp["success"] != false {
			t.Error("success should be false")
		}
		if resp["error"] != "internal server error" {
			t.Errorf("error = %v, want internal server error", resp["error"])
		}
		if _, ok := resp["stack"]; ok {
			t.Error("stack should not be exposed when exposeStack is false")
		}
	})

	t.Run("stack exposed outside production", func(t *testing.T) {
		h := Middleware(zap.NewNop(), true)(panicky())

		req := httptest.NewRequest(http.MethodGet, "/api/blogs", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		var resp map[string]any
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		stack, ok := resp["stack"].(string)
		if !ok || stack == "" {
			t.Error("stack should be exposed when exposeStack is true")
		}
	})

	t.Run("no panic passes through", func(t *testing.T) {
		h := Middleware(zap.NewNop(), false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusTeapot {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusTeapot)
		}
	})
}
