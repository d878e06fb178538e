package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSecurityHeadersMiddleware(t *testing.T) {
	middleware := SecurityHeadersMiddleware()

	// Create a simple handler that does nothing
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/api/v1/snapshots", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	// Check headers
	expectedHeaders := map[string]string{
		HeaderContentType:    HeaderValueNoSniff,
		HeaderFrameOptions:   HeaderValueSameOrigin,
		HeaderXSSProtection:  HeaderValueXSSBlock,
		HeaderReferrerPolicy: HeaderValueReferrerStrictOrigin,
	}

	for header, expected := range expectedHeaders {
		if got := rec.Header().Get(header); got != expected {
			t.Errorf("expected header %s to be %q, got %q", header, expected, got)
		}
	}
}
