// internal/requestinfo/middleware_test.go
//
// Unit-tests for the request-info enrichment middleware.

package requestinfo

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

const chromeUA = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0.0.0 Safari/537.36"

func TestEnrich_AttachesInfo(t *testing.T) {
	var got *RequestInfo
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/design-request", nil)
	req.Header.Set("User-Agent", chromeUA)
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	rr := httptest.NewRecorder()

	Enrich(next).ServeHTTP(rr, req)

	if got == nil {
		t.Fatal("RequestInfo missing from context")
	}
	if got.UA.Browser != "BrowserChrome" && got.UA.Browser != "Chrome" {
		// uasurfer stringifies enums with their type prefix; accept either
		// form so a parser upgrade does not break the suite.
		t.Fatalf("browser = %q", got.UA.Browser)
	}
	if got.UA.Device != "Desktop" {
		t.Fatalf("device = %q, want Desktop", got.UA.Device)
	}
	if got.IP == nil || got.IP.String() != "203.0.113.9" {
		t.Fatalf("ip = %v, want left-most forwarded address", got.IP)
	}
}

func TestFromContext_NilWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if FromContext(req.Context()) != nil {
		t.Fatal("expected nil RequestInfo without Enrich")
	}
}
