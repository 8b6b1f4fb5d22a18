package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

// hit sends one request through mw and returns the status written to the
// client. Denials are written by the Echo error handler, not returned.
func hit(t *testing.T, e *echo.Echo, mw echo.MiddlewareFunc, ip string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.RemoteAddr = ip + ":12345"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec.Code
}

func TestRateLimit_DeniesAfterBurst(t *testing.T) {
	e := echo.New()
	mw := RateLimit(1) // burst of 2

	for i := 0; i < 2; i++ {
		if code := hit(t, e, mw, "10.0.0.1"); code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, code)
		}
	}

	if code := hit(t, e, mw, "10.0.0.1"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", code)
	}

	if code := hit(t, e, mw, "10.0.0.2"); code != http.StatusOK {
		t.Fatalf("other clients must not be limited, got %d", code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	e := echo.New()
	mw := RateLimit(0)
	for i := 0; i < 50; i++ {
		if code := hit(t, e, mw, "10.0.0.1"); code != http.StatusOK {
			t.Fatalf("request %d rejected with limit disabled: %d", i, code)
		}
	}
}
