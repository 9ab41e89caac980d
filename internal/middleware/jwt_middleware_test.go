package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func runWithAuth(t *testing.T, header string) (*httptest.ResponseRecorder, *Claims) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var claims *Claims
	handler := JWTMiddleware()(func(c echo.Context) error {
		claims = GetClaims(c)
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatal(err)
	}
	return rec, claims
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("session-1", "alex@example.com", 1)
	if err != nil {
		t.Fatal(err)
	}

	rec, claims := runWithAuth(t, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("valid token rejected: %d %s", rec.Code, rec.Body)
	}
	if claims == nil || claims.SessionID != "session-1" || claims.Email != "alex@example.com" {
		t.Fatalf("claims not attached: %+v", claims)
	}
}

func TestMissingAndMalformedHeaders(t *testing.T) {
	for _, header := range []string{"", "garbage", "Bearer not-a-token"} {
		rec, _ := runWithAuth(t, header)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: want 401, got %d", header, rec.Code)
		}
	}
}
