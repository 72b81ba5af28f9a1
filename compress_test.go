package academy

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcceptsBrotli(t *testing.T) {
	tests := []struct {
		header string
		want   bool
	}{
		{"", false},
		{"gzip", false},
		{"br", true},
		{"gzip, deflate, br", true},
		{"br;q=0.8, gzip", true},
		{"br;q=0", false},
		{"brotli", false},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Encoding", tt.header)
		assert.Equal(t, tt.want, acceptsBrotli(req), tt.header)
	}
}

func serveBrotli(h echo.HandlerFunc) *httptest.ResponseRecorder {
	e := echo.New()
	e.GET("/", h, brotliMiddleware(5, func(echo.Context) bool { return false }))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "br")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestBrotliMiddlewareEncodesBody(t *testing.T) {
	rec := serveBrotli(func(c echo.Context) error {
		return c.String(http.StatusCreated, "hello academy")
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "br", rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))
	body, err := io.ReadAll(brotli.NewReader(rec.Body))
	require.NoError(t, err)
	assert.Equal(t, "hello academy", string(body))
}

func TestBrotliMiddlewareLeavesRedirectsAlone(t *testing.T) {
	rec := serveBrotli(func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, "/wishlist")
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/wishlist", rec.Header().Get("Location"))
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Zero(t, rec.Body.Len())
}
