package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestRequestIDGeneratesUUID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	var seen string
	r.GET("/x", func(c *gin.Context) {
		seen = RequestIDFromContext(c)
		c.Status(http.StatusNoContent)
	})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/x", nil))

	got := resp.Header().Get("X-Request-Id")
	if _, err := uuid.Parse(got); err != nil {
		t.Fatalf("expected uuid request id, got %q", got)
	}
	if seen != got {
		t.Fatalf("context id %q != header id %q", seen, got)
	}
}

func TestRequestIDHonorsInbound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	cases := []struct {
		name    string
		inbound string
		keep    bool
	}{
		{name: "valid", inbound: "trace-abc-123", keep: true},
		{name: "spaces", inbound: "has space", keep: false},
		{name: "too long", inbound: strings.Repeat("a", 200), keep: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			req.Header.Set("X-Request-Id", tc.inbound)
			resp := httptest.NewRecorder()
			r.ServeHTTP(resp, req)
			got := resp.Header().Get("X-Request-Id")
			if (got == tc.inbound) != tc.keep {
				t.Fatalf("inbound %q -> %q, keep=%v", tc.inbound, got, tc.keep)
			}
		})
	}
}
