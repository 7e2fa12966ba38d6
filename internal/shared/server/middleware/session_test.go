package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSessionMintsIDWhenAbsent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Session())

	var seen string
	r.GET("/ping", func(c *gin.Context) {
		seen = SessionIDFromContext(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if seen == "" {
		t.Fatal("expected a session ID to be minted")
	}
	if got := resp.Header().Get(SessionHeader); got != seen {
		t.Fatalf("response header %q, context %q", got, seen)
	}
}

func TestSessionEchoesProvidedID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Session())

	var seen string
	r.GET("/ping", func(c *gin.Context) {
		seen = SessionIDFromContext(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(SessionHeader, "session-abc")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if seen != "session-abc" {
		t.Fatalf("expected session-abc, got %q", seen)
	}
	if got := resp.Header().Get(SessionHeader); got != "session-abc" {
		t.Fatalf("expected header echo, got %q", got)
	}
}
