package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRequestIDRouter() *gin.Engine {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})
	return r
}

func TestRequestIDGenerated(t *testing.T) {
	r := newRequestIDRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	header := w.Header().Get(RequestIDHeader)
	if header == "" {
		t.Fatal("response is missing the request id header")
	}
	if _, err := uuid.Parse(header); err != nil {
		t.Errorf("header %q is not a UUID: %v", header, err)
	}
	if w.Body.String() != header {
		t.Errorf("context id %q does not match header %q", w.Body.String(), header)
	}
}

func TestRequestIDReusesCallerHeader(t *testing.T) {
	r := newRequestIDRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "caller-supplied-id")
	r.ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeader); got != "caller-supplied-id" {
		t.Errorf("header = %q, want caller-supplied id echoed back", got)
	}
	if got := w.Body.String(); got != "caller-supplied-id" {
		t.Errorf("context id = %q, want caller-supplied id", got)
	}
}
