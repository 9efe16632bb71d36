// Package functions is the generic invocation surface: it translates a
// function-style request shape into the request/response shape the gin
// handlers expect, so the same controller logic serves both the HTTP
// router and function-host deployments.
package functions

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// Request is a host-agnostic invocation: the segments left after the
// function mount point, plus method, query, body and headers.
type Request struct {
	Method   string            `json:"method"`
	Segments string            `json:"segments"`
	Query    url.Values        `json:"query"`
	Body     json.RawMessage   `json:"body"`
	Headers  map[string]string `json:"headers"`
}

// Response is what the invocation host sends back to its caller.
type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

func notFoundResponse() Response {
	return Response{StatusCode: http.StatusNotFound, Body: "Not Found"}
}

// splitSegments drops empty path segments, so "a//b/" dispatches like "a/b".
func splitSegments(raw string) []string {
	parts := strings.Split(raw, "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// decodeSegment best-effort unescapes a path segment, falling back to the
// raw value when it is not valid percent-encoding.
func decodeSegment(segment string) string {
	if segment == "" {
		return segment
	}
	decoded, err := url.PathUnescape(segment)
	if err != nil {
		return segment
	}
	return decoded
}

func segmentAt(segments []string, i int) string {
	if i >= len(segments) {
		return ""
	}
	return segments[i]
}

// run invokes a gin handler against a synthetic request and captures what
// it wrote.
func run(handler gin.HandlerFunc, req Request, params gin.Params) Response {
	recorder := newRecorder()
	ctx, _ := gin.CreateTestContext(recorder)

	method := strings.ToUpper(req.Method)
	if method == "" {
		method = http.MethodGet
	}

	target := "/" + req.Segments
	if encoded := req.Query.Encode(); encoded != "" {
		target += "?" + encoded
	}

	httpReq, err := http.NewRequest(method, target, bytes.NewReader(req.Body))
	if err != nil {
		return Response{StatusCode: http.StatusInternalServerError, Body: "Bad invocation"}
	}
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}
	if len(req.Body) > 0 && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	ctx.Request = httpReq
	ctx.Params = params

	handler(ctx)

	return recorder.response()
}

// recorder is a minimal http.ResponseWriter capturing status, headers and
// body for translation back into a Response.
type recorder struct {
	status int
	header http.Header
	body   bytes.Buffer
}

func newRecorder() *recorder {
	return &recorder{header: make(http.Header)}
}

func (r *recorder) Header() http.Header {
	return r.header
}

func (r *recorder) WriteHeader(code int) {
	if r.status == 0 {
		r.status = code
	}
}

func (r *recorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.body.Write(b)
}

func (r *recorder) response() Response {
	status := r.status
	if status == 0 {
		status = http.StatusOK
	}

	headers := make(map[string]string, len(r.header))
	for key := range r.header {
		headers[key] = r.header.Get(key)
	}

	return Response{
		StatusCode: status,
		Headers:    headers,
		Body:       r.body.String(),
	}
}
