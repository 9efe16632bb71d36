package functions

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSplitSegments(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"", nil},
		{"/", nil},
		{"most-played", []string{"most-played"}},
		{"players/win-rate/Alice", []string{"players", "win-rate", "Alice"}},
		{"players//win-rate/", []string{"players", "win-rate"}},
	}

	for _, tt := range tests {
		got := splitSegments(tt.raw)
		if len(got) != len(tt.want) {
			t.Errorf("splitSegments(%q) = %v, want %v", tt.raw, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitSegments(%q)[%d] = %q, want %q", tt.raw, i, got[i], tt.want[i])
			}
		}
	}
}

func TestDecodeSegment(t *testing.T) {
	tests := []struct {
		segment string
		want    string
	}{
		{"Alice", "Alice"},
		{"Krenko%2C%20Mob%20Boss", "Krenko, Mob Boss"},
		{"bad%zzescape", "bad%zzescape"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := decodeSegment(tt.segment); got != tt.want {
			t.Errorf("decodeSegment(%q) = %q, want %q", tt.segment, got, tt.want)
		}
	}
}

func TestRunCapturesHandlerOutput(t *testing.T) {
	handler := func(c *gin.Context) {
		var payload map[string]string
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad payload"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"name":  c.Param("name"),
			"q":     c.Query("q"),
			"value": payload["value"],
		})
	}

	resp := run(handler, Request{
		Method:   "post",
		Segments: "echo/Alice",
		Query:    url.Values{"q": {"kren"}},
		Body:     json.RawMessage(`{"value": "hello"}`),
	}, gin.Params{{Key: "name", Value: "Alice"}})

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("StatusCode = %d, want 201", resp.StatusCode)
	}
	if ct := resp.Headers["Content-Type"]; !strings.Contains(ct, "application/json") {
		t.Errorf("Content-Type = %q, want json", ct)
	}

	var body map[string]string
	if err := json.Unmarshal([]byte(resp.Body), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body["name"] != "Alice" || body["q"] != "kren" || body["value"] != "hello" {
		t.Errorf("body = %v, want echoed param, query and payload", body)
	}
}

func TestRunDefaultsToGet(t *testing.T) {
	handler := func(c *gin.Context) {
		c.String(http.StatusOK, c.Request.Method)
	}

	resp := run(handler, Request{Segments: "anything"}, nil)
	if resp.Body != http.MethodGet {
		t.Errorf("method = %q, want GET", resp.Body)
	}
}

func TestRunStatusDefaultsTo200(t *testing.T) {
	handler := func(c *gin.Context) {
		c.Writer.WriteString("plain")
	}

	resp := run(handler, Request{Segments: "x"}, nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200", resp.StatusCode)
	}
	if resp.Body != "plain" {
		t.Errorf("Body = %q, want %q", resp.Body, "plain")
	}
}
