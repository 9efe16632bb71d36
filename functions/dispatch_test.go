package functions

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"commander-tracker-api/handlers"
	"commander-tracker-api/services"
)

func errorBody(t *testing.T, body string) string {
	t.Helper()
	var payload map[string]string
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	return payload["error"]
}

func TestGamesFunctionRejectsNonPost(t *testing.T) {
	fn := NewGamesFunction(handlers.NewGamesHandler(nil, nil))

	resp := fn.Invoke(Request{Method: http.MethodGet, Segments: ""})
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("StatusCode = %d, want 405", resp.StatusCode)
	}
	if resp.Body != "Method Not Allowed" {
		t.Errorf("Body = %q, want %q", resp.Body, "Method Not Allowed")
	}
}

func TestGamesFunctionRejectsMalformedPayload(t *testing.T) {
	fn := NewGamesFunction(handlers.NewGamesHandler(nil, nil))

	resp := fn.Invoke(Request{
		Method: http.MethodPost,
		Body:   json.RawMessage(`{"date": 12345}`),
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("StatusCode = %d, want 400", resp.StatusCode)
	}
	if got := errorBody(t, resp.Body); got != "Invalid payload: missing required fields or invalid data types" {
		t.Errorf("error = %q", got)
	}
}

func TestGamesFunctionRejectsInvalidSubmission(t *testing.T) {
	fn := NewGamesFunction(handlers.NewGamesHandler(nil, nil))

	resp := fn.Invoke(Request{
		Method: http.MethodPost,
		Body: json.RawMessage(`{
			"date": "2025-06-14",
			"wincon": "Combat",
			"players": [{"name": "Alice", "turnOrder": 1}]
		}`),
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("StatusCode = %d, want 400", resp.StatusCode)
	}
	if got := errorBody(t, resp.Body); got != "a game needs at least 2 players" {
		t.Errorf("error = %q", got)
	}
}

func TestCardsFunctionUnknownSegments(t *testing.T) {
	fn := NewCardsFunction(handlers.NewCardsHandler(services.NewScryfallService()))

	for _, segments := range []string{"", "details", "search", "search/cards", "nope"} {
		resp := fn.Invoke(Request{Method: http.MethodGet, Segments: segments})
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("Invoke(%q) status = %d, want 404", segments, resp.StatusCode)
		}
		if resp.Body != "Not Found" {
			t.Errorf("Invoke(%q) body = %q, want %q", segments, resp.Body, "Not Found")
		}
	}
}

func TestCardsFunctionBlankCardName(t *testing.T) {
	fn := NewCardsFunction(handlers.NewCardsHandler(services.NewScryfallService()))

	resp := fn.Invoke(Request{Method: http.MethodGet, Segments: "details/%20%20"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("StatusCode = %d, want 400", resp.StatusCode)
	}
	if got := errorBody(t, resp.Body); got != "Card name is required" {
		t.Errorf("error = %q", got)
	}
}

func TestCardsFunctionShortSearchQuery(t *testing.T) {
	fn := NewCardsFunction(handlers.NewCardsHandler(services.NewScryfallService()))

	resp := fn.Invoke(Request{
		Method:   http.MethodGet,
		Segments: "search/commanders",
		Query:    url.Values{"q": {"k"}},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("StatusCode = %d, want 200", resp.StatusCode)
	}
	if resp.Body != "[]" {
		t.Errorf("Body = %q, want empty list", resp.Body)
	}
}

func TestStatsFunctionUnknownSegments(t *testing.T) {
	fn := NewStatsFunction(handlers.NewStatsHandler(nil))

	for _, segments := range []string{
		"",
		"nope",
		"commanders",
		"players/head-to-head",
		"colors",
	} {
		resp := fn.Invoke(Request{Method: http.MethodGet, Segments: segments})
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("Invoke(%q) status = %d, want 404", segments, resp.StatusCode)
		}
	}
}
