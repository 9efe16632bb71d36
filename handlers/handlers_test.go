package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"commander-tracker-api/services"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter() *gin.Engine {
	r := gin.New()
	games := NewGamesHandler(nil, nil)
	cards := NewCardsHandler(services.NewScryfallService())
	r.POST("/games", games.CreateGame)
	r.GET("/cards/details/:name", cards.GetCardDetails)
	r.GET("/cards/search/commanders", cards.SearchCommanders)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var payload map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	return payload["error"]
}

func TestCreateGameRejectsMalformedJSON(t *testing.T) {
	r := newTestRouter()

	w := postJSON(t, r, "/games", `{"date": `)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if got := errorMessage(t, w); got != "Invalid payload: missing required fields or invalid data types" {
		t.Errorf("error = %q", got)
	}
}

func TestCreateGameRejectsInvalidSubmissions(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "missing date",
			body:    `{"wincon": "Combat", "players": [{"name": "Alice", "turnOrder": 1}, {"name": "Bob", "turnOrder": 2}]}`,
			wantErr: "date is required",
		},
		{
			name:    "bad wincon",
			body:    `{"date": "2025-06-14", "wincon": "Mill", "players": [{"name": "Alice", "turnOrder": 1}, {"name": "Bob", "turnOrder": 2}]}`,
			wantErr: "wincon must be one of",
		},
		{
			name:    "single player",
			body:    `{"date": "2025-06-14", "wincon": "Combat", "players": [{"name": "Alice", "turnOrder": 1}]}`,
			wantErr: "a game needs at least 2 players",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, r, "/games", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			if got := errorMessage(t, w); !strings.Contains(got, tt.wantErr) {
				t.Errorf("error = %q, want containing %q", got, tt.wantErr)
			}
		})
	}
}

func TestGetCardDetailsRequiresName(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cards/details/%20%20", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if got := errorMessage(t, w); got != "Card name is required" {
		t.Errorf("error = %q", got)
	}
}

func TestSearchCommandersShortQuery(t *testing.T) {
	r := newTestRouter()

	for _, q := range []string{"", "k", "%20k%20"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/cards/search/commanders?q="+q, nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("q=%q status = %d, want 200", q, w.Code)
		}
		if body := strings.TrimSpace(w.Body.String()); body != "[]" {
			t.Errorf("q=%q body = %q, want empty list", q, body)
		}
	}
}
