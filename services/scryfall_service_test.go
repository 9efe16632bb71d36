package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestScryfallService(handler http.Handler) (*ScryfallService, *httptest.Server) {
	ts := httptest.NewServer(handler)
	svc := &ScryfallService{
		baseURL: ts.URL,
		client:  &http.Client{Timeout: scryfallTimeout},
	}
	return svc, ts
}

func TestGetCardInfoByName(t *testing.T) {
	svc, ts := newTestScryfallService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cards/named" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("fuzzy"); got != "krenko" {
			t.Errorf("fuzzy = %q, want %q", got, "krenko")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "abc-123",
			"name": "Krenko, Mob Boss",
			"color_identity": ["R"],
			"image_uris": {"normal": "https://img.example/krenko.jpg", "small": "https://img.example/krenko-s.jpg"},
			"set": "m13",
			"type_line": "Legendary Creature — Goblin Warrior",
			"scryfall_uri": "https://scryfall.example/krenko",
			"mana_cost": "{2}{R}{R}",
			"cmc": 4,
			"oracle_text": "Tap: Create X 1/1 red Goblin creature tokens."
		}`))
	}))
	defer ts.Close()

	card, err := svc.GetCardInfoByName(context.Background(), "krenko", false)
	if err != nil {
		t.Fatalf("GetCardInfoByName() error = %v", err)
	}
	if card.Name != "Krenko, Mob Boss" {
		t.Errorf("Name = %q, want %q", card.Name, "Krenko, Mob Boss")
	}
	if card.Image == nil || *card.Image != "https://img.example/krenko.jpg" {
		t.Errorf("Image = %v, want normal image URL", card.Image)
	}
	if len(card.ColorIdentity) != 1 || card.ColorIdentity[0] != "R" {
		t.Errorf("ColorIdentity = %v, want [R]", card.ColorIdentity)
	}
	if card.CMC != 4 {
		t.Errorf("CMC = %v, want 4", card.CMC)
	}
}

func TestGetCardInfoByNameExact(t *testing.T) {
	svc, ts := newTestScryfallService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("exact"); got != "Krenko, Mob Boss" {
			t.Errorf("exact = %q, want full name", got)
		}
		if got := r.URL.Query().Get("fuzzy"); got != "" {
			t.Errorf("fuzzy = %q, want empty", got)
		}
		w.Write([]byte(`{"name": "Krenko, Mob Boss"}`))
	}))
	defer ts.Close()

	if _, err := svc.GetCardInfoByName(context.Background(), "Krenko, Mob Boss", true); err != nil {
		t.Fatalf("GetCardInfoByName() error = %v", err)
	}
}

func TestGetCardInfoByNameFaceImageFallback(t *testing.T) {
	svc, ts := newTestScryfallService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"name": "Esika, God of the Tree // The Prismatic Bridge",
			"card_faces": [
				{"image_uris": {"normal": "https://img.example/esika.jpg"}},
				{"image_uris": {"normal": "https://img.example/bridge.jpg"}}
			]
		}`))
	}))
	defer ts.Close()

	card, err := svc.GetCardInfoByName(context.Background(), "esika", false)
	if err != nil {
		t.Fatalf("GetCardInfoByName() error = %v", err)
	}
	if card.Image == nil || *card.Image != "https://img.example/esika.jpg" {
		t.Errorf("Image = %v, want first face image", card.Image)
	}
	if card.ColorIdentity == nil {
		t.Error("ColorIdentity is nil, want empty slice")
	}
}

func TestGetCardInfoByNameUpstreamError(t *testing.T) {
	svc, ts := newTestScryfallService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"object": "error", "details": "No cards found matching your query"}`))
	}))
	defer ts.Close()

	_, err := svc.GetCardInfoByName(context.Background(), "zzzz", false)
	var upstream *ScryfallError
	if !errors.As(err, &upstream) {
		t.Fatalf("error = %v, want *ScryfallError", err)
	}
	if upstream.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", upstream.StatusCode)
	}
	if upstream.Message != "No cards found matching your query" {
		t.Errorf("Message = %q, want upstream details", upstream.Message)
	}
}

func TestGetCardInfoByNameEmptyName(t *testing.T) {
	svc := NewScryfallService()

	_, err := svc.GetCardInfoByName(context.Background(), "", false)
	var upstream *ScryfallError
	if !errors.As(err, &upstream) {
		t.Fatalf("error = %v, want *ScryfallError", err)
	}
	if upstream.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d, want 400", upstream.StatusCode)
	}
}

func TestSearchCommanders(t *testing.T) {
	svc, ts := newTestScryfallService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cards/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query().Get("q")
		if q != "kren type:legendary type:creature" {
			t.Errorf("q = %q, want legendary creature filter appended", q)
		}
		w.Write([]byte(`{"data": [
			{"name": "Krenko, Mob Boss", "color_identity": ["R"], "type_line": "Legendary Creature — Goblin Warrior", "mana_cost": "{2}{R}{R}", "image_uris": {"small": "https://img.example/krenko-s.jpg"}},
			{"name": "Krenko, Tin Street Kingpin", "color_identity": ["R"], "type_line": "Legendary Creature — Goblin Warrior", "mana_cost": "{2}{R}"},
			{"name": "Krenko, Baron of Tin Street", "color_identity": ["B", "R"], "type_line": "Legendary Creature — Goblin Warrior", "mana_cost": "{1}{B}{R}"}
		]}`))
	}))
	defer ts.Close()

	got, err := svc.SearchCommanders(context.Background(), "kren", 2)
	if err != nil {
		t.Fatalf("SearchCommanders() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want limit of 2 applied", len(got))
	}
	if got[0].Name != "Krenko, Mob Boss" {
		t.Errorf("first = %q, want %q", got[0].Name, "Krenko, Mob Boss")
	}
	if got[0].Image == nil || *got[0].Image != "https://img.example/krenko-s.jpg" {
		t.Errorf("Image = %v, want small image URL", got[0].Image)
	}
	if got[1].Image != nil {
		t.Errorf("Image = %v, want nil when no image provided", got[1].Image)
	}
}

func TestSearchCommandersNoMatch(t *testing.T) {
	svc, ts := newTestScryfallService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"object": "error", "details": "Your query didn't match any cards."}`))
	}))
	defer ts.Close()

	got, err := svc.SearchCommanders(context.Background(), "zzzz", 10)
	if err != nil {
		t.Fatalf("SearchCommanders() error = %v, want empty list", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestSearchCommandersTimeout(t *testing.T) {
	svc, ts := newTestScryfallService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	got, err := svc.SearchCommanders(ctx, "kren", 10)
	if err != nil {
		t.Fatalf("SearchCommanders() error = %v, want empty list on timeout", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestSearchCommandersUpstreamFailure(t *testing.T) {
	svc, ts := newTestScryfallService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"object": "error", "details": "Something went wrong"}`))
	}))
	defer ts.Close()

	_, err := svc.SearchCommanders(context.Background(), "kren", 10)
	var upstream *ScryfallError
	if !errors.As(err, &upstream) {
		t.Fatalf("error = %v, want *ScryfallError", err)
	}
	if upstream.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", upstream.StatusCode)
	}
}

func TestSearchCommandersEmptyQuery(t *testing.T) {
	svc := NewScryfallService()

	got, err := svc.SearchCommanders(context.Background(), "", 10)
	if err != nil {
		t.Fatalf("SearchCommanders() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}
