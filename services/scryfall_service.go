package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"commander-tracker-api/models"
)

const (
	scryfallBaseURL = "https://api.scryfall.com"
	scryfallTimeout = 8 * time.Second
)

// ScryfallError carries the upstream HTTP status so handlers can pass it
// through instead of collapsing everything to 500.
type ScryfallError struct {
	StatusCode int
	Message    string
}

func (e *ScryfallError) Error() string {
	return e.Message
}

// ScryfallService queries the Scryfall card database for card details and
// commander name candidates. Every request is bounded by a fixed timeout.
type ScryfallService struct {
	baseURL string
	client  *http.Client
}

func NewScryfallService() *ScryfallService {
	return &ScryfallService{
		baseURL: scryfallBaseURL,
		client:  &http.Client{Timeout: scryfallTimeout},
	}
}

// scryfallCard is the subset of a Scryfall card object we read.
type scryfallCard struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	ColorIdentity []string        `json:"color_identity"`
	ImageURIs     *scryfallImages `json:"image_uris"`
	CardFaces     []scryfallFace  `json:"card_faces"`
	Set           string          `json:"set"`
	TypeLine      string          `json:"type_line"`
	ScryfallURI   string          `json:"scryfall_uri"`
	ManaCost      string          `json:"mana_cost"`
	CMC           float64         `json:"cmc"`
	OracleText    string          `json:"oracle_text"`
}

type scryfallImages struct {
	Small  string `json:"small"`
	Normal string `json:"normal"`
}

type scryfallFace struct {
	ImageURIs *scryfallImages `json:"image_uris"`
}

type scryfallList struct {
	Data []scryfallCard `json:"data"`
}

type scryfallAPIError struct {
	Details string `json:"details"`
	Message string `json:"message"`
}

// GetCardInfoByName looks up a single card by name, fuzzy by default.
// Upstream failures surface as *ScryfallError with the upstream status.
func (s *ScryfallService) GetCardInfoByName(ctx context.Context, name string, exact bool) (*models.CardInfo, error) {
	if name == "" {
		return nil, &ScryfallError{StatusCode: http.StatusBadRequest, Message: "Card name is required"}
	}

	query := url.Values{}
	if exact {
		query.Set("exact", name)
	} else {
		query.Set("fuzzy", name)
	}

	var card scryfallCard
	if err := s.get(ctx, "/cards/named?"+query.Encode(), &card, "Scryfall lookup failed"); err != nil {
		return nil, err
	}

	return &models.CardInfo{
		Name:          card.Name,
		ColorIdentity: nonNilColors(card.ColorIdentity),
		Image:         card.normalImage(),
		Set:           card.Set,
		TypeLine:      card.TypeLine,
		ScryfallURI:   card.ScryfallURI,
		ID:            card.ID,
		ManaCost:      card.ManaCost,
		CMC:           card.CMC,
		OracleText:    card.OracleText,
	}, nil
}

// SearchCommanders returns up to limit legendary-creature name candidates
// matching the query. No-match and timeout both yield an empty list rather
// than an error; other upstream failures propagate.
func (s *ScryfallService) SearchCommanders(ctx context.Context, rawQuery string, limit int) ([]models.CommanderSuggestion, error) {
	if rawQuery == "" {
		return []models.CommanderSuggestion{}, nil
	}

	query := url.Values{}
	query.Set("q", fmt.Sprintf("%s type:legendary type:creature", rawQuery))
	query.Set("unique", "names")
	query.Set("order", "name")

	var list scryfallList
	err := s.get(ctx, "/cards/search?"+query.Encode(), &list, "Scryfall search failed")
	if err != nil {
		var upstream *ScryfallError
		if errors.As(err, &upstream) && upstream.StatusCode == http.StatusNotFound {
			return []models.CommanderSuggestion{}, nil
		}
		if isTimeout(err) {
			return []models.CommanderSuggestion{}, nil
		}
		return nil, err
	}

	cards := list.Data
	if limit > 0 && len(cards) > limit {
		cards = cards[:limit]
	}

	suggestions := make([]models.CommanderSuggestion, 0, len(cards))
	for _, card := range cards {
		suggestions = append(suggestions, models.CommanderSuggestion{
			Name:          card.Name,
			ColorIdentity: nonNilColors(card.ColorIdentity),
			TypeLine:      card.TypeLine,
			ManaCost:      card.ManaCost,
			Image:         card.smallImage(),
		})
	}
	return suggestions, nil
}

func (s *ScryfallService) get(ctx context.Context, path string, out any, failureMessage string) error {
	reqCtx, cancel := context.WithTimeout(ctx, scryfallTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build Scryfall request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := failureMessage
		var apiErr scryfallAPIError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil {
			if apiErr.Details != "" {
				message = apiErr.Details
			} else if apiErr.Message != "" {
				message = apiErr.Message
			}
		}
		return &ScryfallError{StatusCode: resp.StatusCode, Message: message}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode Scryfall response: %w", err)
	}
	return nil
}

// normalImage picks a display image, falling back to the first card face
// that has one for double-faced cards.
func (c scryfallCard) normalImage() *string {
	if c.ImageURIs != nil && c.ImageURIs.Normal != "" {
		image := c.ImageURIs.Normal
		return &image
	}
	for _, face := range c.CardFaces {
		if face.ImageURIs != nil && face.ImageURIs.Normal != "" {
			image := face.ImageURIs.Normal
			return &image
		}
	}
	return nil
}

func (c scryfallCard) smallImage() *string {
	if c.ImageURIs != nil {
		if c.ImageURIs.Small != "" {
			image := c.ImageURIs.Small
			return &image
		}
		if c.ImageURIs.Normal != "" {
			image := c.ImageURIs.Normal
			return &image
		}
	}
	return nil
}

func nonNilColors(colors []string) []string {
	if colors == nil {
		return []string{}
	}
	return colors
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr) && urlErr.Timeout()
}
