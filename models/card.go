package models

// CardInfo is the card detail shape returned to clients, distilled from a
// Scryfall card object.
type CardInfo struct {
	Name          string   `json:"name"`
	ColorIdentity []string `json:"color_identity"`
	Image         *string  `json:"image"`
	Set           string   `json:"set"`
	TypeLine      string   `json:"type_line"`
	ScryfallURI   string   `json:"scryfall_uri"`
	ID            string   `json:"id"`
	ManaCost      string   `json:"mana_cost"`
	CMC           float64  `json:"cmc"`
	OracleText    string   `json:"oracle_text"`
}

// CommanderSuggestion is one autocomplete candidate from a commander name
// search.
type CommanderSuggestion struct {
	Name          string   `json:"name"`
	ColorIdentity []string `json:"color_identity"`
	TypeLine      string   `json:"type_line"`
	ManaCost      string   `json:"mana_cost"`
	Image         *string  `json:"image"`
}
