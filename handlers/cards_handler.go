package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"commander-tracker-api/services"

	"github.com/gin-gonic/gin"
)

const maxSearchResults = 20

type CardsHandler struct {
	scryfallService *services.ScryfallService
}

func NewCardsHandler(scryfallService *services.ScryfallService) *CardsHandler {
	return &CardsHandler{
		scryfallService: scryfallService,
	}
}

// GetCardDetails looks a card up by name
// @Summary Get card details
// @Description Fuzzy-match a card by name against the Scryfall card database
// @Tags cards
// @Produce json
// @Param name path string true "Card name"
// @Success 200 {object} models.CardInfo
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /cards/details/{name} [get]
func (h *CardsHandler) GetCardDetails(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Card name is required"})
		return
	}

	card, err := h.scryfallService.GetCardInfoByName(c.Request.Context(), name, false)
	if err != nil {
		var upstream *services.ScryfallError
		if errors.As(err, &upstream) {
			c.JSON(upstream.StatusCode, gin.H{"error": upstream.Message})
			return
		}
		log.Printf("Card details error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch card details"})
		return
	}

	c.JSON(http.StatusOK, card)
}

// SearchCommanders suggests commander names
// @Summary Search commander candidates
// @Description Search legendary creatures by name fragment for autocomplete. Queries shorter than 2 characters return an empty list.
// @Tags cards
// @Produce json
// @Param q query string true "Name fragment"
// @Param limit query int false "Maximum results (default: 10, max: 20)"
// @Success 200 {array} models.CommanderSuggestion
// @Failure 500 {object} map[string]string
// @Router /cards/search/commanders [get]
func (h *CardsHandler) SearchCommanders(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if len(query) < 2 {
		c.JSON(http.StatusOK, []any{})
		return
	}

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			limit = value
		}
	}
	if limit > maxSearchResults {
		limit = maxSearchResults
	}

	suggestions, err := h.scryfallService.SearchCommanders(c.Request.Context(), query, limit)
	if err != nil {
		var upstream *services.ScryfallError
		if errors.As(err, &upstream) {
			c.JSON(upstream.StatusCode, gin.H{"error": upstream.Message})
			return
		}
		log.Printf("Commander search error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search commanders"})
		return
	}

	c.JSON(http.StatusOK, suggestions)
}
