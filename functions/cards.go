package functions

import (
	"commander-tracker-api/handlers"

	"github.com/gin-gonic/gin"
)

// CardsFunction dispatches card lookup invocations by path segment.
type CardsFunction struct {
	handler *handlers.CardsHandler
}

func NewCardsFunction(handler *handlers.CardsHandler) *CardsFunction {
	return &CardsFunction{handler: handler}
}

func (f *CardsFunction) Invoke(req Request) Response {
	segments := splitSegments(req.Segments)
	first := segmentAt(segments, 0)
	second := segmentAt(segments, 1)

	if first == "details" && second != "" {
		params := gin.Params{{Key: "name", Value: decodeSegment(second)}}
		return run(f.handler.GetCardDetails, req, params)
	}

	if first == "search" && second == "commanders" {
		return run(f.handler.SearchCommanders, req, nil)
	}

	return notFoundResponse()
}
