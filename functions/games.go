package functions

import (
	"net/http"
	"strings"

	"commander-tracker-api/handlers"
)

// GamesFunction serves game creation through the invocation surface. Only
// POST is accepted.
type GamesFunction struct {
	handler *handlers.GamesHandler
}

func NewGamesFunction(handler *handlers.GamesHandler) *GamesFunction {
	return &GamesFunction{handler: handler}
}

func (f *GamesFunction) Invoke(req Request) Response {
	if !strings.EqualFold(req.Method, http.MethodPost) {
		return Response{StatusCode: http.StatusMethodNotAllowed, Body: "Method Not Allowed"}
	}
	return run(f.handler.CreateGame, req, nil)
}
