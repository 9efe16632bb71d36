package functions

import (
	"commander-tracker-api/handlers"

	"github.com/gin-gonic/gin"
)

// StatsFunction dispatches statistics invocations by path segment,
// mirroring the paths the HTTP router mounts.
type StatsFunction struct {
	handler *handlers.StatsHandler
}

func NewStatsFunction(handler *handlers.StatsHandler) *StatsFunction {
	return &StatsFunction{handler: handler}
}

func (f *StatsFunction) Invoke(req Request) Response {
	segments := splitSegments(req.Segments)
	first := segmentAt(segments, 0)
	second := segmentAt(segments, 1)
	third := segmentAt(segments, 2)

	if first == "" {
		return notFoundResponse()
	}

	if first == "most-played" {
		return run(f.handler.GetMostPlayed, req, nil)
	}

	if first == "commanders" && second == "win-rate" {
		return run(f.handler.GetCommanderWinRate, req, optionalNameParams(third))
	}

	if first == "players" && second == "win-rate" {
		return run(f.handler.GetPlayerWinRate, req, optionalNameParams(third))
	}

	if first == "colors" && second == "frequency" {
		return run(f.handler.GetColorFrequency, req, optionalNameParams(third))
	}

	if first == "game-feed" {
		return run(f.handler.GetGameFeed, req, optionalNameParams(second))
	}

	if first == "players" && second == "head-to-head" && third != "" {
		params := gin.Params{{Key: "name", Value: decodeSegment(third)}}
		return run(f.handler.GetHeadToHead, req, params)
	}

	if first == "total-games" {
		return run(f.handler.GetTotalGames, req, nil)
	}

	if first == "unique-players" {
		return run(f.handler.GetUniquePlayers, req, nil)
	}

	if first == "avg-game-length" {
		return run(f.handler.GetAverageGameLength, req, nil)
	}

	return notFoundResponse()
}

func optionalNameParams(segment string) gin.Params {
	if segment == "" {
		return nil
	}
	return gin.Params{{Key: "name", Value: decodeSegment(segment)}}
}
