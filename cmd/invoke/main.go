// Command invoke runs a single function-style invocation from stdin
// against the games, cards or stats dispatcher and prints the response,
// mimicking how a function host would call the adapter. Useful for poking
// the invocation surface without an HTTP server.
//
//	echo '{"method":"GET","segments":"total-games"}' | go run ./cmd/invoke stats
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"commander-tracker-api/app"
	"commander-tracker-api/config"
	"commander-tracker-api/functions"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run ./cmd/invoke <games|cards|stats> < request.json")
	}
	area := os.Args[1]

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.LoadDatabaseConfig()
	if err != nil {
		log.Fatal(err)
	}
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer config.CloseDatabase(db)

	gin.SetMode(gin.ReleaseMode)
	module := app.NewModule(db)

	var req functions.Request
	if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
		log.Fatal("Failed to decode invocation request:", err)
	}

	var resp functions.Response
	switch area {
	case "games":
		resp = functions.NewGamesFunction(module.GamesHandler).Invoke(req)
	case "cards":
		resp = functions.NewCardsFunction(module.CardsHandler).Invoke(req)
	case "stats":
		resp = functions.NewStatsFunction(module.StatsHandler).Invoke(req)
	default:
		log.Fatalf("Unknown area %q (want games, cards or stats)", area)
	}

	encoded, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		log.Fatal("Failed to encode response:", err)
	}
	fmt.Println(string(encoded))
}
