package main

import (
	"fmt"
	"log"
	"os"

	"commander-tracker-api/config"
	"commander-tracker-api/fixtures"

	"github.com/joho/godotenv"
)

func main() {
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

	generator := fixtures.NewFixtures(db)

	command := "generate"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "generate":
		if err := generator.GenerateTestData(); err != nil {
			log.Fatal("Fixtures generation failed:", err)
		}
	case "clean":
		if err := generator.CleanTestData(); err != nil {
			log.Fatal("Fixtures cleanup failed:", err)
		}
	default:
		fmt.Println("Usage:")
		fmt.Println("  go run ./cmd/fixtures [generate] - Seed sample players, commanders and games")
		fmt.Println("  go run ./cmd/fixtures clean      - Remove seeded data")
	}
}
