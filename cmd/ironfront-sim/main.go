// ironfront-sim runs scenario fixtures through pathing.Driver from the
// command line, the way cmd/backend wired a config-driven entrypoint
// around the game server in the teacher repo.
package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Println("ironfront-sim: error loading .env:", err)
	}

	level := slog.LevelInfo
	if os.Getenv("IRONFRONT_ENV") == "dev" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := Execute(); err != nil {
		fatal(err)
	}
}
