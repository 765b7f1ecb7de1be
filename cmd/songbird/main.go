package main

import (
	"os"

	"github.com/songbird/backend/cmd/songbird/commands"
)

// main is the entry point for the SongBird backend CLI:
// go run ./cmd/songbird [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
