package main

import (
	"log"

	"github.com/spiewnik/songbookd/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("songbookd failed to start: %v", err)
	}
}
