package main

import (
	"log"

	"github.com/hinatano/liveboard/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ liveboard failed to start: %v", err)
	}
}
