// Command server runs the inventory HTTP API.
package main

import (
	"context"
	"log"

	"github.com/spoolkeep/spoolkeep-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
