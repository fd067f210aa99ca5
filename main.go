package main

import (
	"context"
	"log"

	"github.com/GlibAI/GenXL/internal/bootstrap"
)

func main() {
	ctx := context.Background()

	app := bootstrap.NewApp()
	if err := app.Initialize(ctx); err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
