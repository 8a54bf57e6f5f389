package main

import (
	"context"
	"log"

	"github.com/gestorverde/gestorverde/internal/cli"
	"github.com/gestorverde/gestorverde/internal/config"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
