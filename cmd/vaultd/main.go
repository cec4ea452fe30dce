package main

import (
	"context"
	"log"
	"os"

	"github.com/awnumar/memguard"
	"github.com/dmitrijs2005/vivault/internal/buildinfo"
	"github.com/dmitrijs2005/vivault/internal/server"
	"github.com/dmitrijs2005/vivault/internal/server/config"
)

func main() {
	defer memguard.Purge()

	buildinfo.PrintBuildData(os.Stderr)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg, os.Stdout)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}
}
