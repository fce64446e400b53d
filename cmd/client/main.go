package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/geofeed/internal/buildinfo"
	"github.com/dmitrijs2005/geofeed/internal/client/cli"
	"github.com/dmitrijs2005/geofeed/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
