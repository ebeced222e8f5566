package main

import (
	"context"
	"os"

	"github.com/flowlytix/dashgate/modules/dashboard"
	"github.com/flowlytix/dashgate/pkg/config"
	"github.com/flowlytix/dashgate/pkg/httpserver"
	"github.com/flowlytix/dashgate/pkg/logger"
)

func main() {
	var appCfg dashboard.Config
	config.MustLoad(&appCfg)

	var srvCfg httpserver.Config
	config.MustLoad(&srvCfg)

	log := logger.New(logger.WithEnvironment(appCfg.Environment, "dashgate"))
	logger.SetAsDefault(log)

	ctx := context.Background()

	app, err := dashboard.New(ctx, appCfg, log)
	if err != nil {
		log.Error("failed to assemble dashboard", logger.Error(err))
		os.Exit(1)
	}

	if err := app.Run(ctx, srvCfg); err != nil {
		log.Error("dashboard stopped", logger.Error(err))
		os.Exit(1)
	}
}
