package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-storefront/internal/client"
	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Printf("error getting configs: %v\n", err)
		return
	}

	log := logger.NewClientLogger("storefront-client", cfg.Log.File)
	logger.SetLevel(cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	app, err := client.NewApp(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Err(err).Msg("init client app error")
		fmt.Printf("could not start the client: %v\n", err)
		return
	}
	defer app.Close()

	if cfg.UI.RenderPath != "" {
		if err = app.Render(ctx, cfg.UI.RenderPath); err != nil {
			log.Err(err).Msg("client render error")
		}
		return
	}

	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
		fmt.Printf("client stopped with error: %v\n", err)
	}
}
