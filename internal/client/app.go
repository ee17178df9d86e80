package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-storefront/internal/adapter"
	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/guard"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/session"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/internal/tui"
	"github.com/MKhiriev/go-storefront/models"
)

// App is the storefront client.
type App struct {
	storages *store.ClientStorages
	session  *session.Store
	ui       *tui.TUI
	out      io.Writer
	logger   *logger.Logger
}

// NewApp opens the client storages and wires the session store, the guard
// and the UI on top of them. The caller must Close the returned App.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	logger.Info().Msg("creating client app...")

	storages, err := store.NewClientStorages(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, storages.Jar, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	landingPath := cfg.Session.LandingPath
	if landingPath == "" {
		landingPath = config.DefaultLandingPath
	}

	sessionStore := session.NewStore(serverAdapter, storages.Durable, storages.Cookie, logger)
	routeGuard := guard.New(sessionStore, landingPath, logger)
	ui := tui.New(sessionStore, routeGuard, serverAdapter, cfg.App.StoreName, buildInfo, logger)

	return &App{
		storages: storages,
		session:  sessionStore,
		ui:       ui,
		out:      os.Stdout,
		logger:   logger,
	}, nil
}

// Run restores the session from the client caches once and then runs the
// interactive UI until the user quits.
func (a *App) Run(ctx context.Context) error {
	if a.session.CheckAuth(ctx) {
		user, _ := a.session.CurrentUser()
		a.logger.Info().Int64("user_id", user.ID).Msg("session restored")
	} else {
		a.logger.Info().Msg("no stored session")
	}

	return a.ui.Run(ctx)
}

// Render prints the page at path without the interactive UI. An empty path
// renders the landing page. It runs as a pre-render pass, so the client
// caches are never read.
func (a *App) Render(ctx context.Context, path string) error {
	out := a.ui.Render(guard.WithPrerender(ctx), path)
	if _, err := fmt.Fprintln(a.out, out); err != nil {
		a.logger.Err(err).Str("func", "*App.Render").Msg("error writing rendered page")
		return err
	}

	return nil
}

// Close releases the client storages.
func (a *App) Close() error {
	if a.storages == nil {
		return nil
	}
	return a.storages.Close()
}
