// Package tui implements the terminal storefront.
//
// Pages are keyed by path. Every navigation between them goes through the
// route guard, so a signed-out user who asks for a protected page lands on
// the home page with a notice instead.
package tui

import (
	"context"
	"net/url"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-storefront/internal/guard"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/models"
)

// TUI owns the page set and runs it either interactively or as a one-shot
// render.
type TUI struct {
	session   SessionManager
	guard     *guard.Guard
	catalog   CatalogSource
	storeName string
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New creates the terminal UI.
func New(session SessionManager, g *guard.Guard, catalog CatalogSource, storeName string, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		session:   session,
		guard:     g,
		catalog:   catalog,
		storeName: storeName,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// LandingPath returns the path of the home page, the guard's public path.
func (t *TUI) LandingPath() string {
	if landing := t.guard.LandingPath(); landing != "" {
		return landing
	}
	return PathHome
}

func (t *TUI) newPages(ctx context.Context) map[string]tea.Model {
	home := t.LandingPath()

	return map[string]tea.Model{
		home:              NewHomeModel(ctx, t.session, t.storeName),
		PathProducts:      NewProductsModel(ctx, t.catalog, home),
		PathProductDetail: NewProductDetailModel(ctx, t.catalog),
		PathAccount:       NewAccountModel(ctx, t.session, home),
	}
}

// NewRoot builds the root model opened on the landing path.
func (t *TUI) NewRoot(ctx context.Context) RootModel {
	return NewRootModel(ctx, t.guard, t.newPages(ctx), t.LandingPath(), t.storeName, t.buildInfo)
}

// Run starts the interactive UI and blocks until the user quits or ctx is
// cancelled.
func (t *TUI) Run(ctx context.Context) error {
	t.logger.Info().Msg("starting terminal UI")

	if _, err := tea.NewProgram(t.NewRoot(ctx), tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("terminal UI stopped with error")
		return err
	}

	t.logger.Info().Msg("terminal UI stopped")
	return nil
}

// loader is implemented by pages that fetch data when they open.
type loader interface {
	load() tea.Cmd
}

// Render produces the text of the page at rawPath without starting the
// interactive program. rawPath may carry an "id" query parameter selecting
// the product on the product page; an empty rawPath renders the landing
// page. The guard decides which page is rendered, exactly as for an
// interactive navigation.
func (t *TUI) Render(ctx context.Context, rawPath string) string {
	if rawPath == "" {
		rawPath = t.LandingPath()
	}
	path, productID := splitRenderPath(rawPath)

	decision := t.guard.Check(ctx, path)
	if !decision.Allowed {
		path = decision.RedirectTo
		productID = 0
	}

	pages := t.newPages(ctx)
	page, ok := pages[path]
	if !ok {
		return renderPage("NOT FOUND", "No page at "+path, "")
	}

	if l, ok := page.(loader); ok {
		page = feed(page, l.load())
	}
	if path == PathProductDetail && productID > 0 {
		page = feed(page, func() tea.Msg { return selectProductMsg{id: productID} })
	}

	return page.View()
}

// feed runs cmd, hands its message to m and does the same once more for
// the command m answers with.
func feed(m tea.Model, cmd tea.Cmd) tea.Model {
	for range 2 {
		if cmd == nil {
			return m
		}
		msg := cmd()
		if msg == nil {
			return m
		}
		m, cmd = m.Update(msg)
	}
	return m
}

func splitRenderPath(rawPath string) (string, int64) {
	u, err := url.Parse(rawPath)
	if err != nil || u.Path == "" {
		return rawPath, 0
	}

	id, err := strconv.ParseInt(u.Query().Get("id"), 10, 64)
	if err != nil {
		return u.Path, 0
	}
	return u.Path, id
}
