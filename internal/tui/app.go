package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-storefront/internal/guard"
	"github.com/MKhiriev/go-storefront/models"
)

// inputCapturer is implemented by pages whose keystrokes go to text inputs,
// which disables global single-key shortcuts.
type inputCapturer interface {
	capturesInput() bool
}

// RootModel is the TUI router:
// 1) keeps the active page
// 2) handles global ctrl+c quit and the build info window
// 3) passes every NavigateTo through the route guard
// 4) delegates all other messages to the active page
type RootModel struct {
	ctx   context.Context
	guard *guard.Guard

	pages   map[string]tea.Model
	path    string
	current tea.Model
	notice  string

	storeName     string
	buildInfo     models.AppBuildInfo
	showBuildInfo bool
}

// NewRootModel registers pages and opens startPath without consulting the
// guard; callers start on the landing path.
func NewRootModel(ctx context.Context, g *guard.Guard, pages map[string]tea.Model, startPath, storeName string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		ctx:       ctx,
		guard:     g,
		pages:     pages,
		path:      startPath,
		current:   pages[startPath],
		storeName: storeName,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			return r, tea.Quit
		case key.Matches(keyMsg, keys.version) && !r.capturesInput():
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	if nav, ok := msg.(NavigateTo); ok {
		return r.navigate(nav)
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	r.pages[r.path] = updated
	return r, cmd
}

// navigate opens nav.Path when the guard allows it and the guard's
// redirect target otherwise. A denied navigation drops its payload.
func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	target := nav.Path
	payload := nav.Payload
	r.notice = ""

	if decision := r.guard.Check(r.ctx, nav.Path); !decision.Allowed {
		target = decision.RedirectTo
		payload = nil
		r.notice = "Sign in to open " + nav.Path
	}

	next, exists := r.pages[target]
	if !exists {
		r.notice = "Page not found: " + target
		return r, nil
	}

	r.showBuildInfo = false
	r.path = target
	r.current = next

	cmds := []tea.Cmd{r.current.Init()}
	if payload != nil {
		cmds = append(cmds, func() tea.Msg { return payload })
	}
	return r, tea.Batch(cmds...)
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.storeName, r.buildInfo)
	}
	if r.current == nil {
		return renderPage(valueOrDash(r.storeName), "", "")
	}
	if r.notice != "" {
		return noticeStyle.Render("! "+r.notice) + "\n\n" + r.current.View()
	}
	return r.current.View()
}

// Path returns the path of the active page.
func (r RootModel) Path() string {
	return r.path
}

func (r RootModel) capturesInput() bool {
	c, ok := r.current.(inputCapturer)
	return ok && c.capturesInput()
}
