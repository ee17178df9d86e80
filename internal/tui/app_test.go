package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-storefront/internal/guard"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/mock"
	"github.com/MKhiriev/go-storefront/models"
)

type rootDeps struct {
	auth    *mock.MockAuthenticator
	catalog *mock.MockCatalogSource
	session *fakeSession
	ui      *TUI
}

func newRootDeps(t *testing.T) rootDeps {
	t.Helper()
	return newRootDepsWithLanding(t, PathHome)
}

func newRootDepsWithLanding(t *testing.T, landingPath string) rootDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	d := rootDeps{
		auth:    mock.NewMockAuthenticator(ctrl),
		catalog: mock.NewMockCatalogSource(ctrl),
		session: &fakeSession{},
	}
	g := guard.New(d.auth, landingPath, logger.Nop())
	d.ui = New(d.session, g, d.catalog, "go-storefront", models.NewAppBuildInfo("v1.0.0", "2026-01-01", "abc123"), logger.Nop())
	return d
}

func update(t *testing.T, m tea.Model, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	root, ok := next.(RootModel)
	require.True(t, ok)
	return root, cmd
}

// ── navigation ──

func TestRoot_StartsOnLandingPage(t *testing.T) {
	d := newRootDeps(t)
	d.auth.EXPECT().CheckAuth(gomock.Any()).Times(0)

	root := d.ui.NewRoot(context.Background())

	assert.Equal(t, PathHome, root.Path())
	assert.Contains(t, root.View(), "Sign in to browse the catalog.")
}

func TestRoot_DeniedNavigationLandsHomeWithNotice(t *testing.T) {
	d := newRootDeps(t)
	d.auth.EXPECT().CheckAuth(gomock.Any()).Return(false)
	d.catalog.EXPECT().FetchProducts(gomock.Any()).Times(0)

	root, cmd := update(t, d.ui.NewRoot(context.Background()), NavigateTo{Path: PathProducts})

	assert.Equal(t, PathHome, root.Path())
	assert.Contains(t, root.View(), "Sign in to open /products")
	for _, msg := range collectMsgs(cmd) {
		_, isLoaded := msg.(productsLoadedMsg)
		assert.False(t, isLoaded)
	}
}

func TestRoot_DeniedNavigationDropsPayload(t *testing.T) {
	d := newRootDeps(t)
	d.auth.EXPECT().CheckAuth(gomock.Any()).Return(false)

	_, cmd := update(t, d.ui.NewRoot(context.Background()), NavigateTo{Path: PathProductDetail, Payload: selectProductMsg{id: 3}})

	for _, msg := range collectMsgs(cmd) {
		_, isSelect := msg.(selectProductMsg)
		assert.False(t, isSelect)
	}
}

func TestRoot_AllowedNavigationOpensPage(t *testing.T) {
	d := newRootDeps(t)
	d.auth.EXPECT().CheckAuth(gomock.Any()).Return(true)
	d.catalog.EXPECT().FetchProducts(gomock.Any()).Return([]models.Product{{ID: 1, Name: "Merlot", Price: 9.5}}, nil)

	root, cmd := update(t, d.ui.NewRoot(context.Background()), NavigateTo{Path: PathProducts})
	require.Equal(t, PathProducts, root.Path())

	for _, msg := range collectMsgs(cmd) {
		root, _ = update(t, root, msg)
	}

	view := root.View()
	assert.Contains(t, view, "PRODUCTS")
	assert.Contains(t, view, "Merlot")
	assert.Contains(t, view, "9.50")
	assert.NotContains(t, view, "Sign in to open")
}

func TestRoot_AllowedNavigationDeliversPayload(t *testing.T) {
	d := newRootDeps(t)
	d.auth.EXPECT().CheckAuth(gomock.Any()).Return(true)

	_, cmd := update(t, d.ui.NewRoot(context.Background()), NavigateTo{Path: PathProductDetail, Payload: selectProductMsg{id: 3}})

	assert.Contains(t, collectMsgs(cmd), tea.Msg(selectProductMsg{id: 3}))
}

func TestRoot_LandingNavigationSkipsSessionCheck(t *testing.T) {
	d := newRootDeps(t)
	d.auth.EXPECT().CheckAuth(gomock.Any()).Times(0)

	root, _ := update(t, d.ui.NewRoot(context.Background()), NavigateTo{Path: PathHome})

	assert.Equal(t, PathHome, root.Path())
}

func TestRoot_UnknownPage(t *testing.T) {
	d := newRootDeps(t)
	d.auth.EXPECT().CheckAuth(gomock.Any()).Return(true)

	root, cmd := update(t, d.ui.NewRoot(context.Background()), NavigateTo{Path: "/nowhere"})

	assert.Nil(t, cmd)
	assert.Equal(t, PathHome, root.Path())
	assert.Contains(t, root.View(), "Page not found: /nowhere")
}

// ── global keys ──

func TestRoot_CtrlCQuits(t *testing.T) {
	d := newRootDeps(t)

	_, cmd := update(t, d.ui.NewRoot(context.Background()), tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestRoot_VersionWindowWhenSignedIn(t *testing.T) {
	d := newRootDeps(t)
	d.session.user = &models.User{ID: 1, Name: "Alice"}

	root, _ := update(t, d.ui.NewRoot(context.Background()), keyRunes("v"))
	view := root.View()
	assert.Contains(t, view, "ABOUT")
	assert.Contains(t, view, "v1.0.0")
	assert.Contains(t, view, "abc123")

	root, _ = update(t, root, keyEsc)
	assert.NotContains(t, root.View(), "ABOUT")
}

func TestRoot_VersionKeyTypesIntoLoginForm(t *testing.T) {
	d := newRootDeps(t)

	root, _ := update(t, d.ui.NewRoot(context.Background()), keyRunes("v"))

	assert.NotContains(t, root.View(), "ABOUT")
	home := root.current.(*HomeModel)
	assert.Equal(t, "v", home.form.inputs[0].Value())
}

// ── custom landing path ──

func TestRoot_CustomLandingPathServesHome(t *testing.T) {
	d := newRootDepsWithLanding(t, "/welcome")
	d.auth.EXPECT().CheckAuth(gomock.Any()).Return(false)

	root := d.ui.NewRoot(context.Background())
	require.Equal(t, "/welcome", root.Path())
	assert.Contains(t, root.View(), "Sign in to browse the catalog.")

	root, _ = update(t, root, NavigateTo{Path: PathProducts})

	assert.Equal(t, "/welcome", root.Path())
	view := root.View()
	assert.Contains(t, view, "Sign in to open /products")
	assert.Contains(t, view, "Sign in to browse the catalog.")
}

func TestRoot_CustomLandingPathIsTheEscTarget(t *testing.T) {
	d := newRootDepsWithLanding(t, "/welcome")
	d.session.user = &models.User{ID: 1, Name: "Alice"}
	d.auth.EXPECT().CheckAuth(gomock.Any()).Return(true).AnyTimes()

	root, _ := update(t, d.ui.NewRoot(context.Background()), NavigateTo{Path: PathAccount})
	require.Equal(t, PathAccount, root.Path())

	_, cmd := update(t, root, keyEsc)
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Path: "/welcome"}, cmd())

	_, cmd = update(t, root, keyRunes("l"))
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Path: "/welcome", Payload: loggedOutMsg{}}, cmd())
}
