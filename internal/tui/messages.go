package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-storefront/models"
)

// Page paths. Every path except the landing path is guarded. The home page
// is served under the guard's landing path; PathHome is its default.
const (
	PathHome          = "/"
	PathProducts      = "/products"
	PathProductDetail = "/products/detail"
	PathAccount       = "/account"
)

// NavigateTo asks the root model to open the page at Path. Payload, when
// set, is delivered to the page after it opens.
type NavigateTo struct {
	Path    string
	Payload tea.Msg
}

type loginDoneMsg struct {
	username string
	err      error
}

type loggedOutMsg struct{}

type productsLoadedMsg struct {
	items []models.Product
	err   error
}

type selectProductMsg struct {
	id int64
}

type productLoadedMsg struct {
	product models.Product
	err     error
}

func navigate(path string, payload tea.Msg) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Path: path, Payload: payload} }
}
