package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-storefront/models"
)

// ProductsModel lists the catalog.
type ProductsModel struct {
	ctx      context.Context
	catalog  CatalogSource
	homePath string

	items   []models.Product
	idx     int
	loading bool
	err     error
}

// NewProductsModel creates the catalog page. esc returns to homePath.
func NewProductsModel(ctx context.Context, catalog CatalogSource, homePath string) *ProductsModel {
	return &ProductsModel{ctx: ctx, catalog: catalog, homePath: homePath}
}

// Init reloads the catalog every time the page opens.
func (m *ProductsModel) Init() tea.Cmd {
	return m.load()
}

func (m *ProductsModel) load() tea.Cmd {
	m.loading = true
	m.err = nil

	ctx := m.ctx
	catalog := m.catalog
	return func() tea.Msg {
		items, err := catalog.FetchProducts(ctx)
		return productsLoadedMsg{items: items, err: err}
	}
}

func (m *ProductsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case productsLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.items = msg.items
		if m.idx >= len(m.items) {
			m.idx = 0
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(m.homePath, nil)
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.items)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.enter):
			if product, ok := m.current(); ok {
				return m, navigate(PathProductDetail, selectProductMsg{id: product.ID})
			}
		}
	}

	return m, nil
}

func (m *ProductsModel) current() (models.Product, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Product{}, false
	}
	return m.items[m.idx], true
}

func (m *ProductsModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading...")
	case m.err != nil:
		b.WriteString(errorOverlayModel{message: humanizeError(m.err)}.View())
	case len(m.items) == 0:
		b.WriteString("No products")
	default:
		b.WriteString(fmt.Sprintf("  %-4s │ %-28s │ %-14s │ %10s\n", "ID", "Name", "Category", "Price"))
		b.WriteString("  ─────┼──────────────────────────────┼────────────────┼───────────\n")
		for i, item := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-4d │ %-28s │ %-14s │ %10s\n",
				cursor, item.ID, fitText(item.Name, 28), fitText(valueOrDash(item.Category), 14), formatPrice(item.Price)))
		}
	}

	return renderPage("PRODUCTS", strings.TrimRight(b.String(), "\n"), "enter: details │ ↑/↓: navigate │ esc: home")
}
