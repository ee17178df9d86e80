package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-storefront/models"
)

// ProductDetailModel shows one product. The product to show arrives as a
// selectProductMsg payload of the navigation.
type ProductDetailModel struct {
	ctx     context.Context
	catalog CatalogSource

	product *models.Product
	loading bool
	err     error
}

// NewProductDetailModel creates the product page.
func NewProductDetailModel(ctx context.Context, catalog CatalogSource) *ProductDetailModel {
	return &ProductDetailModel{ctx: ctx, catalog: catalog}
}

func (m *ProductDetailModel) Init() tea.Cmd {
	return nil
}

func (m *ProductDetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case selectProductMsg:
		m.loading = true
		m.err = nil
		m.product = nil
		return m, m.cmdLoad(msg.id)
	case productLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			product := msg.product
			m.product = &product
		}
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, keys.esc) {
			return m, navigate(PathProducts, nil)
		}
	}

	return m, nil
}

func (m *ProductDetailModel) cmdLoad(id int64) tea.Cmd {
	ctx := m.ctx
	catalog := m.catalog

	return func() tea.Msg {
		product, err := catalog.FetchProduct(ctx, id)
		return productLoadedMsg{product: product, err: err}
	}
}

func (m *ProductDetailModel) View() string {
	var data string

	switch {
	case m.loading:
		data = "Loading..."
	case m.err != nil:
		data = errorOverlayModel{message: humanizeError(m.err)}.View()
	case m.product == nil:
		data = "No product selected"
	default:
		data = renderProduct(*m.product)
	}

	return renderPage("PRODUCT", data, "esc: back to products")
}

func renderProduct(p models.Product) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("ID:          %d\n", p.ID))
	b.WriteString(fmt.Sprintf("Name:        %s\n", valueOrDash(p.Name)))
	b.WriteString(fmt.Sprintf("Category:    %s\n", valueOrDash(p.Category)))
	b.WriteString(fmt.Sprintf("Price:       %s\n", formatPrice(p.Price)))
	if p.VolumeML > 0 {
		b.WriteString(fmt.Sprintf("Volume:      %d ml\n", p.VolumeML))
	} else {
		b.WriteString("Volume:      -\n")
	}
	b.WriteString(fmt.Sprintf("Strength:    %s\n", valueOrDash(p.Strength)))
	b.WriteString(fmt.Sprintf("Status:      %s\n", valueOrDash(p.Status)))
	b.WriteString(fmt.Sprintf("Added:       %s\n", valueOrDash(p.DateCreated)))
	if strings.TrimSpace(p.Description) != "" {
		b.WriteString("\n")
		b.WriteString(p.Description)
	}

	return strings.TrimRight(b.String(), "\n")
}
