package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-storefront/internal/guard"
	"github.com/MKhiriev/go-storefront/models"
)

// ── Render ──

func TestRender_PrerenderSkipsSessionCheck(t *testing.T) {
	d := newRootDeps(t)
	d.auth.EXPECT().CheckAuth(gomock.Any()).Times(0)
	d.catalog.EXPECT().FetchProducts(gomock.Any()).Return([]models.Product{{ID: 1, Name: "Merlot"}}, nil)

	out := d.ui.Render(guard.WithPrerender(context.Background()), PathProducts)

	assert.Contains(t, out, "PRODUCTS")
	assert.Contains(t, out, "Merlot")
}

func TestRender_ClientContextRedirectsSignedOutUser(t *testing.T) {
	d := newRootDeps(t)
	d.auth.EXPECT().CheckAuth(gomock.Any()).Return(false)
	d.catalog.EXPECT().FetchProducts(gomock.Any()).Times(0)

	out := d.ui.Render(context.Background(), PathProducts)

	assert.Contains(t, out, "Sign in to browse the catalog.")
	assert.NotContains(t, out, "PRODUCTS")
}

func TestRender_ProductDetailWithID(t *testing.T) {
	d := newRootDeps(t)
	d.catalog.EXPECT().FetchProduct(gomock.Any(), int64(5)).Return(models.Product{ID: 5, Name: "Tokaji"}, nil)

	out := d.ui.Render(guard.WithPrerender(context.Background()), "/products/detail?id=5")

	assert.Contains(t, out, "Tokaji")
}

func TestRender_CustomLandingPath(t *testing.T) {
	d := newRootDepsWithLanding(t, "/welcome")
	d.auth.EXPECT().CheckAuth(gomock.Any()).Return(false)
	d.catalog.EXPECT().FetchProducts(gomock.Any()).Times(0)

	redirected := d.ui.Render(context.Background(), PathProducts)
	assert.Contains(t, redirected, "Sign in to browse the catalog.")
	assert.NotContains(t, redirected, "NOT FOUND")

	landing := d.ui.Render(guard.WithPrerender(context.Background()), "")
	assert.Contains(t, landing, "Sign in to browse the catalog.")
	assert.Equal(t, "/welcome", d.ui.LandingPath())
}

func TestRender_UnknownPath(t *testing.T) {
	d := newRootDeps(t)

	out := d.ui.Render(guard.WithPrerender(context.Background()), "/basket")

	assert.Contains(t, out, "No page at /basket")
}

func TestSplitRenderPath(t *testing.T) {
	tests := []struct {
		raw    string
		path   string
		wantID int64
	}{
		{raw: "/", path: "/"},
		{raw: "/products", path: "/products"},
		{raw: "/products/detail?id=12", path: "/products/detail", wantID: 12},
		{raw: "/products/detail?id=abc", path: "/products/detail"},
		{raw: "/account?x=1", path: "/account"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			path, id := splitRenderPath(tt.raw)
			assert.Equal(t, tt.path, path)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

// ── view helpers ──

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "a very...", fitText("a very long name", 9))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "same", fitText("same", 0))
}

func TestValueOrDash(t *testing.T) {
	assert.Equal(t, "-", valueOrDash(""))
	assert.Equal(t, "-", valueOrDash("   "))
	assert.Equal(t, "x", valueOrDash("x"))
}
