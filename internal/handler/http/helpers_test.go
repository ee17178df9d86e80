package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/mock"
	"github.com/MKhiriev/go-storefront/internal/service"
)

type testDeps struct {
	handler   *Handler
	directory *mock.MockDirectoryService
	catalog   *mock.MockCatalogService
	appInfo   *mock.MockAppInfoService
}

func testServerConfig() *config.ServerConfig {
	return &config.ServerConfig{
		App:     config.App{StoreName: "Test Shop", Version: "1.2.3"},
		Session: config.Session{LandingPath: "/"},
	}
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := &testDeps{
		directory: mock.NewMockDirectoryService(ctrl),
		catalog:   mock.NewMockCatalogService(ctrl),
		appInfo:   mock.NewMockAppInfoService(ctrl),
	}
	d.handler = NewHandler(&service.Services{
		DirectoryService: d.directory,
		CatalogService:   d.catalog,
		AppInfoService:   d.appInfo,
	}, testServerConfig(), logger.Nop())
	return d
}

// newTestHandler returns a Handler without services, for middleware tests.
func newTestHandler() *Handler {
	return NewHandler(&service.Services{}, testServerConfig(), logger.Nop())
}

// requestWithLogger attaches a logger writing to buf, the way withTraceID does.
func requestWithLogger(method, target string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}
