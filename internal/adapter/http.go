package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/MKhiriev/go-storefront/models"
)

const (
	usersPath    = "/api/users"
	productsPath = "/api/products"
	productPath  = "/api/products/{id}"
	versionPath  = "/api/version/"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// It normalises adapterCfg.HTTPAddress into a base URL, applies the request
// timeout and sends cookies from jar. A nil jar disables cookies.
//
// Returns [ErrInvalidAddress] if the address is empty or cannot be parsed.
func NewHTTPServerAdapter(adapterCfg config.Adapter, jar http.CookieJar, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClientWithJar(jar, adapterCfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchUsers implements [ServerAdapter].
func (h *httpServerAdapter) FetchUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := h.getJSON(ctx, usersPath, nil, &users); err != nil {
		h.logger.Err(err).Str("func", "*httpServerAdapter.FetchUsers").Msg("error fetching user directory")
		return nil, err
	}

	return users, nil
}

// FetchProducts implements [ServerAdapter].
func (h *httpServerAdapter) FetchProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := h.getJSON(ctx, productsPath, nil, &products); err != nil {
		h.logger.Err(err).Str("func", "*httpServerAdapter.FetchProducts").Msg("error fetching products")
		return nil, err
	}

	return products, nil
}

// FetchProduct implements [ServerAdapter].
func (h *httpServerAdapter) FetchProduct(ctx context.Context, id int64) (models.Product, error) {
	var product models.Product
	params := map[string]string{"id": strconv.FormatInt(id, 10)}
	if err := h.getJSON(ctx, productPath, params, &product); err != nil {
		h.logger.Err(err).Str("func", "*httpServerAdapter.FetchProduct").Int64("id", id).Msg("error fetching product")
		return models.Product{}, err
	}

	return product, nil
}

// Version implements [ServerAdapter].
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) getJSON(ctx context.Context, path string, pathParams map[string]string, dst any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetPathParams(pathParams).
		Get(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), dst); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}

	return nil
}
