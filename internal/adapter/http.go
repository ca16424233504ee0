package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/models"
	"github.com/go-resty/resty/v2"
)

type httpShopAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPShopAdapter constructs an HTTP/REST implementation of [ShopAdapter].
// It normalises and validates the base URL from cfg.HTTPAddress, configures
// the resty client with the resolved base URL and request timeout, and
// preloads cfg.Token when set.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPShopAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ShopAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetError(&models.ErrorResponse{})
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}

	a := &httpShopAdapter{client: client, logger: logger}
	a.SetToken(cfg.Token)

	return a, nil
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

// SetToken implements [ShopAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpShopAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ShopAdapter].
func (h *httpShopAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ShopAdapter]. It POSTs request to /register/.
func (h *httpShopAdapter) Register(ctx context.Context, request models.RegisterRequest) (models.RegisterResponse, error) {
	var result models.RegisterResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&result).
		Post("/register/")
	if err != nil {
		return models.RegisterResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisterResponse{}, err
	}

	return result, nil
}

// Login implements [ShopAdapter]. It POSTs request to /login/ and stores the
// returned token via SetToken.
func (h *httpShopAdapter) Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&result).
		Post("/login/")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}
	if result.Token == "" {
		return models.LoginResponse{}, fmt.Errorf("login response carries no token")
	}

	h.SetToken(result.Token)
	h.logger.Debug().Int64("user_id", result.UserID).Msg("logged in")
	return result, nil
}

func (h *httpShopAdapter) Home(ctx context.Context, name string) (models.MessageResponse, error) {
	var result models.MessageResponse

	req := h.authedRequest(ctx).SetResult(&result)
	if name != "" {
		req.SetQueryParam("name", name)
	}

	resp, err := req.Get("/")
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("home request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	return result, nil
}

func (h *httpShopAdapter) Profile(ctx context.Context) (models.User, error) {
	var result models.User

	resp, err := h.authedRequest(ctx).SetResult(&result).Get("/profile")
	if err != nil {
		return models.User{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return result, nil
}

func (h *httpShopAdapter) CreateProduct(ctx context.Context, request models.ProductRequest) (models.ProductResponse, error) {
	var result models.ProductResponse

	resp, err := h.authedRequest(ctx).
		SetBody(presentFields(request)).
		SetResult(&result).
		Post("/products/create")
	if err != nil {
		return models.ProductResponse{}, fmt.Errorf("create product request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProductResponse{}, err
	}

	return result, nil
}

func (h *httpShopAdapter) ListProducts(ctx context.Context) ([]models.Product, error) {
	var result []models.Product

	resp, err := h.authedRequest(ctx).SetResult(&result).Get("/products/list")
	if err != nil {
		return nil, fmt.Errorf("list products request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result, nil
}

func (h *httpShopAdapter) GetProduct(ctx context.Context, productID int64) (models.Product, error) {
	var result models.Product

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(productID, 10)).
		SetResult(&result).
		Get("/products/detail/{id}")
	if err != nil {
		return models.Product{}, fmt.Errorf("get product request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Product{}, err
	}

	return result, nil
}

func (h *httpShopAdapter) UpdateProduct(ctx context.Context, productID int64, request models.ProductRequest) (models.ProductResponse, error) {
	var result models.ProductResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(productID, 10)).
		SetBody(presentFields(request)).
		SetResult(&result).
		Put("/products/update/{id}")
	if err != nil {
		return models.ProductResponse{}, fmt.Errorf("update product request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProductResponse{}, err
	}

	return result, nil
}

func (h *httpShopAdapter) DeleteProduct(ctx context.Context, productID int64) (models.ProductResponse, error) {
	var result models.ProductResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(productID, 10)).
		SetResult(&result).
		Delete("/products/delete/{id}")
	if err != nil {
		return models.ProductResponse{}, fmt.Errorf("delete product request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProductResponse{}, err
	}

	return result, nil
}

func (h *httpShopAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// presentFields renders request with absent fields left out, so that a call
// never sends null for a field the caller did not set. product_img is sent as
// null only when ProductImgSet is true and ProductImg is nil.
func presentFields(request models.ProductRequest) map[string]any {
	body := make(map[string]any, 6)
	if request.Category != nil {
		body["category"] = *request.Category
	}
	if request.Title != nil {
		body["title"] = *request.Title
	}
	if request.Description != nil {
		body["description"] = *request.Description
	}
	if request.Price != nil {
		body["price"] = *request.Price
	}
	if request.Quantity != nil {
		body["quantity"] = *request.Quantity
	}
	if request.ProductImg != nil {
		body["product_img"] = *request.ProductImg
	} else if request.ProductImgSet {
		body["product_img"] = nil
	}
	return body
}
