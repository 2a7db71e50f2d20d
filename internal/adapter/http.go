package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter returns a REST [ServerAdapter] for cfg.ServerAddress.
// A missing scheme defaults to http.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
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

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register creates the account and keeps the returned session token.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/register", req)
}

// Login opens a session and keeps the returned token.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/login", req)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.AuthResponse, error) {
	var out models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	token := out.Token
	if header := resp.Header().Get("Authorization"); header != "" {
		if bearer, parseErr := utils.ParseBearerToken(header); parseErr == nil {
			token = bearer
		}
	}
	if token == "" {
		return models.AuthResponse{}, fmt.Errorf("%s: server returned no token", path)
	}

	h.SetToken(token)
	out.Token = token
	return out, nil
}

func (h *httpServerAdapter) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	resp, err := h.authedRequest(ctx).SetBody(req).Post("/api/auth/change-password")
	if err != nil {
		return fmt.Errorf("change password request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListItems(ctx context.Context, filter models.VaultFilter) ([]models.VaultItem, error) {
	req := h.authedRequest(ctx)
	if filter.CategoryID != nil {
		req.SetQueryParam("categoryId", strconv.FormatInt(*filter.CategoryID, 10))
	}
	if filter.FavoriteOnly {
		req.SetQueryParam("isFavorite", "true")
	}

	var out models.VaultListResponse
	if err := do(req.SetResult(&out), resty.MethodGet, "/api/vault"); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (h *httpServerAdapter) GetItem(ctx context.Context, itemID int64) (models.VaultItem, error) {
	var out models.VaultItem
	err := do(h.authedRequest(ctx).SetResult(&out), resty.MethodGet, itemPath(itemID))
	return out, err
}

func (h *httpServerAdapter) CreateItem(ctx context.Context, req models.VaultItemRequest) (models.VaultItem, error) {
	var out models.VaultItem
	err := do(h.authedRequest(ctx).SetBody(req).SetResult(&out), resty.MethodPost, "/api/vault")
	return out, err
}

func (h *httpServerAdapter) UpdateItem(ctx context.Context, itemID int64, req models.VaultItemRequest) (models.VaultItem, error) {
	var out models.VaultItem
	err := do(h.authedRequest(ctx).SetBody(req).SetResult(&out), resty.MethodPut, itemPath(itemID))
	return out, err
}

func (h *httpServerAdapter) DeleteItem(ctx context.Context, itemID int64) error {
	return do(h.authedRequest(ctx), resty.MethodDelete, itemPath(itemID))
}

func (h *httpServerAdapter) ListCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	err := do(h.authedRequest(ctx).SetResult(&out), resty.MethodGet, "/api/categories")
	return out, err
}

func (h *httpServerAdapter) CreateCategory(ctx context.Context, req models.CategoryRequest) (models.Category, error) {
	var out models.Category
	err := do(h.authedRequest(ctx).SetBody(req).SetResult(&out), resty.MethodPost, "/api/categories")
	return out, err
}

func (h *httpServerAdapter) DeleteCategory(ctx context.Context, categoryID int64) error {
	return do(h.authedRequest(ctx), resty.MethodDelete, "/api/categories/"+strconv.FormatInt(categoryID, 10))
}

func (h *httpServerAdapter) ListActivity(ctx context.Context, limit int) ([]models.ActivityLog, error) {
	req := h.authedRequest(ctx)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	var out []models.ActivityLog
	err := do(req.SetResult(&out), resty.MethodGet, "/api/activity")
	return out, err
}

func (h *httpServerAdapter) SecurityReport(ctx context.Context) (models.SecurityReport, error) {
	var out models.SecurityReport
	err := do(h.authedRequest(ctx).SetResult(&out), resty.MethodGet, "/api/security")
	return out, err
}

func (h *httpServerAdapter) Generate(ctx context.Context, policy models.PasswordPolicy) (models.GeneratedPassword, error) {
	var out models.GeneratedPassword
	err := do(h.client.R().SetContext(ctx).SetBody(policy).SetResult(&out), resty.MethodPost, "/api/generator")
	return out, err
}

func (h *httpServerAdapter) Strength(ctx context.Context, password string) (models.StrengthAssessment, error) {
	var out models.StrengthAssessment
	err := do(h.client.R().SetContext(ctx).SetBody(models.StrengthRequest{Password: password}).SetResult(&out),
		resty.MethodPost, "/api/strength")
	return out, err
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionInfo, error) {
	var out models.VersionInfo
	err := do(h.client.R().SetContext(ctx).SetResult(&out), resty.MethodGet, "/api/version")
	return out, err
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// do executes req and maps a non-2xx status to an adapter error.
func do(req *resty.Request, method, path string) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	return mapHTTPError(resp)
}

func itemPath(itemID int64) string {
	return "/api/vault/" + strconv.FormatInt(itemID, 10)
}
