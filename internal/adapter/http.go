package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-customer-portal/internal/logger"
	"github.com/MKhiriev/go-customer-portal/internal/utils"
	"github.com/MKhiriev/go-customer-portal/models"
	"github.com/go-resty/resty/v2"
)

const hashHeader = "HashSHA256"

type httpPortalAdapter struct {
	client *utils.HTTPClient

	// hashKey signs request bodies with the HashSHA256 header when set.
	hashKey string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPPortalAdapter builds a [PortalAdapter] for the portal listening at
// address. A bare host:port gets the http scheme. hashKey must match the
// server's APP_HASH_KEY when the integrity check is enabled; leave it empty
// otherwise.
func NewHTTPPortalAdapter(address string, timeout time.Duration, hashKey string, logger *logger.Logger) (PortalAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid portal address: %w", err)
	}

	return &httpPortalAdapter{
		client:  utils.NewHTTPClient(baseURL, timeout),
		hashKey: hashKey,
		logger:  logger,
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

func (h *httpPortalAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpPortalAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpPortalAdapter) Login(ctx context.Context, credentials models.Credentials) (models.CustomerProfile, error) {
	var result models.LoginResponse

	req, err := h.jsonRequest(ctx, credentials)
	if err != nil {
		return models.CustomerProfile{}, err
	}
	resp, err := req.SetResult(&result).Post("/customer/login")
	if err != nil {
		return models.CustomerProfile{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CustomerProfile{}, err
	}

	h.SetToken(result.Token)
	h.logger.Debug().Str("email", credentials.Email).Msg("logged in")
	return result.Customer, nil
}

func (h *httpPortalAdapter) Register(ctx context.Context, request models.RegisterRequest) (models.Customer, error) {
	var result models.RegisterResponse

	req, err := h.jsonRequest(ctx, request)
	if err != nil {
		return models.Customer{}, err
	}
	resp, err := req.SetResult(&result).Post("/customer/register")
	if err != nil {
		return models.Customer{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Customer{}, err
	}

	return result.Customer, nil
}

func (h *httpPortalAdapter) GetProfile(ctx context.Context) (models.CustomerProfile, error) {
	var profile models.CustomerProfile

	req, err := h.authedRequest(ctx)
	if err != nil {
		return profile, err
	}
	resp, err := req.SetResult(&profile).Get("/customer/getInfo")
	if err != nil {
		return models.CustomerProfile{}, fmt.Errorf("get profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CustomerProfile{}, err
	}

	return profile, nil
}

func (h *httpPortalAdapter) ListPackages(ctx context.Context) ([]models.Package, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := req.Get("/customer/getPackages")
	if err != nil {
		return nil, fmt.Errorf("list packages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	// 202 carries {"message": ...} instead of an array
	if resp.StatusCode() == http.StatusAccepted {
		return []models.Package{}, nil
	}

	var packages []models.Package
	if err = json.Unmarshal(resp.Body(), &packages); err != nil {
		return nil, fmt.Errorf("decode packages response: %w", err)
	}
	return packages, nil
}

func (h *httpPortalAdapter) UpdatePassword(ctx context.Context, change models.PasswordChange) error {
	req, err := h.authedJSONRequest(ctx, change)
	if err != nil {
		return err
	}
	resp, err := req.Put("/customer/updatePassword")
	if err != nil {
		return fmt.Errorf("update password request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpPortalAdapter) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.CustomerProfile, error) {
	var result models.UpdateProfileResponse

	req, err := h.authedJSONRequest(ctx, update)
	if err != nil {
		return models.CustomerProfile{}, err
	}
	resp, err := req.SetResult(&result).Put("/customer/updateProfile")
	if err != nil {
		return models.CustomerProfile{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CustomerProfile{}, err
	}

	return result.Customer, nil
}

func (h *httpPortalAdapter) DeleteAccount(ctx context.Context) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}
	resp, err := req.Delete("/customer/deleteProfile")
	if err != nil {
		return fmt.Errorf("delete account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpPortalAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// jsonRequest marshals body up front so the integrity hash covers exactly
// the bytes that are sent.
func (h *httpPortalAdapter) jsonRequest(ctx context.Context, body any) (*resty.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)
	if h.hashKey != "" {
		req.SetHeader(hashHeader, utils.HashString(string(payload), h.hashKey))
	}
	return req, nil
}

func (h *httpPortalAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNotAuthenticated
	}
	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}

func (h *httpPortalAdapter) authedJSONRequest(ctx context.Context, body any) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNotAuthenticated
	}
	req, err := h.jsonRequest(ctx, body)
	if err != nil {
		return nil, err
	}
	return req.SetAuthToken(token), nil
}
