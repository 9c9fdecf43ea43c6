package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/svp-client/internal/config"
	"github.com/MKhiriev/svp-client/internal/logger"
	"github.com/MKhiriev/svp-client/internal/utils"
	"github.com/MKhiriev/svp-client/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// AuthHeader carries the session token on every authenticated request.
const AuthHeader = "X-Auth-Key"

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.ServerURL and
// configures the underlying HTTP client with the resolved base URL, request
// timeout and TLS trust settings.
//
// Returns an error wrapping [ErrInvalidAddress] if the URL is empty or cannot
// be parsed.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient().
		WithTimeout(adapterCfg.RequestTimeout).
		WithTLS(adapterCfg.CACertPath, adapterCfg.InsecureSkipVerify)
	client.SetBaseURL(baseURL)

	return &httpServerAdapter{client: client, logger: log.WithComponent("adapter")}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
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

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST auth/login and decodes {token, uuid}. The service does not label its
// responses with a content type, so the body is decoded explicitly.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/auth/login")
	if err != nil {
		return models.LoginResponse{}, unavailable("login request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().Int("status", resp.StatusCode()).Str("username", creds.Username).Msg("login rejected")
		return models.LoginResponse{}, err
	}

	var out models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.LoginResponse{}, fmt.Errorf("decode login response: %w", err)
	}
	if out.Token == "" || out.UserID == "" {
		return models.LoginResponse{}, fmt.Errorf("decode login response: missing token or uuid")
	}

	h.SetToken(out.Token)
	h.logger.Debug().Str("user_id", out.UserID).Msg("logged in")
	return out, nil
}

// Signup implements [ServerAdapter]. It POSTs the new account to
// POST auth/signup; the service answers with a plain-text acknowledgement.
func (h *httpServerAdapter) Signup(ctx context.Context, req models.SignupRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/auth/signup")
	if err != nil {
		return unavailable("signup request", err)
	}

	h.logger.Debug().Int("status", resp.StatusCode()).Str("username", req.Username).Msg("signup answered")
	return mapHTTPError(resp)
}

// Logout implements [ServerAdapter]. It POSTs to
// POST auth/logout/{uid}/{token}. The local token is cleared whatever the
// outcome.
func (h *httpServerAdapter) Logout(ctx context.Context, userID string) error {
	token := h.Token()
	h.SetToken("")

	if err := validateIDs(userID); err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"uid": userID, "token": token}).
		Post("/auth/logout/{uid}/{token}")
	if err != nil {
		return unavailable("logout request", err)
	}

	return mapHTTPError(resp)
}

// GetUser implements [ServerAdapter]. GET users/{uid}.
func (h *httpServerAdapter) GetUser(ctx context.Context, userID string) (models.User, error) {
	var user models.User
	if err := h.getJSON(ctx, "get user", "/users/{uid}", pathParams(userID), &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// DeleteUser implements [ServerAdapter]. DELETE users/{uid}.
func (h *httpServerAdapter) DeleteUser(ctx context.Context, userID string) error {
	return h.send(ctx, "delete user", resty.MethodDelete, "/users/{uid}", pathParams(userID), nil)
}

// GetPet implements [ServerAdapter]. GET users/{uid}/pets/{pid}.
func (h *httpServerAdapter) GetPet(ctx context.Context, userID, petID string) (models.Pet, error) {
	var pet models.Pet
	if err := h.getJSON(ctx, "get pet", "/users/{uid}/pets/{pid}", pathParams(userID, "pid", petID), &pet); err != nil {
		return models.Pet{}, err
	}
	return pet, nil
}

// CreatePet implements [ServerAdapter]. POST users/{uid}/pets/new, decoding
// the created pet document.
func (h *httpServerAdapter) CreatePet(ctx context.Context, userID string, req models.NewPetRequest) (models.Pet, error) {
	var pet models.Pet
	if err := h.postJSON(ctx, "create pet", "/users/{uid}/pets/new", pathParams(userID), req, &pet); err != nil {
		return models.Pet{}, err
	}
	if pet.PetID == "" {
		return models.Pet{}, fmt.Errorf("decode create pet response: missing uuid")
	}
	return pet, nil
}

// UpdatePet implements [ServerAdapter]. PATCH users/{uid}/pets/{pid}.
func (h *httpServerAdapter) UpdatePet(ctx context.Context, userID, petID string, upd models.PetUpdate) error {
	return h.send(ctx, "update pet", resty.MethodPatch, "/users/{uid}/pets/{pid}", pathParams(userID, "pid", petID), upd)
}

// DeletePet implements [ServerAdapter]. DELETE users/{uid}/pets/{pid}.
func (h *httpServerAdapter) DeletePet(ctx context.Context, userID, petID string) error {
	return h.send(ctx, "delete pet", resty.MethodDelete, "/users/{uid}/pets/{pid}", pathParams(userID, "pid", petID), nil)
}

// FeedPet implements [ServerAdapter]. POST users/{uid}/pets/{pid}/feed.
func (h *httpServerAdapter) FeedPet(ctx context.Context, userID, petID string) error {
	return h.send(ctx, "feed pet", resty.MethodPost, "/users/{uid}/pets/{pid}/feed", pathParams(userID, "pid", petID), nil)
}

// GetYard implements [ServerAdapter]. GET users/{uid}/pet_yards/{yid}.
func (h *httpServerAdapter) GetYard(ctx context.Context, userID, yardID string) (models.Yard, error) {
	var yard models.Yard
	if err := h.getJSON(ctx, "get yard", "/users/{uid}/pet_yards/{yid}", pathParams(userID, "yid", yardID), &yard); err != nil {
		return models.Yard{}, err
	}
	return yard, nil
}

// CreateYard implements [ServerAdapter]. POST users/{uid}/pet_yards/new.
func (h *httpServerAdapter) CreateYard(ctx context.Context, userID string, req models.NewYardRequest) (models.Yard, error) {
	var yard models.Yard
	if err := h.postJSON(ctx, "create yard", "/users/{uid}/pet_yards/new", pathParams(userID), req, &yard); err != nil {
		return models.Yard{}, err
	}
	return yard, nil
}

// UpdateYard implements [ServerAdapter]. PATCH users/{uid}/pet_yards/{yid}.
func (h *httpServerAdapter) UpdateYard(ctx context.Context, userID, yardID string, upd models.YardUpdate) error {
	return h.send(ctx, "update yard", resty.MethodPatch, "/users/{uid}/pet_yards/{yid}", pathParams(userID, "yid", yardID), upd)
}

// DeleteYard implements [ServerAdapter]. DELETE users/{uid}/pet_yards/{yid}.
func (h *httpServerAdapter) DeleteYard(ctx context.Context, userID, yardID string) error {
	return h.send(ctx, "delete yard", resty.MethodDelete, "/users/{uid}/pet_yards/{yid}", pathParams(userID, "yid", yardID), nil)
}

// AddPetToYard implements [ServerAdapter].
// PATCH users/{uid}/pet_yards/{yid}/pet/{pid}.
func (h *httpServerAdapter) AddPetToYard(ctx context.Context, userID, yardID, petID string) error {
	return h.send(ctx, "add pet to yard", resty.MethodPatch, "/users/{uid}/pet_yards/{yid}/pet/{pid}",
		pathParams(userID, "yid", yardID, "pid", petID), nil)
}

// RemovePetFromYard implements [ServerAdapter].
// DELETE users/{uid}/pet_yards/{yid}/pet/{pid}.
func (h *httpServerAdapter) RemovePetFromYard(ctx context.Context, userID, yardID, petID string) error {
	return h.send(ctx, "remove pet from yard", resty.MethodDelete, "/users/{uid}/pet_yards/{yid}/pet/{pid}",
		pathParams(userID, "yid", yardID, "pid", petID), nil)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context, params map[string]string) *resty.Request {
	req := h.client.R().SetContext(ctx).SetPathParams(params)
	if token := h.Token(); token != "" {
		req.SetHeader(AuthHeader, token)
	}
	return req
}

// send issues an authenticated request whose response body is not needed.
func (h *httpServerAdapter) send(ctx context.Context, op, method, path string, params map[string]string, body any) error {
	_, err := h.do(ctx, op, method, path, params, body)
	return err
}

func (h *httpServerAdapter) getJSON(ctx context.Context, op, path string, params map[string]string, out any) error {
	raw, err := h.do(ctx, op, resty.MethodGet, path, params, nil)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s response: %w", op, err)
	}
	return nil
}

func (h *httpServerAdapter) postJSON(ctx context.Context, op, path string, params map[string]string, body, out any) error {
	raw, err := h.do(ctx, op, resty.MethodPost, path, params, body)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s response: %w", op, err)
	}
	return nil
}

func (h *httpServerAdapter) do(ctx context.Context, op, method, path string, params map[string]string, body any) ([]byte, error) {
	ids := make([]string, 0, len(params))
	for _, id := range params {
		ids = append(ids, id)
	}
	if err := validateIDs(ids...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	req := h.authedRequest(ctx, params)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Error().Err(err).Str("op", op).Msg("request failed")
		return nil, unavailable(op+" request", err)
	}

	h.logger.Debug().Str("op", op).Str("method", method).Int("status", resp.StatusCode()).Msg("request done")
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

// pathParams builds the resty path parameters; the user id is always "uid",
// further ids are given as name/value pairs.
func pathParams(userID string, pairs ...string) map[string]string {
	params := map[string]string{"uid": userID}
	for i := 0; i+1 < len(pairs); i += 2 {
		params[pairs[i]] = pairs[i+1]
	}
	return params
}

func validateIDs(ids ...string) error {
	for _, id := range ids {
		if err := uuid.Validate(id); err != nil {
			return fmt.Errorf("%w %q: %w", ErrInvalidID, id, err)
		}
	}
	return nil
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrServerUnavailable, err)
}
