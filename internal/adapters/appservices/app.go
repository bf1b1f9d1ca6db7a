package appservices

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/bnema/stitchutils/internal/domain"
	"github.com/bnema/stitchutils/internal/ports"
	"go.uber.org/zap"
)

const tokenKeyPrefix = "stitchutils/apps/"

type App struct {
	client  *Client
	id      string
	baseURL string

	mu       sync.Mutex
	hostname string
}

var _ ports.App = (*App)(nil)

func (a *App) ID() string { return a.id }

func (a *App) BaseURL() string { return a.baseURL }

type locationResponse struct {
	Hostname       string `json:"hostname"`
	Location       string `json:"location"`
	DeploymentMode string `json:"deployment_model"`
}

// location resolves the regional host serving the app, once per handle.
func (a *App) location(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.hostname != "" {
		return a.hostname, nil
	}

	data, err := a.client.do(ctx, request{
		method: http.MethodGet,
		url:    endpoint(a.baseURL, "app", a.id, "location"),
	})
	if err != nil {
		return "", err
	}

	var payload locationResponse
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", fmt.Errorf("%w: location: %v", ErrMalformedResponse, err)
	}

	hostname := payload.Hostname
	if hostname == "" {
		hostname = a.baseURL
	}
	if hostname, err = normalizeBaseURL(hostname); err != nil {
		return "", fmt.Errorf("%w: location hostname: %v", ErrMalformedResponse, err)
	}

	a.hostname = hostname
	return hostname, nil
}

type loginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
	DeviceID     string `json:"device_id"`
}

func (a *App) LogIn(ctx context.Context, credential domain.Credential) (ports.User, error) {
	if credential == nil {
		return nil, domain.ErrUnsupportedProvider
	}

	var login loginRequest
	if err := credential.Accept(&login); err != nil {
		return nil, err
	}

	hostname, err := a.location(ctx)
	if err != nil {
		return nil, err
	}

	data, err := a.client.do(ctx, request{
		method: http.MethodPost,
		url:    endpoint(hostname, "app", a.id, "auth", "providers", login.provider, "login"),
		body:   login.body,
	})
	if err != nil {
		return nil, err
	}

	var payload loginResponse
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: login: %v", ErrMalformedResponse, err)
	}
	if payload.UserID == "" || payload.AccessToken == "" {
		return nil, fmt.Errorf("%w: login response missing user id or access token", ErrMalformedResponse)
	}

	user := &User{
		app: a,
		tokens: storedTokens{
			UserID:       payload.UserID,
			AccessToken:  payload.AccessToken,
			RefreshToken: payload.RefreshToken,
			DeviceID:     payload.DeviceID,
			Hostname:     hostname,
		},
	}
	if err := user.save(ctx); err != nil {
		return nil, err
	}

	a.client.logger().Debug("logged in",
		zap.String("app_id", a.id),
		zap.String("provider", string(credential.Provider())),
		zap.String("user_id", payload.UserID),
	)
	return user, nil
}

// CurrentUser rebuilds the user from the token store. Unreadable entries
// are dropped and reported as no user.
func (a *App) CurrentUser(ctx context.Context) (ports.User, error) {
	raw, err := a.client.Tokens.Get(ctx, a.tokenKey())
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("read user tokens: %w", err)
	}

	tokens, err := decodeStoredTokens(raw)
	if err != nil {
		a.client.logger().Debug("dropping unreadable user tokens", zap.String("app_id", a.id), zap.Error(err))
		if removeErr := a.client.Tokens.Remove(ctx, a.tokenKey()); removeErr != nil {
			return nil, fmt.Errorf("remove user tokens: %w", removeErr)
		}
		return nil, nil
	}

	if tokens.Hostname != "" {
		a.mu.Lock()
		if a.hostname == "" {
			a.hostname = tokens.Hostname
		}
		a.mu.Unlock()
	}

	return &User{app: a, tokens: tokens}, nil
}

func (a *App) tokenKey() string {
	return tokenKeyPrefix + a.id + "/user"
}

// loginRequest maps a credential onto the provider route and body.
type loginRequest struct {
	provider string
	body     map[string]string
}

func (l *loginRequest) VisitAnonymous(domain.AnonymousCredential) error {
	l.provider = "anon-user"
	l.body = map[string]string{}
	return nil
}

func (l *loginRequest) VisitUsernamePassword(c domain.UsernamePasswordCredential) error {
	l.provider = "local-userpass"
	l.body = map[string]string{"username": c.Username, "password": c.Password}
	return nil
}

func (l *loginRequest) VisitAPIKey(c domain.APIKeyCredential) error {
	l.provider = "api-key"
	l.body = map[string]string{"key": c.Key}
	return nil
}
