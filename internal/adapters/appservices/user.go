package appservices

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/bnema/stitchutils/internal/ports"
	"go.uber.org/zap"
)

type storedTokens struct {
	UserID       string `json:"user_id"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	DeviceID     string `json:"device_id,omitempty"`
	Hostname     string `json:"hostname,omitempty"`
}

func decodeStoredTokens(raw string) (storedTokens, error) {
	var tokens storedTokens
	if err := json.Unmarshal([]byte(raw), &tokens); err != nil {
		return storedTokens{}, fmt.Errorf("decode user tokens: %w", err)
	}
	if tokens.UserID == "" {
		return storedTokens{}, errors.New("decode user tokens: user id is missing")
	}

	return tokens, nil
}

type User struct {
	app *App

	mu     sync.Mutex
	tokens storedTokens
}

var _ ports.User = (*User)(nil)

func (u *User) ID() string {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.tokens.UserID
}

func (u *User) AccessToken() string {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.tokens.AccessToken
}

// LogOut revokes the refresh token remotely and always forgets the local
// tokens. The remote error, if any, is returned.
func (u *User) LogOut(ctx context.Context) error {
	tokens := u.snapshot()

	var remoteErr error
	if tokens.RefreshToken != "" {
		_, remoteErr = u.app.client.do(ctx, request{
			method: http.MethodDelete,
			url:    endpoint(u.host(tokens), "auth", "session"),
			bearer: tokens.RefreshToken,
		})
	}

	u.mu.Lock()
	u.tokens.AccessToken = ""
	u.tokens.RefreshToken = ""
	u.mu.Unlock()

	if err := u.app.client.Tokens.Remove(ctx, u.app.tokenKey()); err != nil {
		return errors.Join(remoteErr, fmt.Errorf("remove user tokens: %w", err))
	}

	return remoteErr
}

type functionCall struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// CallFunction runs a server-side function. A JSON array is the argument
// list; any other value is passed as the single argument.
func (u *User) CallFunction(ctx context.Context, name string, args json.RawMessage) (json.RawMessage, error) {
	call := functionCall{Name: name, Arguments: argumentList(args)}

	result, err := u.callFunction(ctx, call)
	if err != nil && isUnauthorized(err) && u.snapshot().RefreshToken != "" {
		u.app.client.logger().Debug("access token rejected, refreshing", zap.String("user_id", u.ID()))
		if refreshErr := u.refreshAccessToken(ctx); refreshErr != nil {
			return nil, refreshErr
		}
		result, err = u.callFunction(ctx, call)
	}
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (u *User) callFunction(ctx context.Context, call functionCall) (json.RawMessage, error) {
	tokens := u.snapshot()

	data, err := u.app.client.do(ctx, request{
		method: http.MethodPost,
		url:    endpoint(u.host(tokens), "app", u.app.id, "functions", "call"),
		bearer: tokens.AccessToken,
		body:   call,
	})
	if err != nil {
		return nil, err
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return json.RawMessage("null"), nil
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: function result is not JSON", ErrMalformedResponse)
	}

	return json.RawMessage(data), nil
}

type refreshResponse struct {
	AccessToken string `json:"access_token"`
}

func (u *User) refreshAccessToken(ctx context.Context) error {
	tokens := u.snapshot()

	data, err := u.app.client.do(ctx, request{
		method: http.MethodPost,
		url:    endpoint(u.host(tokens), "auth", "session"),
		bearer: tokens.RefreshToken,
	})
	if err != nil {
		return err
	}

	var payload refreshResponse
	if err := json.Unmarshal(data, &payload); err != nil || payload.AccessToken == "" {
		return fmt.Errorf("%w: session refresh returned no access token", ErrMalformedResponse)
	}

	u.mu.Lock()
	u.tokens.AccessToken = payload.AccessToken
	u.mu.Unlock()

	return u.save(ctx)
}

func (u *User) save(ctx context.Context) error {
	payload, err := json.Marshal(u.snapshot())
	if err != nil {
		return fmt.Errorf("encode user tokens: %w", err)
	}

	if err := u.app.client.Tokens.Set(ctx, u.app.tokenKey(), string(payload)); err != nil {
		return fmt.Errorf("store user tokens: %w", err)
	}

	return nil
}

func (u *User) snapshot() storedTokens {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.tokens
}

func (u *User) host(tokens storedTokens) string {
	if tokens.Hostname != "" {
		return tokens.Hostname
	}
	return u.app.baseURL
}

// argumentList spreads a JSON array into the call arguments; any other value
// becomes the only argument.
func argumentList(args json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(args)
	if len(trimmed) == 0 {
		return json.RawMessage("[]")
	}
	if trimmed[0] == '[' {
		return json.RawMessage(trimmed)
	}

	list := make([]byte, 0, len(trimmed)+2)
	list = append(list, '[')
	list = append(list, trimmed...)
	list = append(list, ']')
	return json.RawMessage(list)
}
