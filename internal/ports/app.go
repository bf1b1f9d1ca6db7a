package ports

import (
	"context"
	"encoding/json"

	"github.com/bnema/stitchutils/internal/domain"
)

// AppFactory builds a backend application handle for an app id and base URL.
type AppFactory interface {
	NewApp(appID string, baseURL string) (App, error)
}

type App interface {
	ID() string
	BaseURL() string
	LogIn(ctx context.Context, credential domain.Credential) (User, error)
	// CurrentUser returns nil without an error when no user is logged in.
	CurrentUser(ctx context.Context) (User, error)
}

type User interface {
	ID() string
	AccessToken() string
	LogOut(ctx context.Context) error
	CallFunction(ctx context.Context, name string, args json.RawMessage) (json.RawMessage, error)
}
