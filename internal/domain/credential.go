package domain

import (
	"fmt"
	"strings"
)

type Provider string

const (
	ProviderAnonymous        Provider = "anonymous"
	ProviderUsernamePassword Provider = "username/password"
	ProviderAPIKey           Provider = "apikey"
)

// Providers lists the selectable providers in display order.
var Providers = []Provider{ProviderUsernamePassword, ProviderAnonymous, ProviderAPIKey}

func ParseProvider(raw string) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "anonymous", "anon", "anon-user":
		return ProviderAnonymous, nil
	case "username/password", "userpass", "local-userpass", "email/password":
		return ProviderUsernamePassword, nil
	case "apikey", "api-key", "api key", "api_key":
		return ProviderAPIKey, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnsupportedProvider, raw)
	}
}

// Credential is a closed union; the unexported marker keeps other packages
// from adding variants that no CredentialVisitor knows about.
type Credential interface {
	Provider() Provider
	Validate() error
	Accept(v CredentialVisitor) error
	isCredential()
}

// CredentialVisitor must handle every credential variant.
type CredentialVisitor interface {
	VisitAnonymous(c AnonymousCredential) error
	VisitUsernamePassword(c UsernamePasswordCredential) error
	VisitAPIKey(c APIKeyCredential) error
}

type AnonymousCredential struct{}

func (AnonymousCredential) Provider() Provider { return ProviderAnonymous }

func (AnonymousCredential) Validate() error { return nil }

func (c AnonymousCredential) Accept(v CredentialVisitor) error { return v.VisitAnonymous(c) }

func (AnonymousCredential) isCredential() {}

type UsernamePasswordCredential struct {
	Username string
	Password string
}

func (UsernamePasswordCredential) Provider() Provider { return ProviderUsernamePassword }

func (c UsernamePasswordCredential) Validate() error {
	if strings.TrimSpace(c.Username) == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidCredential)
	}
	if c.Password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidCredential)
	}

	return nil
}

func (c UsernamePasswordCredential) Accept(v CredentialVisitor) error {
	return v.VisitUsernamePassword(c)
}

func (UsernamePasswordCredential) isCredential() {}

// String keeps the password out of formatted output.
func (c UsernamePasswordCredential) String() string {
	return fmt.Sprintf("username/password(%s)", c.Username)
}

type APIKeyCredential struct {
	Key string
}

func (APIKeyCredential) Provider() Provider { return ProviderAPIKey }

func (c APIKeyCredential) Validate() error {
	if strings.TrimSpace(c.Key) == "" {
		return fmt.Errorf("%w: api key is required", ErrInvalidCredential)
	}

	return nil
}

func (c APIKeyCredential) Accept(v CredentialVisitor) error { return v.VisitAPIKey(c) }

func (APIKeyCredential) isCredential() {}

func (APIKeyCredential) String() string { return "apikey(****)" }

// CredentialInput mirrors the login form: every field is kept, only the
// ones belonging to the selected provider are used.
type CredentialInput struct {
	Provider Provider
	Username string
	Password string
	APIKey   string
}

func (in CredentialInput) Credential() (Credential, error) {
	switch in.Provider {
	case ProviderAnonymous:
		return AnonymousCredential{}, nil
	case ProviderUsernamePassword:
		return UsernamePasswordCredential{Username: in.Username, Password: in.Password}, nil
	case ProviderAPIKey:
		return APIKeyCredential{Key: in.APIKey}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedProvider, in.Provider)
	}
}
