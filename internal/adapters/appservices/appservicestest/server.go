// Package appservicestest provides an in-process App Services client API
// for tests.
package appservicestest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

const apiPrefix = "/api/client/v2.0/"

// Function handles a call with its argument list and returns the raw result.
type Function func(args json.RawMessage) (json.RawMessage, error)

// Echo returns the argument list unchanged.
func Echo(args json.RawMessage) (json.RawMessage, error) {
	return args, nil
}

type Server struct {
	*httptest.Server

	AppID string

	mu        sync.Mutex
	functions map[string]Function
	passwords map[string]string
	apiKeys   map[string]string
	access    map[string]string
	refresh   map[string]string
	seq       int

	Logins    atomic.Int32
	Calls     atomic.Int32
	Refreshes atomic.Int32
	Logouts   atomic.Int32
}

// NewServer starts a fake backend serving appID with "foo" and "echo"
// bound to Echo. It is closed when the test ends.
func NewServer(t testing.TB, appID string) *Server {
	t.Helper()

	s := &Server{
		AppID:     appID,
		functions: map[string]Function{"foo": Echo, "echo": Echo},
		passwords: map[string]string{},
		apiKeys:   map[string]string{},
		access:    map[string]string{},
		refresh:   map[string]string{},
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.route))
	t.Cleanup(s.Server.Close)

	return s
}

func (s *Server) AddUser(username, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.passwords[username] = password
}

func (s *Server) AddAPIKey(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apiKeys[key] = "apikey-user-" + key
}

func (s *Server) Handle(name string, fn Function) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.functions[name] = fn
}

// ExpireAccessTokens invalidates every issued access token; refresh tokens
// stay valid.
func (s *Server) ExpireAccessTokens() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = map[string]string{}
}

// RevokeSessions invalidates every issued token.
func (s *Server) RevokeSessions() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = map[string]string{}
	s.refresh = map[string]string{}
}

func (s *Server) route(w http.ResponseWriter, r *http.Request) {
	if !strings.HasPrefix(r.URL.Path, apiPrefix) {
		writeError(w, http.StatusNotFound, "not found", "NotFound")
		return
	}
	parts := strings.Split(strings.TrimPrefix(r.URL.Path, apiPrefix), "/")

	switch {
	case len(parts) == 2 && parts[0] == "auth" && parts[1] == "session":
		s.session(w, r)
	case len(parts) >= 3 && parts[0] == "app":
		if parts[1] != s.AppID {
			writeError(w, http.StatusNotFound, fmt.Sprintf("cannot find app using Client App ID '%s'", parts[1]), "AppNotFound")
			return
		}
		s.app(w, r, parts[2:])
	default:
		writeError(w, http.StatusNotFound, "not found", "NotFound")
	}
}

func (s *Server) app(w http.ResponseWriter, r *http.Request, parts []string) {
	switch {
	case len(parts) == 1 && parts[0] == "location" && r.Method == http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]string{
			"deployment_model": "GLOBAL",
			"location":         "US-VA",
			"hostname":         s.URL,
		})
	case len(parts) == 4 && parts[0] == "auth" && parts[1] == "providers" && parts[3] == "login" && r.Method == http.MethodPost:
		s.login(w, r, parts[2])
	case len(parts) == 2 && parts[0] == "functions" && parts[1] == "call" && r.Method == http.MethodPost:
		s.call(w, r)
	default:
		writeError(w, http.StatusNotFound, "not found", "NotFound")
	}
}

func (s *Server) login(w http.ResponseWriter, r *http.Request, provider string) {
	var body map[string]string
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BadRequest")
		return
	}

	s.mu.Lock()
	var userID string
	switch provider {
	case "anon-user":
		s.seq++
		userID = fmt.Sprintf("anon-%d", s.seq)
	case "local-userpass":
		if want, ok := s.passwords[body["username"]]; ok && want == body["password"] {
			userID = "user-" + body["username"]
		}
	case "api-key":
		userID = s.apiKeys[body["key"]]
	default:
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, fmt.Sprintf("auth provider not found: '%s'", provider), "AuthProviderNotFound")
		return
	}
	if userID == "" {
		s.mu.Unlock()
		if provider == "api-key" {
			writeError(w, http.StatusUnauthorized, "invalid API key", "InvalidSession")
			return
		}
		writeError(w, http.StatusUnauthorized, "invalid username/password", "InvalidPassword")
		return
	}
	access, refresh := s.issue(userID)
	s.mu.Unlock()

	s.Logins.Add(1)
	writeJSON(w, http.StatusOK, map[string]string{
		"access_token":  access,
		"refresh_token": refresh,
		"user_id":       userID,
		"device_id":     "000000000000000000000000",
	})
}

func (s *Server) call(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	_, ok := s.access[bearer(r)]
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid session: access token expired", "InvalidSession")
		return
	}

	var body struct {
		Name      string          `json:"name"`
		Arguments json.RawMessage `json:"arguments"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BadRequest")
		return
	}

	s.mu.Lock()
	fn, ok := s.functions[body.Name]
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("function not found: '%s'", body.Name), "FunctionNotFound")
		return
	}

	s.Calls.Add(1)
	result, err := fn(body.Arguments)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "FunctionExecutionError")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result)
}

func (s *Server) session(w http.ResponseWriter, r *http.Request) {
	token := bearer(r)

	s.mu.Lock()
	defer s.mu.Unlock()

	userID, ok := s.refresh[token]
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid session", "InvalidSession")
		return
	}

	switch r.Method {
	case http.MethodPost:
		s.seq++
		access := fmt.Sprintf("access-%d", s.seq)
		s.access[access] = userID
		s.Refreshes.Add(1)
		writeJSON(w, http.StatusCreated, map[string]string{"access_token": access})
	case http.MethodDelete:
		delete(s.refresh, token)
		for access, owner := range s.access {
			if owner == userID {
				delete(s.access, access)
			}
		}
		s.Logouts.Add(1)
		w.WriteHeader(http.StatusNoContent)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", "MethodNotAllowed")
	}
}

// issue must be called with s.mu held.
func (s *Server) issue(userID string) (string, string) {
	s.seq++
	access := fmt.Sprintf("access-%d", s.seq)
	refresh := fmt.Sprintf("refresh-%d", s.seq)
	s.access[access] = userID
	s.refresh[refresh] = userID
	return access, refresh
}

func bearer(r *http.Request) string {
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, code string) {
	writeJSON(w, status, map[string]string{"error": message, "error_code": code})
}
