package application

import "github.com/bnema/stitchutils/internal/domain"

// SessionStatus is the read-only view of the current session.
type SessionStatus struct {
	LoggedIn bool        `json:"loggedIn"`
	AppID    string      `json:"appID,omitempty"`
	BaseURL  string      `json:"baseURL,omitempty"`
	User     domain.User `json:"user"`
}

func StatusOf(session *Session) SessionStatus {
	if session == nil {
		return SessionStatus{}
	}

	return SessionStatus{
		LoggedIn: true,
		AppID:    session.AppID,
		BaseURL:  session.BaseURL,
		User:     session.CurrentUser(),
	}
}
