package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// SessionDescriptorKey is the storage key holding the last successful login.
const SessionDescriptorKey = "stitchutils_app"

// SessionDescriptor is the minimal persisted pair needed to reconnect.
type SessionDescriptor struct {
	AppID   string `json:"appID"`
	BaseURL string `json:"baseURL"`
}

func (d SessionDescriptor) Validate() error {
	if strings.TrimSpace(d.AppID) == "" {
		return errors.New("app id is required")
	}
	if strings.TrimSpace(d.BaseURL) == "" {
		return errors.New("base url is required")
	}

	return nil
}

func (d SessionDescriptor) Encode() (string, error) {
	payload, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("encode session descriptor: %w", err)
	}

	return string(payload), nil
}

func DecodeSessionDescriptor(raw string) (SessionDescriptor, error) {
	var descriptor SessionDescriptor
	if err := json.Unmarshal([]byte(raw), &descriptor); err != nil {
		return SessionDescriptor{}, fmt.Errorf("decode session descriptor: %w", err)
	}
	if err := descriptor.Validate(); err != nil {
		return SessionDescriptor{}, fmt.Errorf("decode session descriptor: %w", err)
	}

	return descriptor, nil
}

// User is the displayable part of an authenticated remote user.
type User struct {
	ID string `json:"id,omitempty"`
	// AccessToken is empty when the backend did not issue one.
	AccessToken string `json:"accessToken,omitempty"`
}
