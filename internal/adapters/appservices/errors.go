package appservices

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const maxErrorBodyBytes = 1 << 20

var ErrMalformedResponse = errors.New("malformed app services response")

// ServiceError is a non-2xx answer from the backend. Its message is the
// backend's own text so callers can show it verbatim.
type ServiceError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Code != "" {
		return e.Code
	}

	return fmt.Sprintf("app services request failed: status %d", e.StatusCode)
}

type errorResponse struct {
	Error     string `json:"error"`
	ErrorCode string `json:"error_code"`
}

func decodeServiceError(resp *http.Response) error {
	serviceErr := &ServiceError{StatusCode: resp.StatusCode}

	var payload errorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBodyBytes)).Decode(&payload); err == nil {
		serviceErr.Message = payload.Error
		serviceErr.Code = payload.ErrorCode
	}

	return serviceErr
}

func isUnauthorized(err error) bool {
	var serviceErr *ServiceError
	return errors.As(err, &serviceErr) && serviceErr.StatusCode == http.StatusUnauthorized
}
