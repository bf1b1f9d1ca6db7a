package domain

import (
	"fmt"
	"strings"
)

const DefaultBaseURL = "https://realm.mongodb.com"

// KnownBaseURLs lists the hosted environments plus the local development endpoint.
var KnownBaseURLs = []string{
	"https://realm.mongodb.com",
	"https://realm-qa.mongodb.com",
	"https://realm-dev.mongodb.com",
	"https://realm-staging.mongodb.com",
	"http://localhost:8080",
}

// AllowedBaseURLs returns the known endpoints followed by extra, without duplicates.
func AllowedBaseURLs(extra ...string) []string {
	allowed := make([]string, 0, len(KnownBaseURLs)+len(extra))
	seen := make(map[string]struct{}, len(KnownBaseURLs)+len(extra))
	for _, raw := range append(append([]string{}, KnownBaseURLs...), extra...) {
		normalized := normalizeBaseURL(raw)
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		allowed = append(allowed, normalized)
	}

	return allowed
}

func ValidateBaseURL(raw string, allowed []string) (string, error) {
	normalized := normalizeBaseURL(raw)
	for _, candidate := range allowed {
		if normalizeBaseURL(candidate) == normalized && normalized != "" {
			return normalized, nil
		}
	}

	return "", fmt.Errorf("%w: %q (allowed: %s)", ErrUnknownBaseURL, raw, strings.Join(allowed, ", "))
}

func normalizeBaseURL(raw string) string {
	return strings.TrimRight(strings.TrimSpace(raw), "/")
}
