package ai

import "errors"

// ErrNotConfigured is returned when no upstream API keys are available.
// All AI operations fail with it until credentials are configured.
var ErrNotConfigured = errors.New("ai service is not configured")

// ErrInvalidInput is returned (wrapped with a detail message) when a caller
// passes input that fails validation, e.g. an empty chat message or a search
// query that is too short.
var ErrInvalidInput = errors.New("invalid input")
