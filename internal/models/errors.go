package models

import "errors"

// Domain-level validation errors
var (
	// ErrInvalidTheme indicates a theme value other than light or dark
	ErrInvalidTheme = errors.New("invalid theme")
)
