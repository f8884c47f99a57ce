package models

import (
	"fmt"
	"strings"
)

// Theme is the persisted light/dark display preference
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"

	// DefaultTheme is used whenever no valid preference is stored
	DefaultTheme = ThemeDark
)

// Valid reports whether t is one of the known themes
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggle returns the opposite theme. Unknown values toggle from the default.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

func (t Theme) String() string {
	return string(t)
}

// ParseTheme maps a user-supplied string to a Theme (case-insensitive)
func ParseTheme(s string) (Theme, error) {
	theme := Theme(strings.ToLower(strings.TrimSpace(s)))
	if !theme.Valid() {
		return "", fmt.Errorf("%w: %q (must be: light, dark)", ErrInvalidTheme, s)
	}
	return theme, nil
}
