package task

import (
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/todo/internal/models"
)

// ValidateTitle trims a user-supplied title and checks it is non-empty and
// within MaxTitleLength characters. The store does not call this itself.
func ValidateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > models.MaxTitleLength {
		return "", ErrTitleTooLong
	}
	return title, nil
}

// ValidateTaskID trims an id argument and rejects blank ones
func ValidateTaskID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrInvalidTaskID
	}
	return id, nil
}
