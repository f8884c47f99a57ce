package models

import (
	"fmt"
	"strings"
)

// InsertOrder controls where newly created tasks land in the collection
type InsertOrder string

const (
	// InsertAppend puts new tasks last
	InsertAppend InsertOrder = "append"
	// InsertPrepend puts new tasks first
	InsertPrepend InsertOrder = "prepend"
)

// Task field limits
const (
	MaxTitleLength = 255
)

// ParseInsertOrder maps a config string to an InsertOrder. Empty means append.
func ParseInsertOrder(s string) (InsertOrder, error) {
	switch InsertOrder(strings.ToLower(strings.TrimSpace(s))) {
	case "", InsertAppend:
		return InsertAppend, nil
	case InsertPrepend:
		return InsertPrepend, nil
	default:
		return "", fmt.Errorf("invalid insert order %q (must be: append, prepend)", s)
	}
}
