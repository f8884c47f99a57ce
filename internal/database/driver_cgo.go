//go:build cgo

package database

// Registers the "sqlite3" driver for builds with cgo enabled
import _ "github.com/mattn/go-sqlite3"
