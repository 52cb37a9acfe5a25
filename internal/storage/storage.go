package storage

import (
	"context"
	"errors"
)

// Package storage contains read-only sources for the PDF form templates.
// Templates are never written: every call returns a fresh copy of the bytes.

// ErrTemplateNotFound is returned when the requested template does not exist in the source.
var ErrTemplateNotFound = errors.New("template not found")

// TemplateStore is a read-only template source. Implementations are safe for concurrent use.
type TemplateStore interface {
	// Read returns the full content of the named template.
	Read(ctx context.Context, name string) ([]byte, error)
	// Ping verifies the source is reachable.
	Ping(ctx context.Context) error
}
