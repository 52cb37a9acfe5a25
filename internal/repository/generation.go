package repository

import (
	"context"

	"formapi/internal/model"
)

// Package repository contains data access abstractions for the generation audit log.
// Implementations live in subpackages (e.g., postgres).

// GenerationRepository persists generation outcomes. No business logic here.
type GenerationRepository interface {
	// Create appends one event.
	Create(ctx context.Context, ev *model.GenerationEvent) error

	// CountByForm returns how many events of each status were recorded for a form type.
	CountByForm(ctx context.Context, formType model.FormType) (map[model.GenerationStatus]int, error)

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}
