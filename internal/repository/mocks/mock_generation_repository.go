package mocks

import (
	"context"

	"formapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockGenerationRepository struct {
	mock.Mock
}

func (m *MockGenerationRepository) Create(ctx context.Context, ev *model.GenerationEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

func (m *MockGenerationRepository) CountByForm(ctx context.Context, formType model.FormType) (map[model.GenerationStatus]int, error) {
	args := m.Called(ctx, formType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[model.GenerationStatus]int), args.Error(1)
}

func (m *MockGenerationRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
