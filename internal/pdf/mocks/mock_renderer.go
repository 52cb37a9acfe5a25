package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"formapi/internal/model"
)

type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(ctx context.Context, template []byte, placements []model.FieldPlacement) ([]byte, error) {
	args := m.Called(ctx, template, placements)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
