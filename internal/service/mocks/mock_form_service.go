package mocks

import (
	"context"

	"formapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockFormService struct {
	mock.Mock
}

func (m *MockFormService) Generate(ctx context.Context, formType model.FormType, sub model.Submission) (*model.GeneratedDocument, error) {
	args := m.Called(ctx, formType, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GeneratedDocument), args.Error(1)
}

func (m *MockFormService) Ready(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
