package service

import (
	"context"

	"codequiz/internal/bank"
	"codequiz/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockQuestionBank ---
type MockQuestionBank struct {
	mock.Mock
}

func (m *MockQuestionBank) Load(ctx context.Context, force bool) ([]domain.Question, error) {
	args := m.Called(ctx, force)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Question), args.Error(1)
}

func (m *MockQuestionBank) Status() bank.Status {
	args := m.Called()
	return args.Get(0).(bank.Status)
}

// --- MockGridSource ---
type MockGridSource struct {
	mock.Mock
}

func (m *MockGridSource) FetchGrid(ctx context.Context, sheetID, tab string) ([][]string, error) {
	args := m.Called(ctx, sheetID, tab)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]string), args.Error(1)
}
