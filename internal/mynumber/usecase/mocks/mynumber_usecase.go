// Package mocks provides mock implementations of the My Number use cases for testing.
package mocks

import (
	"context"
	"iter"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/mynumber/internal/mynumber/domain"
)

// MockMyNumberUseCase is a mock implementation of MyNumberUseCase for testing.
type MockMyNumberUseCase struct {
	mock.Mock
}

// Verify mocks the Verify method of MyNumberUseCase.
func (m *MockMyNumberUseCase) Verify(ctx context.Context, digits []int) (bool, error) {
	args := m.Called(ctx, digits)
	return args.Bool(0), args.Error(1)
}

// CheckDigit mocks the CheckDigit method of MyNumberUseCase.
func (m *MockMyNumberUseCase) CheckDigit(ctx context.Context, digits []int) (int, error) {
	args := m.Called(ctx, digits)
	return args.Int(0), args.Error(1)
}

// Complete mocks the Complete method of MyNumberUseCase.
func (m *MockMyNumberUseCase) Complete(ctx context.Context, digits []int) (domain.Number, error) {
	args := m.Called(ctx, digits)
	return args.Get(0).(domain.Number), args.Error(1)
}

// Generate mocks the Generate method of MyNumberUseCase.
func (m *MockMyNumberUseCase) Generate(ctx context.Context, count int) (iter.Seq[domain.Number], error) {
	args := m.Called(ctx, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(iter.Seq[domain.Number]), args.Error(1)
}

// Parse mocks the Parse method of MyNumberUseCase.
func (m *MockMyNumberUseCase) Parse(ctx context.Context, value string) (domain.Number, error) {
	args := m.Called(ctx, value)
	return args.Get(0).(domain.Number), args.Error(1)
}

// Format mocks the Format method of MyNumberUseCase.
func (m *MockMyNumberUseCase) Format(ctx context.Context, value string, mode domain.FormatMode) (string, error) {
	args := m.Called(ctx, value, mode)
	return args.String(0), args.Error(1)
}

// Range mocks the Range method of MyNumberUseCase.
func (m *MockMyNumberUseCase) Range(
	ctx context.Context,
	minValue, maxValue string,
	mode domain.RangeMode,
) (iter.Seq[domain.Number], uint64, error) {
	args := m.Called(ctx, minValue, maxValue, mode)
	candidates, _ := args.Get(1).(uint64)
	if args.Get(0) == nil {
		return nil, candidates, args.Error(2)
	}
	return args.Get(0).(iter.Seq[domain.Number]), candidates, args.Error(2)
}
