package usecase

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/mynumber/internal/mynumber/domain"
	"github.com/allisson/mynumber/internal/mynumber/usecase/mocks"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func expectMetrics(m *mockBusinessMetrics, operation, status string) {
	m.On("RecordOperation", mock.Anything, "mynumber", operation, status).Once()
	m.On("RecordDuration", mock.Anything, "mynumber", operation, mock.AnythingOfType("time.Duration"), status).
		Once()
}

func TestNewMyNumberUseCaseWithMetrics(t *testing.T) {
	decorator := NewMyNumberUseCaseWithMetrics(&mocks.MockMyNumberUseCase{}, &mockBusinessMetrics{})

	assert.NotNil(t, decorator)
	assert.IsType(t, &myNumberUseCaseWithMetrics{}, decorator)
}

func TestMyNumberUseCaseWithMetrics_Verify(t *testing.T) {
	digits := []int{6, 1, 4, 1, 0, 6, 5, 2, 6, 0, 0, 0}

	tests := []struct {
		name        string
		result      bool
		err         error
		status      string
		expectedErr error
	}{
		{name: "Success_RecordsSuccessMetrics", result: true, status: "success"},
		{name: "Error_RecordsErrorMetrics", err: domain.ErrMalformedInput, status: "error", expectedErr: domain.ErrMalformedInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUseCase := &mocks.MockMyNumberUseCase{}
			mockMetrics := &mockBusinessMetrics{}
			mockUseCase.On("Verify", mock.Anything, digits).Return(tt.result, tt.err).Once()
			expectMetrics(mockMetrics, "verify", tt.status)

			decorator := NewMyNumberUseCaseWithMetrics(mockUseCase, mockMetrics)
			valid, err := decorator.Verify(context.Background(), digits)

			assert.Equal(t, tt.result, valid)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			mockUseCase.AssertExpectations(t)
			mockMetrics.AssertExpectations(t)
		})
	}
}

func TestMyNumberUseCaseWithMetrics_CheckDigit(t *testing.T) {
	digits := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 0, 1}
	mockUseCase := &mocks.MockMyNumberUseCase{}
	mockMetrics := &mockBusinessMetrics{}
	mockUseCase.On("CheckDigit", mock.Anything, digits).Return(8, nil).Once()
	expectMetrics(mockMetrics, "check_digit", "success")

	cd, err := NewMyNumberUseCaseWithMetrics(mockUseCase, mockMetrics).CheckDigit(context.Background(), digits)

	require.NoError(t, err)
	assert.Equal(t, 8, cd)
	mockUseCase.AssertExpectations(t)
	mockMetrics.AssertExpectations(t)
}

func TestMyNumberUseCaseWithMetrics_Complete(t *testing.T) {
	digits := []int{6, 1, 4, 1, 0, 6, 5, 2, 6, 0, 0}
	n, err := domain.FromFirstElevenDigits(digits)
	require.NoError(t, err)

	mockUseCase := &mocks.MockMyNumberUseCase{}
	mockMetrics := &mockBusinessMetrics{}
	mockUseCase.On("Complete", mock.Anything, digits).Return(n, nil).Once()
	expectMetrics(mockMetrics, "complete", "success")

	got, err := NewMyNumberUseCaseWithMetrics(mockUseCase, mockMetrics).Complete(context.Background(), digits)

	require.NoError(t, err)
	assert.Equal(t, n, got)
	mockUseCase.AssertExpectations(t)
	mockMetrics.AssertExpectations(t)
}

func TestMyNumberUseCaseWithMetrics_Generate(t *testing.T) {
	mockUseCase := &mocks.MockMyNumberUseCase{}
	mockMetrics := &mockBusinessMetrics{}
	mockUseCase.On("Generate", mock.Anything, 0).Return(nil, domain.ErrInvalidCount).Once()
	expectMetrics(mockMetrics, "generate", "error")

	seq, err := NewMyNumberUseCaseWithMetrics(mockUseCase, mockMetrics).Generate(context.Background(), 0)

	assert.ErrorIs(t, err, domain.ErrInvalidCount)
	assert.Nil(t, seq)
	mockUseCase.AssertExpectations(t)
	mockMetrics.AssertExpectations(t)
}

func TestMyNumberUseCaseWithMetrics_Parse(t *testing.T) {
	n, err := domain.Parse("614106526000")
	require.NoError(t, err)

	mockUseCase := &mocks.MockMyNumberUseCase{}
	mockMetrics := &mockBusinessMetrics{}
	mockUseCase.On("Parse", mock.Anything, "6141-0652-6000").Return(n, nil).Once()
	expectMetrics(mockMetrics, "parse", "success")

	got, err := NewMyNumberUseCaseWithMetrics(mockUseCase, mockMetrics).Parse(context.Background(), "6141-0652-6000")

	require.NoError(t, err)
	assert.Equal(t, n, got)
	mockUseCase.AssertExpectations(t)
	mockMetrics.AssertExpectations(t)
}

func TestMyNumberUseCaseWithMetrics_Format(t *testing.T) {
	mockUseCase := &mocks.MockMyNumberUseCase{}
	mockMetrics := &mockBusinessMetrics{}
	mockUseCase.On("Format", mock.Anything, "614106526000", domain.FormatSpaced).
		Return("", errors.New("format failed")).
		Once()
	expectMetrics(mockMetrics, "format", "error")

	formatted, err := NewMyNumberUseCaseWithMetrics(mockUseCase, mockMetrics).
		Format(context.Background(), "614106526000", domain.FormatSpaced)

	assert.EqualError(t, err, "format failed")
	assert.Empty(t, formatted)
	mockUseCase.AssertExpectations(t)
	mockMetrics.AssertExpectations(t)
}

func TestMyNumberUseCaseWithMetrics_Range(t *testing.T) {
	t.Run("Success_Sequential", func(t *testing.T) {
		n, err := domain.Parse("614106526000")
		require.NoError(t, err)

		mockUseCase := &mocks.MockMyNumberUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		mockUseCase.On("Range", mock.Anything, "61410652600", "61410652600", domain.RangeSequential).
			Return(slices.Values([]domain.Number{n}), uint64(1), nil).
			Once()
		expectMetrics(mockMetrics, "range_sequential", "success")

		seq, candidates, err := NewMyNumberUseCaseWithMetrics(mockUseCase, mockMetrics).
			Range(context.Background(), "61410652600", "61410652600", domain.RangeSequential)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), candidates)
		assert.Equal(t, []domain.Number{n}, slices.Collect(seq))
		mockUseCase.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Error_UnknownModeUsesFixedLabel", func(t *testing.T) {
		for _, mode := range []domain.RangeMode{"binary", "", "numerical; drop table"} {
			mockUseCase := &mocks.MockMyNumberUseCase{}
			mockMetrics := &mockBusinessMetrics{}
			mockUseCase.On("Range", mock.Anything, "0", "10", mode).
				Return(nil, uint64(0), domain.ErrInvalidRange).
				Once()
			expectMetrics(mockMetrics, "range_unknown", "error")

			seq, _, err := NewMyNumberUseCaseWithMetrics(mockUseCase, mockMetrics).
				Range(context.Background(), "0", "10", mode)

			assert.ErrorIs(t, err, domain.ErrInvalidRange)
			assert.Nil(t, seq)
			mockUseCase.AssertExpectations(t)
			mockMetrics.AssertExpectations(t)
		}
	})
}

func TestRangeOperation(t *testing.T) {
	tests := []struct {
		name     string
		mode     domain.RangeMode
		expected string
	}{
		{name: "Success_Numerical", mode: domain.RangeNumerical, expected: "range_numerical"},
		{name: "Success_Sequential", mode: domain.RangeSequential, expected: "range_sequential"},
		{name: "Success_UnknownFallback", mode: "binary", expected: "range_unknown"},
		{name: "Success_EmptyFallback", mode: "", expected: "range_unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rangeOperation(tt.mode))
		})
	}
}
