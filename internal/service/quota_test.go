package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "propwrite/internal/errors"
	"propwrite/internal/model"
)

func TestQuotaTracker_Admit(t *testing.T) {
	today := Today()

	tests := []struct {
		name            string
		limit           int
		setupMock       func(*MockProfileRepository)
		expectedCurrent int
		expectedError   error
		expectQuotaErr  bool
	}{
		{
			name:  "fresh profile admitted",
			limit: 5,
			setupMock: func(m *MockProfileRepository) {
				m.On("FindByUserID", mock.Anything, uint(1)).Return(&model.Profile{UserID: 1}, nil)
			},
			expectedCurrent: 0,
		},
		{
			name:  "count below ceiling today admitted",
			limit: 5,
			setupMock: func(m *MockProfileRepository) {
				m.On("FindByUserID", mock.Anything, uint(1)).Return(&model.Profile{
					UserID:                1,
					DailyGenerationsCount: 4,
					LastGenerationDate:    today,
				}, nil)
			},
			expectedCurrent: 4,
		},
		{
			name:  "count at ceiling today rejected",
			limit: 5,
			setupMock: func(m *MockProfileRepository) {
				m.On("FindByUserID", mock.Anything, uint(1)).Return(&model.Profile{
					UserID:                1,
					DailyGenerationsCount: 5,
					LastGenerationDate:    today,
				}, nil)
			},
			expectedCurrent: 5,
			expectQuotaErr:  true,
		},
		{
			name:  "stale date resets effective count regardless of stored value",
			limit: 5,
			setupMock: func(m *MockProfileRepository) {
				m.On("FindByUserID", mock.Anything, uint(1)).Return(&model.Profile{
					UserID:                1,
					DailyGenerationsCount: 3,
					LastGenerationDate:    "2020-01-01",
				}, nil)
			},
			expectedCurrent: 0,
		},
		{
			name:  "stale date resets even a stored count over the ceiling",
			limit: 5,
			setupMock: func(m *MockProfileRepository) {
				m.On("FindByUserID", mock.Anything, uint(1)).Return(&model.Profile{
					UserID:                1,
					DailyGenerationsCount: 9,
					LastGenerationDate:    "2020-01-01",
				}, nil)
			},
			expectedCurrent: 0,
		},
		{
			name:  "missing profile is a server error",
			limit: 5,
			setupMock: func(m *MockProfileRepository) {
				m.On("FindByUserID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrProfileUnavailable,
		},
		{
			name:  "configured ceiling is honored",
			limit: 2,
			setupMock: func(m *MockProfileRepository) {
				m.On("FindByUserID", mock.Anything, uint(1)).Return(&model.Profile{
					UserID:                1,
					DailyGenerationsCount: 2,
					LastGenerationDate:    today,
				}, nil)
			},
			expectedCurrent: 2,
			expectQuotaErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProfileRepository)
			tt.setupMock(mockRepo)

			tracker := NewQuotaTracker(mockRepo, tt.limit)
			current, date, err := tracker.Admit(context.Background(), 1)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else if tt.expectQuotaErr {
				var quotaErr *apperrors.QuotaExceededError
				assert.True(t, errors.As(err, &quotaErr))
				assert.Equal(t, tt.limit, quotaErr.Limit)
				assert.Equal(t, tt.expectedCurrent, current)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedCurrent, current)
				assert.Equal(t, today, date)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestQuotaTracker_Commit(t *testing.T) {
	today := Today()

	mockRepo := new(MockProfileRepository)
	mockRepo.On("UpdateQuota", mock.Anything, uint(1), 5, today).Return(nil)

	tracker := NewQuotaTracker(mockRepo, 5)
	tracker.Commit(context.Background(), 1, 4, today)

	mockRepo.AssertExpectations(t)
}

func TestQuotaTracker_CommitFailureSwallowed(t *testing.T) {
	today := Today()

	mockRepo := new(MockProfileRepository)
	mockRepo.On("UpdateQuota", mock.Anything, uint(1), 1, today).Return(errors.New("connection reset"))

	tracker := NewQuotaTracker(mockRepo, 5)
	// Must not panic or surface the failure.
	tracker.Commit(context.Background(), 1, 0, today)

	mockRepo.AssertExpectations(t)
}

func TestQuotaTracker_Remaining(t *testing.T) {
	today := Today()

	tests := []struct {
		name     string
		profile  *model.Profile
		expected int
	}{
		{
			name:     "partial use",
			profile:  &model.Profile{UserID: 1, DailyGenerationsCount: 2, LastGenerationDate: today},
			expected: 3,
		},
		{
			name:     "exhausted",
			profile:  &model.Profile{UserID: 1, DailyGenerationsCount: 5, LastGenerationDate: today},
			expected: 0,
		},
		{
			name:     "stale date means full allowance",
			profile:  &model.Profile{UserID: 1, DailyGenerationsCount: 5, LastGenerationDate: "2020-01-01"},
			expected: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProfileRepository)
			mockRepo.On("FindByUserID", mock.Anything, uint(1)).Return(tt.profile, nil)

			tracker := NewQuotaTracker(mockRepo, 5)
			remaining, err := tracker.Remaining(context.Background(), 1)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, remaining)
		})
	}
}
