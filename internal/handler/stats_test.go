package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avc-dev/shortly/internal/model"
	"github.com/avc-dev/shortly/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStats_Success проверяет выдачу статистики владельцу ссылки
func TestStats_Success(t *testing.T) {
	// Arrange
	createdAt := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	links := &fakeLinkUsecase{
		statsFn: func(_ context.Context, code string, requesterID int64) (*model.StatsResponse, error) {
			assert.Equal(t, "abc1234", code)
			assert.Equal(t, int64(7), requesterID)
			return &model.StatsResponse{
				LongURL:    "https://example.com",
				ClickCount: 42,
				CreatedAt:  createdAt,
				UserID:     7,
			}, nil
		},
	}
	router := newTestRouter(&fakeAuthUsecase{}, links)

	req := httptest.NewRequest(http.MethodGet, "/stats/abc1234", nil)
	req.Header.Set("Authorization", bearerToken(t, 7, "alice"))
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var response model.StatsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	assert.Equal(t, "https://example.com", response.LongURL)
	assert.Equal(t, int64(42), response.ClickCount)
	assert.Equal(t, int64(7), response.UserID)
	assert.True(t, createdAt.Equal(response.CreatedAt))
}

// TestStats_Unauthorized проверяет, что статистика недоступна без токена
func TestStats_Unauthorized(t *testing.T) {
	// Arrange
	called := false
	links := &fakeLinkUsecase{
		statsFn: func(context.Context, string, int64) (*model.StatsResponse, error) {
			called = true
			return nil, nil
		},
	}
	router := newTestRouter(&fakeAuthUsecase{}, links)

	req := httptest.NewRequest(http.MethodGet, "/stats/abc1234", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}

// TestStats_ErrorMapping проверяет разделение "не найдено" и "не владелец"
func TestStats_ErrorMapping(t *testing.T) {
	tests := []struct {
		name           string
		usecaseError   error
		expectedStatus int
	}{
		{
			name:           "Unknown code maps to 404",
			usecaseError:   usecase.ErrLinkNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Foreign link maps to 403",
			usecaseError:   usecase.ErrNotOwner,
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			links := &fakeLinkUsecase{
				statsFn: func(context.Context, string, int64) (*model.StatsResponse, error) {
					return nil, tt.usecaseError
				},
			}
			router := newTestRouter(&fakeAuthUsecase{}, links)

			req := httptest.NewRequest(http.MethodGet, "/stats/abc1234", nil)
			req.Header.Set("Authorization", bearerToken(t, 9, "bob"))
			w := httptest.NewRecorder()

			// Act
			router.ServeHTTP(w, req)

			// Assert
			resp := w.Result()
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			var response model.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
			assert.NotEmpty(t, response.Error)
		})
	}
}
