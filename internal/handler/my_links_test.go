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

// TestMyLinks_Success проверяет выдачу списка ссылок пользователя
func TestMyLinks_Success(t *testing.T) {
	// Arrange
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	links := &fakeLinkUsecase{
		listFn: func(_ context.Context, userID int64) ([]model.UserLinkResponse, error) {
			assert.Equal(t, int64(7), userID)
			return []model.UserLinkResponse{
				{ShortCode: "newer11", LongURL: "https://example.com/b", ClickCount: 3, CreatedAt: now},
				{ShortCode: "older11", LongURL: "https://example.com/a", ClickCount: 0, CreatedAt: now.Add(-time.Hour)},
			}, nil
		},
	}
	router := newTestRouter(&fakeAuthUsecase{}, links)

	req := httptest.NewRequest(http.MethodGet, "/my-links", nil)
	req.Header.Set("Authorization", bearerToken(t, 7, "alice"))
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var response []model.UserLinkResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	require.Len(t, response, 2)
	assert.Equal(t, "newer11", response[0].ShortCode)
	assert.Equal(t, "older11", response[1].ShortCode)
}

// TestMyLinks_Empty проверяет, что пустой список сериализуется как [], а не null
func TestMyLinks_Empty(t *testing.T) {
	// Arrange
	links := &fakeLinkUsecase{
		listFn: func(context.Context, int64) ([]model.UserLinkResponse, error) {
			return []model.UserLinkResponse{}, nil
		},
	}
	router := newTestRouter(&fakeAuthUsecase{}, links)

	req := httptest.NewRequest(http.MethodGet, "/my-links", nil)
	req.Header.Set("Authorization", bearerToken(t, 7, "alice"))
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, "[]", w.Body.String())
}

// TestMyLinks_Unauthorized проверяет отказ без токена
func TestMyLinks_Unauthorized(t *testing.T) {
	// Arrange
	router := newTestRouter(&fakeAuthUsecase{}, &fakeLinkUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/my-links", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// TestMyLinks_StorageError проверяет ответ 500 при недоступном хранилище
func TestMyLinks_StorageError(t *testing.T) {
	// Arrange
	links := &fakeLinkUsecase{
		listFn: func(context.Context, int64) ([]model.UserLinkResponse, error) {
			return nil, usecase.ErrServiceUnavailable
		},
	}
	router := newTestRouter(&fakeAuthUsecase{}, links)

	req := httptest.NewRequest(http.MethodGet, "/my-links", nil)
	req.Header.Set("Authorization", bearerToken(t, 7, "alice"))
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
