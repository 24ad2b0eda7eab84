package model

import "time"

// Link представляет сокращённую ссылку с её владельцем и счётчиком переходов
type Link struct {
	ID         int64     `json:"id"`
	ShortCode  string    `json:"short_code"`
	LongURL    string    `json:"long_url"`
	ClickCount int64     `json:"click_count"`
	CreatedAt  time.Time `json:"created_at"`
	UserID     int64     `json:"user_id"`
}

// ShortenRequest представляет тело запроса POST /shorten
type ShortenRequest struct {
	LongURL    string `json:"longUrl" validate:"required"`
	CustomCode string `json:"customCode" validate:"omitempty,max=20"`
}

// ShortenResponse представляет успешный ответ на запрос сокращения
type ShortenResponse struct {
	ShortURL  string `json:"shortUrl"`
	ShortCode string `json:"shortCode"`
	LongURL   string `json:"longUrl"`
}

// StatsResponse представляет статистику ссылки для её владельца
type StatsResponse struct {
	LongURL    string    `json:"longUrl"`
	ClickCount int64     `json:"clickCount"`
	CreatedAt  time.Time `json:"createdAt"`
	UserID     int64     `json:"userId"`
}

// UserLinkResponse представляет элемент списка ссылок пользователя
type UserLinkResponse struct {
	ShortCode  string    `json:"short_code"`
	LongURL    string    `json:"long_url"`
	ClickCount int64     `json:"click_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// ErrorResponse представляет единый формат тела ошибки
type ErrorResponse struct {
	Error string `json:"error"`
}
