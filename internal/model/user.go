package model

import "time"

// User представляет зарегистрированного пользователя сервиса.
// PasswordHash никогда не сериализуется и не покидает слой хранилища.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// CredentialsRequest представляет тело запросов /register и /login
type CredentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse возвращается при успешной регистрации или входе
type TokenResponse struct {
	Token string `json:"token"`
}
