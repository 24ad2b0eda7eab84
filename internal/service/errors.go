package service

import "errors"

var (
	// ErrMaxRetriesExceeded возвращается когда не удалось сгенерировать уникальный код
	// после максимального количества попыток
	ErrMaxRetriesExceeded = errors.New("max retries exceeded for code generation")

	// ErrTokenExpired возвращается когда срок действия токена истёк
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenMalformed возвращается когда строка токена не разбирается
	ErrTokenMalformed = errors.New("token malformed")
	// ErrTokenInvalid возвращается при неверной подписи или некорректных claims
	ErrTokenInvalid = errors.New("token invalid")
)
