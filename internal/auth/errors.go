package auth

import "errors"

var (
	// ErrLoginRequired токен не удалось обновить и повторный логин невозможен
	ErrLoginRequired = errors.New("auth: login required")

	// ErrInvalidCredentials провайдер отклонил логин/пароль
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrInvalidToken access-токен не разбирается или без sub
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrSessionClosed сессия завершена через Logout
	ErrSessionClosed = errors.New("auth: session closed")

	// ErrSessionNotFound неизвестный идентификатор сессии
	ErrSessionNotFound = errors.New("auth: session not found")

	// ErrNotInitialized Token вызван до Init
	ErrNotInitialized = errors.New("auth: session not initialized")

	// ErrProvider провайдер недоступен или ответил неожиданно
	ErrProvider = errors.New("auth: identity provider error")
)
