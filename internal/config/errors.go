package config

import "errors"

var (
	// ErrDecode ошибка разбора config.toml
	ErrDecode = errors.New("config: failed to decode file")

	// ErrEnv ошибка разбора переменных окружения
	ErrEnv = errors.New("config: failed to process environment")

	// ErrInvalid конфигурация не прошла валидацию
	ErrInvalid = errors.New("config: invalid configuration")
)
