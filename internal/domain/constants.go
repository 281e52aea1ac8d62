package domain

import "time"

const (
	// PaymentCutoff онлайн-оплата закрывается, когда до услуги остается меньше часа
	PaymentCutoff = 60 * time.Minute

	// MinBookingAdvance заявку нельзя отправить меньше чем за полчаса до начала
	MinBookingAdvance = 30 * time.Minute

	// ChatPollInterval интервал опроса сообщений чата
	ChatPollInterval = 5 * time.Second

	// LocationTimeout максимальное время получения геолокации
	LocationTimeout = 10 * time.Second

	// MaxUploadSize максимальный размер фото, аватара или документа
	MaxUploadSize = 10 << 20
)

// Ограничения полей
const (
	MinRating        = 1
	MaxRating        = 5
	MaxCommentLength = 1000
	MaxMessageLength = 2000
	DefaultPageSize  = 12
	MaxPageSize      = 100
)
