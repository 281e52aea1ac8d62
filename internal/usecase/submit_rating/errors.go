package submit_rating

import "errors"

var (
	// ErrAlreadyRated у агендамента уже есть оценка
	ErrAlreadyRated = errors.New("submit_rating: booking already rated")

	// ErrRatingNotAllowed агендамент не завершен или сервер не разрешает оценку
	ErrRatingNotAllowed = errors.New("submit_rating: rating not allowed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_rating: invalid input data")
)
