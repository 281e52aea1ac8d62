package domain

// Rating оценка выполненного агендамента
type Rating struct {
	ID         ID        `json:"id"`
	BookingID  ID        `json:"agendamentoId"`
	CustomerID ID        `json:"clienteId,omitempty"`
	ProviderID ID        `json:"prestadorId,omitempty"`
	Score      int       `json:"nota"`
	Comment    string    `json:"comentario,omitempty"`
	CreatedAt  *DateTime `json:"createdAt,omitempty"`
}

// CreateRatingRequest тело POST /avaliacoes
type CreateRatingRequest struct {
	BookingID ID     `json:"agendamentoId"`
	Score     int    `json:"nota" validate:"min=1,max=5"`
	Comment   string `json:"comentario,omitempty" validate:"max=1000"`
}
