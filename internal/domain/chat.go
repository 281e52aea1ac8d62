package domain

// Conversation диалог cliente <-> prestador
type Conversation struct {
	ID         ID        `json:"id"`
	CustomerID ID        `json:"clienteId"`
	ProviderID ID        `json:"prestadorId"`
	BookingID  ID        `json:"agendamentoId,omitempty"`
	CreatedAt  *DateTime `json:"criadaEm,omitempty"`
	UpdatedAt  *DateTime `json:"atualizadaEm,omitempty"`
}

// Message сообщение чата
type Message struct {
	ID             ID        `json:"id"`
	ConversationID ID        `json:"conversaId"`
	SenderID       ID        `json:"remetenteId"`
	Text           string    `json:"texto"`
	SentAt         *DateTime `json:"enviadaEm,omitempty"`
	Read           bool      `json:"lida"`
}
