package chatservice

// Идентификаторы в чате - строки, agendamentoId пустой, если диалог не привязан
type openConversationRequest struct {
	ProviderID string `json:"prestadorId"`
	BookingID  string `json:"agendamentoId"`
}

type sendMessageRequest struct {
	Text string `json:"texto"`
}
