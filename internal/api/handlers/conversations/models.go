package conversations

import "github.com/m04kA/ajeitai-client/internal/domain"

// OpenConversationRequest HTTP request model
type OpenConversationRequest struct {
	ProviderID domain.ID `json:"prestadorId"`
	BookingID  domain.ID `json:"agendamentoId,omitempty"`
}

// SendMessageRequest HTTP request model
type SendMessageRequest struct {
	Text string `json:"texto"`
}
