package conversations

import "github.com/m04kA/ajeitai-client/internal/domain"

// merge порядок сервера, затем локально отправленные сообщения, которых
// сервер еще не вернул. Каждый id встречается не больше одного раза.
// Возвращает также pending без сообщений, которые сервер уже подтвердил.
func merge(server, pending []domain.Message) (merged, stillPending []domain.Message) {
	seen := make(map[domain.ID]struct{}, len(server)+len(pending))
	merged = make([]domain.Message, 0, len(server)+len(pending))

	for _, m := range server {
		if _, dup := seen[m.ID]; dup {
			continue
		}
		seen[m.ID] = struct{}{}
		merged = append(merged, m)
	}

	for _, m := range pending {
		if _, dup := seen[m.ID]; dup {
			continue
		}
		seen[m.ID] = struct{}{}
		merged = append(merged, m)
		stillPending = append(stillPending, m)
	}

	return merged, stillPending
}
