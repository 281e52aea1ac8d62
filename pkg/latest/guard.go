package latest

import (
	"context"
	"sync"
	"sync/atomic"
)

// Guard отбрасывает устаревшие ответы: результат коммитится только если
// с момента Begin не был начат более новый запрос.
type Guard struct {
	seq atomic.Uint64
	mu  sync.Mutex
}

// Ticket идентификатор запроса, выданный Begin
type Ticket uint64

// Begin регистрирует новый запрос и делает все предыдущие устаревшими
func (g *Guard) Begin() Ticket {
	return Ticket(g.seq.Add(1))
}

// IsLatest true, если после t не был начат другой запрос
func (g *Guard) IsLatest(t Ticket) bool {
	return uint64(t) == g.seq.Load()
}

// Commit атомарно проверяет актуальность t и выполняет apply.
// Возвращает false, если результат устарел и apply не вызывался.
func (g *Guard) Commit(t Ticket, apply func()) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.IsLatest(t) {
		return false
	}
	apply()
	return true
}

// Do выполняет fetch и коммитит результат через apply, если запрос
// остался последним. committed=false означает, что ответ отброшен.
func Do[T any](ctx context.Context, g *Guard, fetch func(ctx context.Context) (T, error), apply func(T)) (result T, committed bool, err error) {
	ticket := g.Begin()

	result, err = fetch(ctx)
	if err != nil {
		return result, false, err
	}

	committed = g.Commit(ticket, func() { apply(result) })
	return result, committed, nil
}
