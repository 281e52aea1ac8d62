package bookings

import (
	"sync"
	"sync/atomic"

	"github.com/m04kA/ajeitai-client/internal/domain"
	"github.com/m04kA/ajeitai-client/pkg/latest"
)

// Board последние известные агендаменты одного пользователя.
// Списки и отдельные запросы коммитятся через latest.Guard, а каждая
// запись хранит номер запроса, который ее принес: ответ на более ранний
// запрос не перезаписывает ответ на более новый, из какого бы источника
// он ни пришел.
type Board struct {
	list latest.Guard
	seq  atomic.Uint64

	mu     sync.RWMutex
	items  map[domain.ID]entry
	guards map[domain.ID]*latest.Guard
}

type entry struct {
	booking domain.Booking
	stamp   uint64
}

func newBoard() *Board {
	return &Board{
		items:  make(map[domain.ID]entry),
		guards: make(map[domain.ID]*latest.Guard),
	}
}

// stamp номер очередного запроса доски; выдается до отправки запроса
func (b *Board) stamp() uint64 {
	return b.seq.Add(1)
}

// Get последний известный снимок агендамента
func (b *Board) Get(id domain.ID) (domain.Booking, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	e, ok := b.items[id]
	return e.booking, ok
}

// replace заменяет набор результатом списка, начатого под номером stamp.
// Записи, принесенные более поздними запросами, остаются.
func (b *Board) replace(list []domain.Booking, stamp uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	items := make(map[domain.ID]entry, len(list))
	for id, e := range b.items {
		if e.stamp > stamp {
			items[id] = e
		}
	}
	for _, item := range list {
		if _, newer := items[item.ID]; newer {
			continue
		}
		items[item.ID] = entry{booking: item, stamp: stamp}
	}
	b.items = items
}

// put сохраняет снимок, если на доске нет более нового
func (b *Board) put(item *domain.Booking, stamp uint64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if e, ok := b.items[item.ID]; ok && e.stamp > stamp {
		return false
	}
	b.items[item.ID] = entry{booking: *item, stamp: stamp}
	return true
}

// markRated запоминает id оценки, даже если свежий снимок не получен
func (b *Board) markRated(id, ratingID domain.ID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.items[id]
	if !ok {
		e = entry{booking: domain.Booking{ID: id, Status: domain.StatusCompleted}}
	}
	e.booking.RatingID = &ratingID
	e.booking.RatingAllowed = false
	e.stamp = b.seq.Add(1)
	b.items[id] = e
}

// guard для запросов одного агендамента
func (b *Board) guard(id domain.ID) *latest.Guard {
	b.mu.Lock()
	defer b.mu.Unlock()

	g, ok := b.guards[id]
	if !ok {
		g = &latest.Guard{}
		b.guards[id] = g
	}
	return g
}
