package conversations

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/m04kA/ajeitai-client/internal/domain"
	"github.com/m04kA/ajeitai-client/pkg/apierror"
	"github.com/m04kA/ajeitai-client/pkg/latest"
)

// Результаты опроса для PollObserver
const (
	PollOK       = "ok"
	PollError    = "error"
	PollStale    = "stale"
	PollTerminal = "terminal"
)

// Snapshot состояние диалога после очередного опроса
type Snapshot struct {
	ConversationID domain.ID
	Messages       []domain.Message
	// Последняя нетерминальная ошибка; опрос продолжается
	Err       error
	UpdatedAt time.Time
}

// Poller опрашивает сообщения одного диалога с фиксированным интервалом.
// Первый запрос выполняется сразу. Run завершается при отмене ctx или
// терминальной ошибке (401, 403, 404).
type Poller struct {
	chat           ChatClient
	tokens         TokenSource
	conversationID domain.ID
	interval       time.Duration
	observer       PollObserver
	logger         Logger

	guard   latest.Guard
	running atomic.Bool

	mu      sync.Mutex
	server  []domain.Message
	pending []domain.Message
	lastErr error
	updated time.Time

	// буфер 1, последнее значение вытесняет непрочитанное
	updates chan Snapshot
}

func NewPoller(chat ChatClient, tokens TokenSource, conversationID domain.ID, interval time.Duration, observer PollObserver, logger Logger) *Poller {
	if interval <= 0 {
		interval = domain.ChatPollInterval
	}
	return &Poller{
		chat:           chat,
		tokens:         tokens,
		conversationID: conversationID,
		interval:       interval,
		observer:       observer,
		logger:         logger,
		updates:        make(chan Snapshot, 1),
	}
}

// Updates канал снимков. Медленный читатель получает только последний.
func (p *Poller) Updates() <-chan Snapshot {
	return p.updates
}

// Run опрашивает до отмены ctx (возвращает nil) или терминальной ошибки
// (возвращает ее). Тикер останавливается при выходе.
func (p *Poller) Run(ctx context.Context) error {
	if !p.running.CompareAndSwap(false, true) {
		return ErrPollerRunning
	}
	defer p.running.Store(false)

	if err := p.Poll(ctx); IsTerminal(err) {
		return err
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := p.Poll(ctx); IsTerminal(err) {
				return err
			}
		}
	}
}

// Poll один запрос сообщений. Ответ или ошибка запроса, после которого
// начат более новый, отбрасывается.
func (p *Poller) Poll(ctx context.Context) error {
	ticket := p.guard.Begin()

	messages, err := p.fetch(ctx)
	switch {
	case err != nil && ctx.Err() != nil:
		// отмена не ошибка опроса
		return nil
	case err != nil:
		terminal := IsTerminal(err)
		p.observe(terminal)
		p.logger.Warn("Poll: conversation id=%s (terminal=%t): %v", p.conversationID, terminal, err)
		if !p.guard.Commit(ticket, func() { p.fail(err) }) {
			p.logger.Info("Poll: conversation id=%s: stale error discarded", p.conversationID)
		}
		return err
	}

	if !p.guard.Commit(ticket, func() { p.apply(messages) }) {
		p.observeResult(PollStale)
		return nil
	}

	p.observeResult(PollOK)
	p.logger.Info("Poll: conversation id=%s has %d messages", p.conversationID, len(messages))
	return nil
}

func (p *Poller) fetch(ctx context.Context) ([]domain.Message, error) {
	token, err := p.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenUnavailable, err)
	}
	return p.chat.ListMessages(ctx, token, p.conversationID)
}

// Send отправляет сообщение и сразу показывает его в снимке; следующий
// опрос сверяет его с сервером по id.
func (p *Poller) Send(ctx context.Context, text string) (*domain.Message, error) {
	token, err := p.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	msg, err := p.chat.SendMessage(ctx, token, p.conversationID, text)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.pending = append(p.pending, *msg)
	snap := p.snapshotLocked()
	p.mu.Unlock()

	p.publish(snap)
	return msg, nil
}

// Snapshot текущее состояние без ожидания опроса
func (p *Poller) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

func (p *Poller) apply(messages []domain.Message) {
	p.mu.Lock()
	p.server = messages
	_, p.pending = merge(p.server, p.pending)
	p.lastErr = nil
	p.updated = time.Now()
	snap := p.snapshotLocked()
	p.mu.Unlock()

	p.publish(snap)
}

func (p *Poller) fail(err error) {
	p.mu.Lock()
	p.lastErr = err
	p.updated = time.Now()
	snap := p.snapshotLocked()
	p.mu.Unlock()

	p.publish(snap)
}

func (p *Poller) snapshotLocked() Snapshot {
	merged, _ := merge(p.server, p.pending)
	return Snapshot{
		ConversationID: p.conversationID,
		Messages:       merged,
		Err:            p.lastErr,
		UpdatedAt:      p.updated,
	}
}

func (p *Poller) publish(s Snapshot) {
	for {
		select {
		case p.updates <- s:
			return
		default:
		}
		// вытесняем непрочитанный снимок
		select {
		case <-p.updates:
		default:
		}
	}
}

func (p *Poller) observe(terminal bool) {
	if terminal {
		p.observeResult(PollTerminal)
		return
	}
	p.observeResult(PollError)
}

func (p *Poller) observeResult(result string) {
	if p.observer != nil {
		p.observer.ObservePoll(result)
	}
}

// IsTerminal ошибки, после которых Run прекращает опрос: 401, 403, 404
// и невозможность получить токен
func IsTerminal(err error) bool {
	return apierror.IsTerminal(err) || errors.Is(err, ErrTokenUnavailable)
}
