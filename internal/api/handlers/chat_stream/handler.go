package chat_stream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/m04kA/ajeitai-client/internal/api/handlers"
	"github.com/m04kA/ajeitai-client/internal/service/conversations"
)

const (
	msgInvalidConversationID = "Conversa inválida."
	msgInvalidMessage        = "A mensagem deve ter entre 1 e 2000 caracteres."
	msgConnectionLost        = "Conexão com o chat perdida. Tentando novamente..."
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	sendWait   = 15 * time.Second
	maxFrame   = 16 << 10
)

// Handler websocket поток диалога: снимки опроса сообщений и отправка
// текста. Поток живет, пока открыт сокет и опрос не остановлен
// терминальной ошибкой.
type Handler struct {
	pollers  PollerFactory
	gauge    StreamGauge
	upgrader websocket.Upgrader
	logger   Logger
}

func NewHandler(pollers PollerFactory, gauge StreamGauge, allowedOrigins []string, logger Logger) *Handler {
	h := &Handler{
		pollers: pollers,
		gauge:   gauge,
		logger:  logger,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin:     checkOrigin(allowedOrigins),
	}
	return h
}

// Handle GET /api/v1/conversations/{id}/ws
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(r, "id")
	if !ok {
		handlers.RespondBadRequest(w, msgInvalidConversationID)
		return
	}

	sess, _, ok := handlers.Auth(w, r)
	if !ok {
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade уже записал ответ
		h.logger.Warn("GET /conversations/{id}/ws - Upgrade failed: conversation_id=%s, error=%v", id, err)
		return
	}
	defer conn.Close()

	if h.gauge != nil {
		done := h.gauge.StreamOpened()
		defer done()
	}

	// Контекст запроса после hijack не отменяется при обрыве, поэтому
	// поток отменяется читателем
	ctx, cancel := context.WithCancel(context.WithoutCancel(r.Context()))
	defer cancel()

	poller := h.pollers.NewPoller(sess, id)
	runDone := make(chan error, 1)
	go func() {
		runDone <- poller.Run(ctx)
	}()

	sendErrs := make(chan error, 1)
	go h.readLoop(ctx, cancel, conn, poller, sendErrs)

	h.logger.Info("GET /conversations/{id}/ws - Stream opened: conversation_id=%s, subject=%s", id, handlers.Subject(sess))
	err = h.writeLoop(ctx, conn, poller, runDone, sendErrs)
	cancel()
	h.logger.Info("GET /conversations/{id}/ws - Stream closed: conversation_id=%s, reason=%v", id, err)
}

// readLoop единственный читатель сокета. Ошибка чтения (закрытие
// клиентом) отменяет поток.
func (h *Handler) readLoop(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, poller *conversations.Poller, sendErrs chan<- error) {
	defer cancel()

	conn.SetReadLimit(maxFrame)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var frame clientFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			report(sendErrs, conversations.ErrInvalidInput)
			continue
		}
		text, err := conversations.ValidateText(frame.Text)
		if err != nil {
			report(sendErrs, err)
			continue
		}

		sendCtx, cancelSend := context.WithTimeout(ctx, sendWait)
		_, err = poller.Send(sendCtx, text)
		cancelSend()
		if err != nil {
			h.logger.Warn("chat_stream: send failed: %v", err)
			report(sendErrs, err)
		}
	}
}

// writeLoop единственный писатель сокета
func (h *Handler) writeLoop(ctx context.Context, conn *websocket.Conn, poller *conversations.Poller, runDone <-chan error, sendErrs <-chan error) error {
	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case snap := <-poller.Updates():
			if err := write(conn, snapshotFrame(snap)); err != nil {
				return err
			}

		case err := <-sendErrs:
			if err := write(conn, errorFrame(err)); err != nil {
				return err
			}

		case err := <-runDone:
			if err == nil {
				return nil
			}
			status, code, message := handlers.ClassifyAPIError(err)
			if errors.Is(err, conversations.ErrTokenUnavailable) {
				status, code, message = http.StatusUnauthorized, handlers.CodeSessionExpired, "Sessão expirada. Faça login novamente."
			}
			_ = write(conn, serverFrame{Type: frameClosed, Code: code, Message: message})
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(closeCode(status), code), time.Now().Add(writeWait))
			return err

		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return err
			}
		}
	}
}

func write(conn *websocket.Conn, frame serverFrame) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(frame)
}

func snapshotFrame(snap conversations.Snapshot) serverFrame {
	frame := serverFrame{Type: frameSnapshot, Messages: snap.Messages}
	if !snap.UpdatedAt.IsZero() {
		updated := snap.UpdatedAt
		frame.UpdatedAt = &updated
	}
	// нетерминальная ошибка: сообщения последнего удачного опроса остаются
	if snap.Err != nil {
		frame.Code = handlers.CodeUpstreamUnavailable
		frame.Message = msgConnectionLost
	}
	return frame
}

func errorFrame(err error) serverFrame {
	if errors.Is(err, conversations.ErrInvalidInput) {
		return serverFrame{Type: frameError, Code: handlers.CodeBadRequest, Message: msgInvalidMessage}
	}
	_, code, message := handlers.ClassifyAPIError(err)
	return serverFrame{Type: frameError, Code: code, Message: message}
}

// report не блокирует читателя: при переполнении ошибка отбрасывается
func report(ch chan<- error, err error) {
	select {
	case ch <- err:
	default:
	}
}

// closeCode коды 4000-4999 зарезервированы для приложений
func closeCode(status int) int {
	if status >= 400 && status < 600 {
		return 4000 + status
	}
	return websocket.CloseNormalClosure
}

func checkOrigin(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		set[o] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}
