package httpapi

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"notes-screen/internal/model"
)

const (
	// pingPeriod - период отправки ping для обнаружения оборванных соединений
	pingPeriod = 30 * time.Second
	// pongWait - сколько ждать pong; должен быть больше pingPeriod
	pongWait = 60 * time.Second
	// writeWait - таймаут записи одного сообщения
	writeWait = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin проверяется CORS middleware
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Events отдает события изменения сессии через WebSocket.
// Каждое событие - JSON текстовый фрейм model.ChangeEvent.
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	// Подписываемся до upgrade, чтобы вернуть 404 обычным HTTP ответом
	events, unsubscribe, err := h.sessions.Subscribe(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}
	defer unsubscribe()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.String("session_id", id), zap.Error(err))
		return
	}
	defer conn.Close()

	h.log.Info("change feed connected", zap.String("session_id", id))

	closed := make(chan struct{})
	go readPump(conn, closed)

	writePump(conn, events, closed, h.serverCtx.Done())

	h.log.Info("change feed disconnected", zap.String("session_id", id))
}

// readPump читает входящие фреймы только чтобы обработать close и pong
func readPump(conn *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)

	// Перекрывает ReadTimeout http.Server, действующий после hijack
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump пересылает события клиенту до закрытия сессии или соединения
func writePump(conn *websocket.Conn, events <-chan model.ChangeEvent, closed, shutdown <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Сессия закрыта
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed"))
				return
			}
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-closed:
			return
		case <-shutdown:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
			return
		}
	}
}
