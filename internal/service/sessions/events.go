package sessions

import (
	"sync"

	"notes-screen/internal/model"
)

// eventBuffer - размер буфера канала подписчика
const eventBuffer = 16

// EventService управляет подписчиками на события изменения сессий
type EventService struct {
	subscribers map[string]map[chan model.ChangeEvent]struct{}
	mu          sync.RWMutex
}

// NewEventService создает новый экземпляр EventService
func NewEventService() *EventService {
	return &EventService{
		subscribers: make(map[string]map[chan model.ChangeEvent]struct{}),
	}
}

// Subscribe добавляет нового подписчика сессии и возвращает канал для получения событий
func (s *EventService) Subscribe(sessionID string) chan model.ChangeEvent {
	ch := make(chan model.ChangeEvent, eventBuffer) // Буферизованный канал для защиты от backpressure
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.subscribers[sessionID] == nil {
		s.subscribers[sessionID] = make(map[chan model.ChangeEvent]struct{})
	}
	s.subscribers[sessionID][ch] = struct{}{}
	return ch
}

// Unsubscribe удаляет подписчика и закрывает его канал; повторный вызов ничего не делает
func (s *EventService) Unsubscribe(sessionID string, ch chan model.ChangeEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	subs := s.subscribers[sessionID]
	if _, ok := subs[ch]; ok {
		close(ch)
		delete(subs, ch)
	}
	if len(subs) == 0 {
		delete(s.subscribers, sessionID)
	}
}

// CloseSession закрывает каналы всех подписчиков сессии
func (s *EventService) CloseSession(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.subscribers[sessionID] {
		close(ch)
	}
	delete(s.subscribers, sessionID)
}

// Subscribers возвращает количество подписчиков сессии
func (s *EventService) Subscribers(sessionID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subscribers[sessionID])
}

// Publish отправляет событие всем подписчикам сессии.
// Если канал подписчика переполнен, событие пропускается (защита от backpressure)
func (s *EventService) Publish(ev model.ChangeEvent) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for ch := range s.subscribers[ev.SessionID] {
		select {
		case ch <- ev:
		default:
		}
	}
}
