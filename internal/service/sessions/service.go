package sessions

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"notes-screen/internal/metrics"
	"notes-screen/internal/model"
	svc "notes-screen/internal/service"
	"notes-screen/internal/store"
	"notes-screen/internal/store/memory"
)

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или уже закрыта
	ErrSessionNotFound = errors.New("session not found")
	// ErrNoteNotFound возвращается, когда индекс заметки вне диапазона
	ErrNoteNotFound = errors.New("note not found")
	// ErrTooManySessions возвращается при превышении лимита открытых сессий
	ErrTooManySessions = errors.New("too many sessions")
)

var _ svc.SessionService = (*service)(nil)

// session - экранная сессия. Хранилище не синхронизировано, поэтому
// все обращения к нему выполняются под mu.
type session struct {
	id     string
	mu     sync.Mutex
	store  store.NoteStore
	op     string
	seq    uint64
	closed bool

	unsubscribe func()
}

type service struct {
	mu       sync.RWMutex
	sessions map[string]*session

	events      *EventService
	metrics     *metrics.Metrics
	log         *zap.Logger
	maxSessions int
}

// NewSessionService создает сервис экранных сессий.
// maxSessions <= 0 означает отсутствие ограничения.
func NewSessionService(log *zap.Logger, m *metrics.Metrics, maxSessions int) svc.SessionService {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{
		sessions:    make(map[string]*session),
		events:      NewEventService(),
		metrics:     m,
		log:         log,
		maxSessions: maxSessions,
	}
}

// Open создает новую сессию с пустым хранилищем
func (s *service) Open(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxSessions > 0 && len(s.sessions) >= s.maxSessions {
		return "", ErrTooManySessions
	}

	sess := &session{
		id:    uuid.New().String(),
		store: memory.NewStore(),
	}

	// Единственный наблюдатель сервиса: публикует событие и учитывает метрику.
	// Вызывается синхронно внутри мутации, то есть под sess.mu.
	sess.unsubscribe = sess.store.Subscribe(func() {
		sess.seq++
		ev := model.ChangeEvent{
			SessionID: sess.id,
			Op:        sess.op,
			Seq:       sess.seq,
			Count:     sess.store.Count(),
		}
		s.metrics.ObserveChange(sess.op)
		s.events.Publish(ev)
		s.log.Debug("notes changed",
			zap.String("session_id", ev.SessionID),
			zap.String("op", ev.Op),
			zap.Uint64("seq", ev.Seq),
			zap.Int("count", ev.Count),
		)
	})

	s.sessions[sess.id] = sess
	s.metrics.SessionOpened()
	s.log.Info("session opened", zap.String("session_id", sess.id))

	return sess.id, nil
}

// Close завершает сессию
func (s *service) Close(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	sess, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}

	sess.mu.Lock()
	sess.closed = true
	sess.unsubscribe()
	sess.mu.Unlock()

	s.events.CloseSession(id)
	s.metrics.SessionClosed()
	s.log.Info("session closed", zap.String("session_id", id))

	return nil
}

// Count возвращает количество заметок
func (s *service) Count(ctx context.Context, id string) (int, error) {
	var count int
	err := s.read(ctx, id, func(st store.NoteStore) error {
		count = st.Count()
		return nil
	})
	return count, err
}

// List возвращает копию заметок
func (s *service) List(ctx context.Context, id string) ([]model.Note, error) {
	var notes []model.Note
	err := s.read(ctx, id, func(st store.NoteStore) error {
		notes = st.Notes()
		return nil
	})
	return notes, err
}

// Get возвращает заметку по индексу
func (s *service) Get(ctx context.Context, id string, index int) (model.Note, error) {
	var note model.Note
	err := s.read(ctx, id, func(st store.NoteStore) error {
		n, ok := st.Get(index)
		if !ok {
			return fmt.Errorf("index %d: %w", index, ErrNoteNotFound)
		}
		note = n
		return nil
	})
	return note, err
}

// Add добавляет заметку в конец
func (s *service) Add(ctx context.Context, id string, note model.Note) (int, error) {
	var pos int
	err := s.mutate(ctx, id, model.OpAdd, func(st store.NoteStore) bool {
		st.Add(note)
		pos = st.Count() - 1
		return true
	})
	return pos, err
}

// Update заменяет заметку по индексу
func (s *service) Update(ctx context.Context, id string, note model.Note, index int) error {
	return s.mutate(ctx, id, model.OpUpdate, func(st store.NoteStore) bool {
		return st.Update(note, index)
	})
}

// Delete удаляет заметку по индексу
func (s *service) Delete(ctx context.Context, id string, index int) error {
	return s.mutate(ctx, id, model.OpDelete, func(st store.NoteStore) bool {
		return st.Delete(index)
	})
}

// Clear удаляет все заметки
func (s *service) Clear(ctx context.Context, id string) error {
	return s.mutate(ctx, id, model.OpClear, func(st store.NoteStore) bool {
		st.Clear()
		return true
	})
}

// Save добавляет или обновляет заметку
func (s *service) Save(ctx context.Context, id string, note model.Note, index store.Index) (int, error) {
	var pos int
	err := s.mutate(ctx, id, model.OpSave, func(st store.NoteStore) bool {
		if !st.Save(note, index) {
			return false
		}
		if p, ok := index.Get(); ok {
			pos = p
		} else {
			pos = st.Count() - 1
		}
		return true
	})
	return pos, err
}

// Subscribe подписывает на события изменения сессии
func (s *service) Subscribe(ctx context.Context, id string) (<-chan model.ChangeEvent, func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	sess, err := s.session(id)
	if err != nil {
		return nil, nil, err
	}

	// Под sess.mu, чтобы не подписаться на уже закрытую сессию
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.closed {
		return nil, nil, ErrSessionNotFound
	}

	ch := s.events.Subscribe(id)
	return ch, func() { s.events.Unsubscribe(id, ch) }, nil
}

func (s *service) session(id string) (*session, error) {
	if id == "" {
		return nil, fmt.Errorf("id cannot be empty: %w", ErrSessionNotFound)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// read выполняет fn над хранилищем сессии под ее блокировкой
func (s *service) read(ctx context.Context, id string, fn func(st store.NoteStore) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sess, err := s.session(id)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.closed {
		return ErrSessionNotFound
	}

	return fn(sess.store)
}

// mutate выполняет мутацию; false от fn означает индекс вне диапазона
func (s *service) mutate(ctx context.Context, id, op string, fn func(st store.NoteStore) bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sess, err := s.session(id)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.closed {
		return ErrSessionNotFound
	}

	sess.op = op
	applied := fn(sess.store)
	sess.op = ""

	if !applied {
		s.metrics.ObserveNoop(op)
		s.log.Debug("mutation ignored: index out of range",
			zap.String("session_id", id),
			zap.String("op", op),
		)
		return fmt.Errorf("%s: %w", op, ErrNoteNotFound)
	}

	return nil
}
