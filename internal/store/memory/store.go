package memory

import (
	"slices"

	"notes-screen/internal/model"
	"notes-screen/internal/store"
)

var _ store.NoteStore = (*noteStore)(nil)

type subscriber struct {
	id int
	fn func()
}

type noteStore struct {
	notes []model.Note

	onChange    func()
	subscribers []subscriber
	nextSubID   int
}

// NewStore создает пустое in-memory хранилище заметок на основе слайса
func NewStore() store.NoteStore {
	return &noteStore{
		notes: make([]model.Note, 0),
	}
}

// NewStoreWith создает хранилище с начальными заметками (копия входного слайса)
func NewStoreWith(notes ...model.Note) store.NoteStore {
	return &noteStore{
		notes: append(make([]model.Note, 0, len(notes)), notes...),
	}
}

// Count возвращает количество заметок
func (s *noteStore) Count() int {
	return len(s.notes)
}

// Get возвращает заметку по позиции
func (s *noteStore) Get(index int) (model.Note, bool) {
	if !s.inRange(index) {
		return model.Note{}, false
	}
	return s.notes[index], true
}

// Notes возвращает копию последовательности
func (s *noteStore) Notes() []model.Note {
	return slices.Clone(s.notes)
}

// Add добавляет заметку в конец последовательности
func (s *noteStore) Add(note model.Note) {
	s.notes = append(s.notes, note)
	s.notify()
}

// Update заменяет заметку по индексу
func (s *noteStore) Update(note model.Note, index int) bool {
	if !s.inRange(index) {
		return false
	}
	s.notes[index] = note
	s.notify()
	return true
}

// Delete удаляет заметку по индексу
func (s *noteStore) Delete(index int) bool {
	if !s.inRange(index) {
		return false
	}
	s.notes = slices.Delete(s.notes, index, index+1)
	s.notify()
	return true
}

// Clear очищает последовательность
func (s *noteStore) Clear() {
	s.notes = make([]model.Note, 0)
	s.notify()
}

// Save - единая точка входа для редактора: добавление или обновление.
// Уведомление отправляет только вызванная операция, поэтому оно ровно одно.
func (s *noteStore) Save(note model.Note, index store.Index) bool {
	if pos, ok := index.Get(); ok {
		return s.Update(note, pos)
	}
	s.Add(note)
	return true
}

// SetOnChange заменяет основного наблюдателя
func (s *noteStore) SetOnChange(fn func()) {
	s.onChange = fn
}

// Subscribe добавляет наблюдателя; повторный вызов отписки ничего не делает
func (s *noteStore) Subscribe(fn func()) func() {
	if fn == nil {
		return func() {}
	}

	s.nextSubID++
	id := s.nextSubID
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})

	return func() {
		s.subscribers = slices.DeleteFunc(s.subscribers, func(sub subscriber) bool {
			return sub.id == id
		})
	}
}

func (s *noteStore) inRange(index int) bool {
	return index >= 0 && index < len(s.notes)
}

// notify вызывает наблюдателей синхронно после того, как мутация применена.
// Список снимается заранее: наблюдатель может отписаться прямо из колбэка.
func (s *noteStore) notify() {
	if s.onChange != nil {
		s.onChange()
	}

	subs := slices.Clone(s.subscribers)
	for _, sub := range subs {
		sub.fn()
	}
}
