package presenter

import (
	"notes-screen/internal/model"
	"notes-screen/internal/store"
)

// Editor - презентер экрана редактирования заметки.
// Без индекса работает в режиме новой заметки.
type Editor struct {
	store store.NoteStore
	index store.Index
	saved bool
}

// NewEditor создает редактор для заметки с указанным индексом
func NewEditor(s store.NoteStore, index store.Index) *Editor {
	return &Editor{store: s, index: index}
}

// IsNew проверяет, создается ли новая заметка
func (e *Editor) IsNew() bool {
	return !e.index.IsSet()
}

// Index возвращает индекс редактируемой заметки
func (e *Editor) Index() store.Index {
	return e.index
}

// Saved проверяет, была ли заметка уже сохранена
func (e *Editor) Saved() bool {
	return e.saved
}

// Load возвращает значения для полей ввода.
// Для новой заметки и отсутствующего индекса поля пустые.
func (e *Editor) Load() model.Note {
	pos, ok := e.index.Get()
	if !ok {
		return model.Note{}
	}

	note, ok := e.store.Get(pos)
	if !ok {
		return model.Note{}
	}
	return note
}

// Save строит заметку из текста полей и сохраняет ее ровно один раз.
// Повторные вызовы игнорируются: после сохранения экран закрывается.
func (e *Editor) Save(title, body string) bool {
	if e.saved {
		return false
	}
	e.saved = true

	return e.store.Save(model.NewNote(title, body), e.index)
}
