// Package presenter содержит внешних участников хранилища заметок:
// презентер списка и презентер редактора заметки.
// Оба не зависят от конкретного UI-тулкита.
package presenter

import (
	"slices"

	"notes-screen/internal/model"
	"notes-screen/internal/store"
)

// List - презентер экрана списка заметок.
// Отображает снимок строк, который обновляется по уведомлению хранилища.
type List struct {
	store       store.NoteStore
	unsubscribe func()

	rows      []model.Note
	refreshes int

	// OnRefresh вызывается после каждого обновления снимка (аналог reloadData)
	OnRefresh func()
}

// NewList создает презентер и один раз подписывает его на изменения хранилища.
// Основной наблюдатель (SetOnChange) остается свободным, поэтому к одному
// хранилищу можно подключить несколько презентеров.
func NewList(s store.NoteStore) *List {
	l := &List{store: s}
	l.rows = s.Notes()
	l.unsubscribe = s.Subscribe(l.refresh)
	return l
}

// Len возвращает количество строк
func (l *List) Len() int {
	return len(l.rows)
}

// Row возвращает заметку для строки
func (l *List) Row(i int) (model.Note, bool) {
	if i < 0 || i >= len(l.rows) {
		return model.Note{}, false
	}
	return l.rows[i], true
}

// Rows возвращает копию текущего снимка строк
func (l *List) Rows() []model.Note {
	return slices.Clone(l.rows)
}

// Refreshes возвращает количество выполненных обновлений
func (l *List) Refreshes() int {
	return l.refreshes
}

// Open открывает редактор существующей заметки (нажатие на строку)
func (l *List) Open(i int) *Editor {
	return NewEditor(l.store, store.At(i))
}

// Compose открывает редактор новой заметки (кнопка "+")
func (l *List) Compose() *Editor {
	return NewEditor(l.store, store.NoIndex)
}

// Delete удаляет заметку в строке i
func (l *List) Delete(i int) bool {
	return l.store.Delete(i)
}

// Clear удаляет все заметки
func (l *List) Clear() {
	l.store.Clear()
}

// Detach снимает с хранилища только подписку этого презентера
func (l *List) Detach() {
	l.unsubscribe()
}

func (l *List) refresh() {
	l.rows = l.store.Notes()
	l.refreshes++
	if l.OnRefresh != nil {
		l.OnRefresh()
	}
}
