package store

import (
	"notes-screen/internal/model"
)

// NoteStore интерфейс упорядоченной коллекции заметок одной экранной сессии.
// Порядок вставки является порядком отображения.
// Реализации не синхронизированы: ожидается один мутирующий контекст.
type NoteStore interface {
	// Count возвращает количество заметок
	Count() int

	// Get возвращает заметку по позиции; false, если индекс вне [0, Count)
	Get(index int) (model.Note, bool)

	// Notes возвращает копию последовательности заметок
	Notes() []model.Note

	// Add добавляет заметку в конец и уведомляет наблюдателей
	Add(note model.Note)

	// Update заменяет заметку по индексу; вне диапазона - no-op без уведомления
	Update(note model.Note, index int) bool

	// Delete удаляет заметку по индексу, последующие сдвигаются на одну позицию
	Delete(index int) bool

	// Clear очищает последовательность и уведомляет наблюдателей
	Clear()

	// Save добавляет заметку (NoIndex) или обновляет существующую (At(i))
	Save(note model.Note, index Index) bool

	// SetOnChange заменяет основного наблюдателя (nil снимает его)
	SetOnChange(fn func())

	// Subscribe добавляет дополнительного наблюдателя и возвращает функцию отписки
	Subscribe(fn func()) (unsubscribe func())
}

// Index - опциональный индекс заметки: либо позиция, либо отсутствие индекса (новая заметка).
type Index struct {
	pos int
	ok  bool
}

// NoIndex означает "новая заметка"
var NoIndex = Index{}

// At создает индекс существующей заметки
func At(pos int) Index {
	return Index{pos: pos, ok: true}
}

// Get возвращает позицию и признак ее наличия
func (i Index) Get() (int, bool) {
	return i.pos, i.ok
}

// IsSet проверяет, задан ли индекс
func (i Index) IsSet() bool {
	return i.ok
}
