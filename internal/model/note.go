package model

// Note представляет заметку (доменная модель).
// Значение заменяется целиком: частичного обновления полей нет.
type Note struct {
	Title string `json:"title"` // Заголовок заметки
	Body  string `json:"body"`  // Текст заметки
}

// NewNote создает заметку из заголовка и текста
func NewNote(title, body string) Note {
	return Note{Title: title, Body: body}
}

// IsEmpty проверяет, пуста ли заметка
func (n Note) IsEmpty() bool {
	return n.Title == "" && n.Body == ""
}
