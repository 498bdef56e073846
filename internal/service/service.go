package service

import (
	"context"

	"notes-screen/internal/model"
	"notes-screen/internal/store"
)

// SessionService интерфейс для работы с экранными сессиями.
// Каждая сессия владеет собственным хранилищем заметок.
type SessionService interface {
	// Open создает новую сессию с пустым хранилищем и возвращает ее UUID
	Open(ctx context.Context) (string, error)

	// Close завершает сессию и освобождает хранилище
	Close(ctx context.Context, id string) error

	// Count возвращает количество заметок в сессии
	Count(ctx context.Context, id string) (int, error)

	// List возвращает копию заметок сессии в порядке отображения
	List(ctx context.Context, id string) ([]model.Note, error)

	// Get возвращает заметку по индексу
	Get(ctx context.Context, id string, index int) (model.Note, error)

	// Add добавляет заметку и возвращает ее индекс
	Add(ctx context.Context, id string, note model.Note) (int, error)

	// Update заменяет заметку по индексу
	Update(ctx context.Context, id string, note model.Note, index int) error

	// Delete удаляет заметку по индексу
	Delete(ctx context.Context, id string, index int) error

	// Clear удаляет все заметки сессии
	Clear(ctx context.Context, id string) error

	// Save добавляет (без индекса) или обновляет заметку и возвращает ее индекс
	Save(ctx context.Context, id string, note model.Note, index store.Index) (int, error)

	// Subscribe подписывает на события изменения сессии; возвращает канал и функцию отписки
	Subscribe(ctx context.Context, id string) (<-chan model.ChangeEvent, func(), error)
}
