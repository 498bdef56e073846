package model

// ChangeEvent - уведомление об изменении коллекции заметок экранной сессии
type ChangeEvent struct {
	SessionID string `json:"session_id"` // UUID сессии
	Op        string `json:"op"`         // Операция: add, update, delete, clear, save
	Seq       uint64 `json:"seq"`        // Порядковый номер изменения в сессии (с 1)
	Count     int    `json:"count"`      // Количество заметок после изменения
}

// Операции хранилища
const (
	OpAdd    = "add"
	OpUpdate = "update"
	OpDelete = "delete"
	OpClear  = "clear"
	OpSave   = "save"
)
