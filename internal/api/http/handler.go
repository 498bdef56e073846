package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"notes-screen/internal/model"
	svc "notes-screen/internal/service"
	"notes-screen/internal/store"
)

// maxBodyBytes - ограничение размера тела запроса
const maxBodyBytes = 1 << 20

// errBadRequest помечает ошибки разбора запроса
var errBadRequest = errors.New("invalid request")

// Handler реализует HTTP API экранных сессий
type Handler struct {
	sessions svc.SessionService
	log      *zap.Logger

	// serverCtx отменяется при shutdown: WebSocket соединения после hijack
	// не видят отмену контекста запроса и слушают этот контекст
	serverCtx context.Context
}

// NewHandler создает новый экземпляр HTTP хэндлера
func NewHandler(sessions svc.SessionService, serverCtx context.Context, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	if serverCtx == nil {
		serverCtx = context.Background()
	}
	return &Handler{
		sessions:  sessions,
		log:       log,
		serverCtx: serverCtx,
	}
}

// Register регистрирует маршруты на mux
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/sessions", h.OpenSession)
	mux.HandleFunc("DELETE /v1/sessions/{id}", h.CloseSession)
	mux.HandleFunc("GET /v1/sessions/{id}/notes", h.ListNotes)
	mux.HandleFunc("POST /v1/sessions/{id}/notes", h.AddNote)
	mux.HandleFunc("DELETE /v1/sessions/{id}/notes", h.ClearNotes)
	mux.HandleFunc("GET /v1/sessions/{id}/notes/{index}", h.GetNote)
	mux.HandleFunc("PUT /v1/sessions/{id}/notes/{index}", h.UpdateNote)
	mux.HandleFunc("DELETE /v1/sessions/{id}/notes/{index}", h.DeleteNote)
	mux.HandleFunc("POST /v1/sessions/{id}/save", h.SaveNote)
	mux.HandleFunc("GET /v1/sessions/{id}/events", h.Events)
	mux.HandleFunc("GET /healthz", h.Health)
}

// OpenSessionResponse ответ на создание сессии
type OpenSessionResponse struct {
	ID string `json:"id"`
}

// ListNotesResponse список заметок сессии
type ListNotesResponse struct {
	Notes []model.Note `json:"notes"`
	Count int          `json:"count"`
}

// NoteResponse заметка и ее позиция
type NoteResponse struct {
	Index int        `json:"index"`
	Note  model.Note `json:"note"`
}

// SaveNoteRequest запрос сохранения; отсутствие index означает новую заметку
type SaveNoteRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Index *int   `json:"index,omitempty"`
}

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// OpenSession создает новую экранную сессию
func (h *Handler) OpenSession(w http.ResponseWriter, r *http.Request) {
	id, err := h.sessions.Open(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, OpenSessionResponse{ID: id})
}

// CloseSession завершает сессию
func (h *Handler) CloseSession(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Close(r.Context(), r.PathValue("id")); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListNotes возвращает все заметки сессии
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.sessions.List(r.Context(), r.PathValue("id"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ListNotesResponse{Notes: notes, Count: len(notes)})
}

// GetNote возвращает заметку по индексу
func (h *Handler) GetNote(w http.ResponseWriter, r *http.Request) {
	index, err := pathIndex(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	note, err := h.sessions.Get(r.Context(), r.PathValue("id"), index)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, NoteResponse{Index: index, Note: note})
}

// AddNote добавляет заметку в конец списка
func (h *Handler) AddNote(w http.ResponseWriter, r *http.Request) {
	var note model.Note
	if err := decodeJSON(w, r, &note); err != nil {
		h.handleError(w, err)
		return
	}

	index, err := h.sessions.Add(r.Context(), r.PathValue("id"), note)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, NoteResponse{Index: index, Note: note})
}

// UpdateNote заменяет заметку по индексу
func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	index, err := pathIndex(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var note model.Note
	if err := decodeJSON(w, r, &note); err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.sessions.Update(r.Context(), r.PathValue("id"), note, index); err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, NoteResponse{Index: index, Note: note})
}

// DeleteNote удаляет заметку по индексу
func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	index, err := pathIndex(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.sessions.Delete(r.Context(), r.PathValue("id"), index); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ClearNotes удаляет все заметки сессии
func (h *Handler) ClearNotes(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Clear(r.Context(), r.PathValue("id")); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SaveNote - единая точка сохранения для экрана редактора
func (h *Handler) SaveNote(w http.ResponseWriter, r *http.Request) {
	var req SaveNoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	index := store.NoIndex
	if req.Index != nil {
		index = store.At(*req.Index)
	}

	note := model.NewNote(req.Title, req.Body)
	pos, err := h.sessions.Save(r.Context(), r.PathValue("id"), note, index)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, NoteResponse{Index: pos, Note: note})
}

// Health - проверка живости
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func pathIndex(r *http.Request) (int, error) {
	raw := r.PathValue("index")
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: index %q is not an integer", errBadRequest, raw)
	}
	return index, nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", errBadRequest, err)
	}

	// Тело должно содержать ровно одно JSON значение
	if err := dec.Decode(new(json.RawMessage)); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after JSON value")
		}
		return fmt.Errorf("%w: %w", errBadRequest, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
