package httpapi

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"notes-screen/internal/service/sessions"
)

// Коды ошибок в теле ответа
const (
	codeNoteNotFound    = "NOTE_NOT_FOUND"
	codeSessionNotFound = "SESSION_NOT_FOUND"
	codeTooManySessions = "TOO_MANY_SESSIONS"
	codeValidation      = "VALIDATION_ERROR"
	codeTooLarge        = "PAYLOAD_TOO_LARGE"
	codeCanceled        = "CANCELED"
	codeInternal        = "INTERNAL_ERROR"
)

// handleError конвертирует внутренние ошибки в HTTP статусы с детализацией
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	status, code := classify(err)

	msg := err.Error()
	if code == codeInternal {
		h.log.Error("request failed", zap.Error(err))
		msg = "internal error"
	}

	writeJSON(w, status, ErrorResponse{Error: msg, Code: code})
}

func classify(err error) (int, string) {
	var tooLarge *http.MaxBytesError

	switch {
	case errors.Is(err, sessions.ErrNoteNotFound):
		return http.StatusNotFound, codeNoteNotFound
	case errors.Is(err, sessions.ErrSessionNotFound):
		return http.StatusNotFound, codeSessionNotFound
	case errors.Is(err, sessions.ErrTooManySessions):
		return http.StatusServiceUnavailable, codeTooManySessions
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge, codeTooLarge
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest, codeValidation
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusRequestTimeout, codeCanceled
	default:
		return http.StatusInternalServerError, codeInternal
	}
}
