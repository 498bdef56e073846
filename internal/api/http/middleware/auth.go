package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const (
	// authorizationHeader - заголовок с токеном в формате "Bearer <token>"
	authorizationHeader = "Authorization"
	// tokenQueryParam - токен в query для WebSocket клиентов, которые не могут задать заголовок
	tokenQueryParam = "access_token"
	// protectedPrefix - защищаются только маршруты API; /healthz и /metrics открыты
	protectedPrefix = "/v1/"
)

// Auth проверяет bearer токен для маршрутов API.
// Пустой token отключает проверку.
func Auth(log *zap.Logger, next http.Handler, token string) http.Handler {
	if token == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Preflight обрабатывается CORS и не несет заголовка авторизации
		if r.Method == http.MethodOptions || !strings.HasPrefix(r.URL.Path, protectedPrefix) {
			next.ServeHTTP(w, r)
			return
		}

		got, reason := requestToken(r)
		if reason == "" && subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			reason = "invalid token"
		}
		if reason != "" {
			log.Warn("unauthenticated request",
				zap.String("path", r.URL.Path),
				zap.String("remote_addr", r.RemoteAddr),
				zap.String("reason", reason),
			)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"` + reason + `","code":"UNAUTHENTICATED"}` + "\n"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requestToken извлекает токен; непустой reason описывает, почему его нет
func requestToken(r *http.Request) (token, reason string) {
	header := r.Header.Get(authorizationHeader)
	if header == "" {
		if q := r.URL.Query().Get(tokenQueryParam); q != "" {
			return q, ""
		}
		return "", "authorization header not provided"
	}

	if !strings.HasPrefix(header, "Bearer ") {
		return "", "invalid authorization header format"
	}
	return strings.TrimPrefix(header, "Bearer "), ""
}
