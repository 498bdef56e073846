package httpapi

import (
	"net/http"
	"strings"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"notes-screen/internal/api/http/middleware"
	"notes-screen/internal/config"
)

// NewRouter собирает mux с маршрутами API и /metrics и оборачивает его в middleware.
// metricsHandler может быть nil.
func NewRouter(h *Handler, metricsHandler http.Handler, cfg *config.ConfigHTTP, log *zap.Logger) http.Handler {
	if cfg == nil {
		cfg = config.Default().HTTP
	}
	if log == nil {
		log = zap.NewNop()
	}

	mux := http.NewServeMux()
	h.Register(mux)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}

	// Применение middleware (в обратном порядке выполнения):
	// 1. CORS (самый внешний слой, отвечает на preflight)
	// 2. Logging (логирует все запросы)
	// 3. Rate Limiting (ограничивает количество запросов)
	// 4. Auth (bearer токен для /v1/)
	var handler http.Handler = mux
	handler = middleware.Auth(log, handler, cfg.AuthToken)
	handler = middleware.RateLimit(log, handler, cfg.RateLimitRPS, cfg.RateLimitBurst)
	handler = middleware.Logging(log, handler)
	handler = setupCORS(cfg).Handler(handler)

	return handler
}

// setupCORS настраивает CORS middleware используя конфигурацию
func setupCORS(cfg *config.ConfigHTTP) *cors.Cors {
	origins := strings.Split(cfg.CORSAllowedOrigins, ",")
	// Убираем пробелы из origins
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	maxAge := cfg.CORSMaxAge
	if maxAge == 0 {
		maxAge = 86400 // 24 часа по умолчанию
	}

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{
			"Content-Type",
			"Authorization",
			"X-Requested-With",
		},
		AllowCredentials: true,
		MaxAge:           maxAge,
	})
}
