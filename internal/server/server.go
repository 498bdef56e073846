package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	httpapi "notes-screen/internal/api/http"
	"notes-screen/internal/config"
	"notes-screen/internal/metrics"
	"notes-screen/internal/service/sessions"
)

// Server представляет HTTP сервер приложения
type Server struct {
	HTTPServer *http.Server
	HTTPAddr   string
	Listener   net.Listener

	// Контекст сервера для graceful shutdown WebSocket лент
	Ctx    context.Context
	Cancel context.CancelFunc

	Config   *config.Config
	Registry *prometheus.Registry

	log *zap.Logger
}

// NewServer создает сервер и открывает listener на настроенном порту.
// Порт 0 означает случайный свободный порт (используется в тестах).
func NewServer(cfg *config.Config, log *zap.Logger) (*Server, error) {
	cfg.FillDefaults()
	if log == nil {
		log = zap.NewNop()
	}

	httpAddr := "0.0.0.0:" + strconv.Itoa(cfg.Server.PortHTTP)

	listener, err := net.Listen("tcp", httpAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", httpAddr, err)
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())

	return &Server{
		HTTPAddr: listener.Addr().String(),
		Listener: listener,
		Ctx:      serverCtx,
		Cancel:   serverCancel,
		Config:   cfg,
		Registry: prometheus.NewRegistry(),
		log:      log,
	}, nil
}

// Initialize инициализирует компоненты сервера (Metrics → Service → Handler → Router)
func (s *Server) Initialize() error {
	s.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(s.Registry)

	sessionSvc := sessions.NewSessionService(s.log, m, s.Config.Sessions.MaxSessions)
	s.log.Info("initialized session service", zap.Int("max_sessions", s.Config.Sessions.MaxSessions))

	handler := httpapi.NewHandler(sessionSvc, s.Ctx, s.log)
	router := httpapi.NewRouter(handler, metrics.Handler(s.Registry), s.Config.HTTP, s.log)

	srv := s.Config.Server
	s.HTTPServer = &http.Server{
		Handler:           router,
		ReadTimeout:       seconds(srv.HTTPReadTimeout),
		WriteTimeout:      seconds(srv.HTTPWriteTimeout),
		IdleTimeout:       seconds(srv.HTTPIdleTimeout),
		ReadHeaderTimeout: seconds(srv.HTTPReadHeaderTimeout),
	}

	return nil
}

// Start запускает HTTP сервер в горутине
// Возвращает канал ошибок для отслеживания ошибок сервера
func (s *Server) Start() <-chan error {
	errChan := make(chan error, 1)

	go func() {
		s.log.Info("HTTP server listening", zap.String("addr", s.HTTPAddr))
		if err := s.HTTPServer.Serve(s.Listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	return errChan
}

// Shutdown выполняет graceful shutdown сервера
func (s *Server) Shutdown() error {
	s.log.Info("starting graceful shutdown")

	// Отменяем контекст сервера до Shutdown: WebSocket соединения после hijack
	// не отслеживаются http.Server и завершаются только по этому контексту
	s.Cancel()

	shutdownTimeout := seconds(s.Config.Server.GracefulShutdownTimeout)
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.HTTPServer.Shutdown(ctx); err != nil {
		s.log.Warn("graceful shutdown timeout, forcing stop", zap.Error(err))
		_ = s.HTTPServer.Close()
		return err
	}

	s.log.Info("HTTP server stopped gracefully")
	return nil
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
