package server

import (
	"encoding/json"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	httpapi "notes-screen/internal/api/http"
	"notes-screen/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.Server.PortHTTP = 0
	cfg.Server.GracefulShutdownTimeout = 2

	srv, err := NewServer(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NoError(t, srv.Initialize())
	return srv
}

func TestServer_StartAndShutdown(t *testing.T) {
	srv := newTestServer(t)
	errChan := srv.Start()

	_, port, err := net.SplitHostPort(srv.HTTPAddr)
	require.NoError(t, err)
	addr := "127.0.0.1:" + port
	baseURL := "http://" + addr

	resp, err := http.Get(baseURL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Post(baseURL+"/v1/sessions", "application/json", nil)
	require.NoError(t, err)
	var open httpapi.OpenSessionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&open))
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Лента изменений должна закрыться при shutdown
	conn, _, err := websocket.DefaultDialer.Dial("ws://"+addr+"/v1/sessions/"+open.ID+"/events", nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, srv.Shutdown())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = conn.ReadMessage()
	require.Error(t, err)

	select {
	case err := <-errChan:
		t.Fatalf("unexpected server error: %v", err)
	default:
	}

	_, err = http.Get(baseURL + "/healthz")
	assert.Error(t, err, "server must not accept connections after shutdown")
}

func TestNewServer_FillsDefaults(t *testing.T) {
	srv, err := NewServer(&config.Config{Server: &config.ConfigServer{PortHTTP: 0}}, nil)
	require.NoError(t, err)
	defer srv.Listener.Close()

	assert.NotNil(t, srv.Config.HTTP)
	assert.NotNil(t, srv.Config.Logger)
	assert.NotEmpty(t, srv.HTTPAddr)
}
