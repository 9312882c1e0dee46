package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/task-api/internal/config"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:                   config.DefaultPort,
			LogLevel:               "debug",
			ShutdownTimeoutSeconds: 2,
		},
	}
}

func newTestApplication(t *testing.T) (*application, *logger.TestLogBuffer) {
	t.Helper()
	buf, log := logger.SetupTestLogger(t)
	app, err := newApplication(testConfig(), log)
	require.NoError(t, err)
	return app, buf
}

func TestNewApplication(t *testing.T) {
	t.Run("wires dependencies", func(t *testing.T) {
		app, buf := newTestApplication(t)

		assert.NotNil(t, app.taskStore)
		assert.NotNil(t, app.taskService)
		assert.NotNil(t, app.eventEmitter)
		_, found := buf.FindEntry("Application initialized successfully")
		assert.True(t, found)
	})

	t.Run("nil config", func(t *testing.T) {
		_, log := logger.SetupTestLogger(t)
		_, err := newApplication(nil, log)
		assert.Error(t, err)
	})

	t.Run("nil logger", func(t *testing.T) {
		_, err := newApplication(testConfig(), nil)
		assert.Error(t, err)
	})
}

func TestInitializeApp(t *testing.T) {
	t.Setenv("TASKAPI_SERVER_PORT", "4321")
	t.Setenv("TASKAPI_SERVER_LOG_LEVEL", "warn")
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	app, err := initializeApp()
	require.NoError(t, err)
	assert.Equal(t, 4321, app.config.Server.Port)
	assert.Equal(t, "warn", app.config.Server.LogLevel)
}

func TestInitializeAppRejectsInvalidConfig(t *testing.T) {
	t.Setenv("TASKAPI_SERVER_LOG_LEVEL", "verbose")

	_, err := initializeApp()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestServeShutsDownOnContextCancel(t *testing.T) {
	app, buf := newTestApplication(t)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	baseURL := "http://" + listener.Addr().String()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- app.serve(ctx, listener, app.setupRouter())
	}()

	client := &http.Client{Timeout: 2 * time.Second}

	resp, err := client.Get(baseURL + "/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	body := `{"title":"ship it","dueDate":"2024-05-01","assignedTo":"sam","category":"ops"}`
	resp, err = client.Post(baseURL+"/task/", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var created map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "1", created["id"])

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	entry, found := buf.FindEntry("Discarding in-memory tasks")
	require.True(t, found)
	assert.EqualValues(t, 1, entry["task_count"])
	_, found = buf.FindEntry("Server shutdown completed")
	assert.True(t, found)
}

func TestStartHTTPServerFailsWhenPortTaken(t *testing.T) {
	app, _ := newTestApplication(t)

	listener, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer func() { _ = listener.Close() }()
	app.config.Server.Port = listener.Addr().(*net.TCPAddr).Port

	err = app.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}
