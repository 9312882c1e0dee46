package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/task", nil)
	w := httptest.NewRecorder()

	RespondWithJSON(w, req, http.StatusCreated, map[string]interface{}{"id": "1"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":"1"}`, w.Body.String())
}

func TestRespondWithJSONEncodeFailure(t *testing.T) {
	logBuf, _ := logger.SetupTestLogger(t)
	req := httptest.NewRequest(http.MethodGet, "/task", nil)
	w := httptest.NewRecorder()

	RespondWithJSON(w, req, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	_, ok := logBuf.FindEntry("failed to encode JSON response")
	assert.True(t, ok, "Expected encode failure to be logged")
}

func TestRespondNoContent(t *testing.T) {
	w := httptest.NewRecorder()

	RespondNoContent(w)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestRespondWithError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/task/9", nil)
	w := httptest.NewRecorder()

	RespondWithError(w, req, http.StatusNotFound, "Task not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Task not found"}`, w.Body.String())
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		opts          []ResponseOption
		expectedLevel string
	}{
		{"server error logs at error", http.StatusInternalServerError, nil, "ERROR"},
		{"client error logs at debug", http.StatusBadRequest, nil, "DEBUG"},
		{"elevated client error logs at warn", http.StatusNotFound, []ResponseOption{WithElevatedLogLevel()}, "WARN"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			logBuf, _ := logger.SetupTestLogger(t)
			req := httptest.NewRequest(http.MethodPut, "/task/3", nil)
			w := httptest.NewRecorder()
			internalErr := errors.New("write /var/lib/tasks/state.json: disk full")

			RespondWithErrorAndLog(w, req, tc.status, "Something failed", internalErr, tc.opts...)

			assert.Equal(t, tc.status, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, map[string]string{"error": "Something failed"}, body, "internal details never reach the client")

			entry, ok := logBuf.FindEntry("API error response")
			require.True(t, ok)
			assert.Equal(t, tc.expectedLevel, entry["level"])
			assert.Equal(t, "write [REDACTED_PATH]: disk full", entry["error"])
			assert.Equal(t, "/task/3", entry["path"])
			assert.Equal(t, float64(tc.status), entry["status_code"])
		})
	}
}
