package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/LegalAid-Assistant/internal/infrastructure/monitoring/logging"
)

// spyLogger records the level and message of every entry.
type spyLogger struct {
	mu      sync.Mutex
	entries []spyEntry
}

type spyEntry struct {
	level string
	msg   string
}

func (l *spyLogger) record(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, spyEntry{level: level, msg: msg})
}

func (l *spyLogger) Debug(msg string, _ ...logging.Field) { l.record("debug", msg) }
func (l *spyLogger) Info(msg string, _ ...logging.Field)  { l.record("info", msg) }
func (l *spyLogger) Warn(msg string, _ ...logging.Field)  { l.record("warn", msg) }
func (l *spyLogger) Error(msg string, _ ...logging.Field) { l.record("error", msg) }
func (l *spyLogger) Fatal(msg string, _ ...logging.Field) { l.record("fatal", msg) }

func (l *spyLogger) With(_ ...logging.Field) logging.Logger { return l }
func (l *spyLogger) Named(_ string) logging.Logger          { return l }

func (l *spyLogger) last(t *testing.T) spyEntry {
	t.Helper()
	l.mu.Lock()
	defer l.mu.Unlock()
	require.NotEmpty(t, l.entries)
	return l.entries[len(l.entries)-1]
}

func (l *spyLogger) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func serveWithLogging(logger logging.Logger, status int, path string, skip ...string) {
	handler := RequestLogging(logger, nil, skip...)(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
		}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
}

func TestRequestLoggingLevels(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
		wantMsg   string
	}{
		{"success", http.StatusOK, "info", "http request served"},
		{"client error", http.StatusBadRequest, "warn", "http request rejected"},
		{"server error", http.StatusInternalServerError, "error", "http request failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &spyLogger{}
			serveWithLogging(logger, tt.status, "/api/v1/analyze")

			entry := logger.last(t)
			assert.Equal(t, tt.wantLevel, entry.level)
			assert.Equal(t, tt.wantMsg, entry.msg)
		})
	}
}

func TestRequestLoggingSkipsConfiguredPaths(t *testing.T) {
	logger := &spyLogger{}
	serveWithLogging(logger, http.StatusOK, "/health", "/health")
	assert.Zero(t, logger.count())
}

func TestStatusRecorderDefaultsTo200(t *testing.T) {
	logger := &spyLogger{}
	handler := RequestLogging(logger, nil)(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "info", logger.last(t).level)
}

func TestStatusRecorderKeepsFirstStatus(t *testing.T) {
	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}
	rec.WriteHeader(http.StatusTeapot)
	rec.WriteHeader(http.StatusOK)
	assert.Equal(t, http.StatusTeapot, rec.status)
}
