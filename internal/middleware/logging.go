package middleware

import (
	"net/http"
	"time"

	"med-catalog/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLogger loguea cada request al terminar (status, bytes, duración).
// Va después de RequestID para tener el id disponible y antes de chimw.Recoverer,
// que reporta los panics a través del mismo LogEntry.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return chimw.RequestLogger(&logFormatter{log: log})
}

type logFormatter struct {
	log logger.Logger
}

func (f *logFormatter) NewLogEntry(r *http.Request) chimw.LogEntry {
	return &logEntry{
		log: f.log,
		fields: map[string]any{
			"method":      r.Method,
			"path":        r.URL.Path,
			"request_id":  GetRequestID(r.Context()),
			"remote_addr": r.RemoteAddr,
		},
	}
}

type logEntry struct {
	log    logger.Logger
	fields map[string]any
}

func (e *logEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ interface{}) {
	if status == 0 {
		status = http.StatusOK
	}

	fields := e.with(map[string]any{
		"status":      status,
		"bytes":       bytes,
		"duration_ms": elapsed.Milliseconds(),
	})

	if status >= http.StatusInternalServerError {
		e.log.Warn("request completed", fields)
		return
	}
	e.log.Info("request completed", fields)
}

func (e *logEntry) Panic(v interface{}, stack []byte) {
	e.log.Error("panic recovered", e.with(map[string]any{
		"panic": v,
		"stack": string(stack),
	}))
}

func (e *logEntry) with(extra map[string]any) map[string]any {
	out := make(map[string]any, len(e.fields)+len(extra))
	for k, v := range e.fields {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
