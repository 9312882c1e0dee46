package events

import (
	"context"
	"log/slog"
)

// AuditLogHandler writes one structured log line per task lifecycle event.
type AuditLogHandler struct {
	logger *slog.Logger
}

// NewAuditLogHandler creates an AuditLogHandler that logs through logger.
func NewAuditLogHandler(logger *slog.Logger) *AuditLogHandler {
	return &AuditLogHandler{
		logger: logger.With("component", "task_audit"),
	}
}

// HandleEvent implements EventHandler.
func (h *AuditLogHandler) HandleEvent(ctx context.Context, event *TaskEvent) error {
	h.logger.InfoContext(ctx, "task changed",
		"event_id", event.ID,
		"event_type", event.Type,
		"task_id", event.TaskID,
		"occurred_at", event.CreatedAt)
	return nil
}
