// Package events provides the task lifecycle event types and a simple
// in-process publish/subscribe mechanism.
//
// The service layer emits a TaskEvent after every successful change to the
// task collection (created, updated, deleted). Handlers subscribe through an
// EventEmitter without the service knowing who listens; the AuditLogHandler
// records each change as a structured log line.
package events
