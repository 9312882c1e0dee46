// Package store defines interfaces for task storage operations.
// These interfaces abstract the underlying storage mechanism from
// the application's core logic, allowing business rules to remain
// independent of where tasks are kept.
package store
