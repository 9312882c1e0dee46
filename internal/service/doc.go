// Package service contains the application-specific use cases for tasks.
// It orchestrates the domain layer and the task store (defined in
// internal/store) and publishes lifecycle events after each change.
//
// Error handling:
//   - Store sentinels (store.ErrTaskNotFound, store.ErrInvalidEntity) and
//     domain validation errors stay visible through errors.Is.
//   - Unexpected errors are wrapped in TaskServiceError with the failing operation.
//   - The API layer maps service errors to HTTP status codes.
package service
