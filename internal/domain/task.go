package domain

import (
	"fmt"
	"strings"
	"time"
)

// TaskStatusPending is the status every task starts with.
// Status is otherwise a free-form label with no enforced transitions.
const TaskStatusPending = "Pending"

// Common validation errors for Task
var (
	ErrEmptyTaskTitle    = fmt.Errorf("%w: task title cannot be empty", ErrValidation)
	ErrEmptyTaskAssignee = fmt.Errorf("%w: task assignee cannot be empty", ErrValidation)
	ErrEmptyTaskCategory = fmt.Errorf("%w: task category cannot be empty", ErrValidation)
	ErrEmptyTaskDueDate  = fmt.Errorf("%w: task due date cannot be empty", ErrValidation)
	ErrInvalidDueDate    = fmt.Errorf("%w: due date is not a valid ISO-8601 date", ErrInvalidFormat)
)

// dueDateLayouts lists the accepted ISO-8601 forms, most specific first.
var dueDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Task represents a unit of work assigned to someone under a category.
type Task struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	CreationDate time.Time `json:"creationDate"`
	DueDate      time.Time `json:"dueDate"`
	AssignedTo   string    `json:"assignedTo"`
	Category     string    `json:"category"`
	Status       string    `json:"status"`
}

// NewTask creates a new Task with status Pending and the creation date set
// to now. The ID is left empty; the store assigns it.
// Returns an error if validation fails.
func NewTask(title, description string, dueDate time.Time, assignedTo, category string) (*Task, error) {
	task := &Task{
		Title:        title,
		Description:  description,
		CreationDate: time.Now().UTC(),
		DueDate:      dueDate,
		AssignedTo:   assignedTo,
		Category:     category,
		Status:       TaskStatusPending,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks that all required fields are present.
func (t *Task) Validate() error {
	if t.Title == "" {
		return ErrEmptyTaskTitle
	}

	if t.DueDate.IsZero() {
		return ErrEmptyTaskDueDate
	}

	if t.AssignedTo == "" {
		return ErrEmptyTaskAssignee
	}

	if t.Category == "" {
		return ErrEmptyTaskCategory
	}

	return nil
}

// IsAssignedTo reports whether the task's assignee matches name, ignoring case.
func (t *Task) IsAssignedTo(name string) bool {
	return strings.EqualFold(t.AssignedTo, name)
}

// InCategory reports whether the task's category matches category, ignoring case.
func (t *Task) InCategory(category string) bool {
	return strings.EqualFold(t.Category, category)
}

// TaskPatch is a partial update. A nil field means "not provided" and leaves
// the current value alone; a non-nil field is applied even when empty.
type TaskPatch struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	AssignedTo  *string
	Category    *string
	Status      *string
}

// IsEmpty reports whether the patch carries no fields at all.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.DueDate == nil &&
		p.AssignedTo == nil && p.Category == nil && p.Status == nil
}

// Apply applies the patch to t. The patch is applied to a copy first and only
// committed if the result still validates, so t is unchanged on error.
// ID and CreationDate are never modified.
func (p TaskPatch) Apply(t *Task) error {
	updated := *t

	if p.Title != nil {
		updated.Title = *p.Title
	}
	if p.Description != nil {
		updated.Description = *p.Description
	}
	if p.DueDate != nil {
		updated.DueDate = *p.DueDate
	}
	if p.AssignedTo != nil {
		updated.AssignedTo = *p.AssignedTo
	}
	if p.Category != nil {
		updated.Category = *p.Category
	}
	if p.Status != nil {
		updated.Status = *p.Status
	}

	if err := updated.Validate(); err != nil {
		return err
	}

	*t = updated
	return nil
}

// ParseDueDate parses an ISO-8601 date or date-time string. Values without a
// zone offset are interpreted as UTC.
func ParseDueDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrEmptyTaskDueDate
	}

	for _, layout := range dueDateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, ErrInvalidDueDate
}
