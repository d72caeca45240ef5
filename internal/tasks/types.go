package tasks

import "time"

// Status values for the task workflow.
const (
	StatusTodo       = "Todo"
	StatusInProgress = "In-Progress"
	StatusDone       = "Done"
)

// Priority values, shared with the intake suggestions.
const (
	PriorityLow  = "Low"
	PriorityMed  = "Med"
	PriorityHigh = "High"
)

type Task struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	ProjectID   int       `json:"project_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func ValidStatus(s string) bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMed, PriorityHigh:
		return true
	}
	return false
}
