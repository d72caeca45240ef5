package tasks

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// ListTasksHandler serves GET /api/projects/{id}/tasks with an optional
// ?status= filter.
func ListTasksHandler(dbx *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := strconv.Atoi(r.PathValue("id"))
		if err != nil {
			http.Error(w, "invalid project id", http.StatusBadRequest)
			return
		}

		exists, err := projectExists(dbx, r, projectID)
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
		if !exists {
			http.Error(w, "project not found", http.StatusNotFound)
			return
		}

		status := r.URL.Query().Get("status")
		if status != "" && !ValidStatus(status) {
			http.Error(w, "invalid status filter", http.StatusBadRequest)
			return
		}

		query := `
			SELECT id, title, COALESCE(description,''), status, priority, project_id, created_at
			FROM tasks
			WHERE project_id = $1
			ORDER BY id
		`
		args := []any{projectID}
		if status != "" {
			query = `
				SELECT id, title, COALESCE(description,''), status, priority, project_id, created_at
				FROM tasks
				WHERE project_id = $1 AND status = $2
				ORDER BY id
			`
			args = append(args, status)
		}

		rows, err := dbx.QueryContext(r.Context(), query, args...)
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		result := []Task{}
		for rows.Next() {
			var t Task
			if err := rows.Scan(
				&t.ID, &t.Title, &t.Description, &t.Status, &t.Priority, &t.ProjectID, &t.CreatedAt,
			); err != nil {
				http.Error(w, "db scan error", http.StatusInternalServerError)
				return
			}
			result = append(result, t)
		}
		if err := rows.Err(); err != nil {
			http.Error(w, "db rows error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(result)
	}
}

// CreateTaskHandler serves POST /api/projects/{id}/tasks. Status defaults to
// Todo and priority to Med, matching the schema defaults.
func CreateTaskHandler(dbx *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := strconv.Atoi(r.PathValue("id"))
		if err != nil {
			http.Error(w, "invalid project id", http.StatusBadRequest)
			return
		}

		var body struct {
			Title       string  `json:"title"`
			Description *string `json:"description"`
			Status      string  `json:"status"`
			Priority    string  `json:"priority"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		title := strings.TrimSpace(body.Title)
		if title == "" {
			http.Error(w, "title is required", http.StatusBadRequest)
			return
		}
		if body.Status == "" {
			body.Status = StatusTodo
		}
		if body.Priority == "" {
			body.Priority = PriorityMed
		}
		if !ValidStatus(body.Status) {
			http.Error(w, "invalid status", http.StatusBadRequest)
			return
		}
		if !ValidPriority(body.Priority) {
			http.Error(w, "invalid priority", http.StatusBadRequest)
			return
		}

		exists, err := projectExists(dbx, r, projectID)
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
		if !exists {
			http.Error(w, "project not found", http.StatusNotFound)
			return
		}

		// omitted description stays NULL in the store
		var desc *string
		if body.Description != nil {
			d := strings.TrimSpace(*body.Description)
			desc = &d
		}

		t := Task{
			Title:     title,
			Status:    body.Status,
			Priority:  body.Priority,
			ProjectID: projectID,
		}
		if desc != nil {
			t.Description = *desc
		}
		err = dbx.QueryRowContext(r.Context(), `
			INSERT INTO tasks (title, description, status, priority, project_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at
		`, t.Title, desc, t.Status, t.Priority, t.ProjectID).Scan(&t.ID, &t.CreatedAt)
		if err != nil {
			http.Error(w, "db insert error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(t)
	}
}

// UpdateTaskHandler serves PATCH /api/tasks/{id}. Only the fields present in
// the body change; project_id is never updatable. A body with no recognized
// fields returns the task as it is.
func UpdateTaskHandler(dbx *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, err := strconv.Atoi(r.PathValue("id"))
		if err != nil {
			http.Error(w, "invalid task id", http.StatusBadRequest)
			return
		}

		var body struct {
			Title       *string `json:"title"`
			Description *string `json:"description"`
			Status      *string `json:"status"`
			Priority    *string `json:"priority"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if _, err := fetchTask(dbx, r, taskID); err != nil {
			http.Error(w, "task not found", http.StatusNotFound)
			return
		}

		var sets []string
		var args []any
		addSet := func(column string, value any) {
			args = append(args, value)
			sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
		}

		if body.Title != nil {
			title := strings.TrimSpace(*body.Title)
			if title == "" {
				http.Error(w, "title must not be empty", http.StatusBadRequest)
				return
			}
			addSet("title", title)
		}
		if body.Description != nil {
			addSet("description", strings.TrimSpace(*body.Description))
		}
		if body.Status != nil {
			if !ValidStatus(*body.Status) {
				http.Error(w, "invalid status", http.StatusBadRequest)
				return
			}
			addSet("status", *body.Status)
		}
		if body.Priority != nil {
			if !ValidPriority(*body.Priority) {
				http.Error(w, "invalid priority", http.StatusBadRequest)
				return
			}
			addSet("priority", *body.Priority)
		}

		if len(sets) > 0 {
			args = append(args, taskID)
			query := fmt.Sprintf(
				"UPDATE tasks SET %s WHERE id = $%d",
				strings.Join(sets, ", "), len(args),
			)
			if _, err := dbx.ExecContext(r.Context(), query, args...); err != nil {
				http.Error(w, "db update error", http.StatusInternalServerError)
				return
			}
		}

		t, err := fetchTask(dbx, r, taskID)
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(t)
	}
}

func projectExists(dbx *sql.DB, r *http.Request, projectID int) (bool, error) {
	var one int
	err := dbx.QueryRowContext(r.Context(),
		`SELECT 1 FROM projects WHERE id = $1`, projectID,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func fetchTask(dbx *sql.DB, r *http.Request, taskID int) (Task, error) {
	var t Task
	err := dbx.QueryRowContext(r.Context(), `
		SELECT id, title, COALESCE(description,''), status, priority, project_id, created_at
		FROM tasks
		WHERE id = $1
	`, taskID).Scan(
		&t.ID, &t.Title, &t.Description, &t.Status, &t.Priority, &t.ProjectID, &t.CreatedAt,
	)
	return t, err
}
