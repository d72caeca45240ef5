package projects

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/lib/pq"
)

func ListProjectsHandler(dbx *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := dbx.QueryContext(r.Context(), `
			SELECT id, name, created_at
			FROM projects
			ORDER BY id
		`)
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		result := []Project{}
		for rows.Next() {
			var p Project
			if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
				http.Error(w, "db scan error", http.StatusInternalServerError)
				return
			}
			result = append(result, p)
		}
		if err := rows.Err(); err != nil {
			http.Error(w, "db rows error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(result)
	}
}

func CreateProjectHandler(dbx *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		name := strings.TrimSpace(body.Name)
		if name == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}

		var p Project
		p.Name = name
		err := dbx.QueryRowContext(r.Context(), `
			INSERT INTO projects (name)
			VALUES ($1)
			RETURNING id, created_at
		`, name).Scan(&p.ID, &p.CreatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				http.Error(w, "project name already exists", http.StatusBadRequest)
				return
			}
			http.Error(w, "db insert error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(p)
	}
}

// isUniqueViolation recognizes a duplicate-name insert on either driver:
// lib/pq reports code 23505, modernc sqlite wraps the sqlite message.
func isUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
