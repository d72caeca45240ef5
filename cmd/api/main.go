package main

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/rs/cors"

	"smart-tasks-backend/internal/config"
	"smart-tasks-backend/internal/db"
	"smart-tasks-backend/internal/intake"
	"smart-tasks-backend/internal/middleware"
	"smart-tasks-backend/internal/projects"
	"smart-tasks-backend/internal/tasks"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}

	database, err := db.Connect(cfg.DBDriver, cfg.DSN())
	if err != nil {
		log.Fatal("failed to connect DB: ", err)
	}
	defer database.Close()

	if err := db.Migrate(database, cfg.DBDriver); err != nil {
		log.Fatal("failed to migrate DB: ", err)
	}

	log.Printf("connected to %s store", cfg.DBDriver)

	mux := newMux(database)

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	handler := middleware.RequestLog(c.Handler(mux))

	log.Printf("API server is running on %s", cfg.HTTPAddr)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, handler))
}

// newMux wires every route onto a fresh mux.
func newMux(database *sql.DB) *http.ServeMux {
	mux := http.NewServeMux()

	// Health endpoint
	mux.HandleFunc("GET /healthz", healthzHandler)

	// ----- PROJECTS API -----
	mux.HandleFunc("GET /api/projects", projects.ListProjectsHandler(database))
	mux.HandleFunc("POST /api/projects", projects.CreateProjectHandler(database))

	// ----- TASKS API -----
	mux.HandleFunc("GET /api/projects/{id}/tasks", tasks.ListTasksHandler(database))
	mux.HandleFunc("POST /api/projects/{id}/tasks", tasks.CreateTaskHandler(database))
	mux.HandleFunc("PATCH /api/tasks/{id}", tasks.UpdateTaskHandler(database))

	// ----- SMART INTAKE API -----
	mux.HandleFunc("POST /api/ai/intake", intake.Handler())

	return mux
}

func healthzHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"ok":true}`))
}
