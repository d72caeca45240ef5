package intake

import (
	"encoding/json"
	"net/http"
)

// Handler serves POST /api/ai/intake. It is a thin wrapper over Analyze and
// persists nothing; the client decides whether to create a task from the
// suggestion.
func Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Input string `json:"input"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		res, err := Analyze(body.Input)
		if err != nil {
			http.Error(w, "input is required", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(res)
	}
}
