package intake

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandlerSuggestion(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/ai/intake",
		strings.NewReader(`{"input": "I need to urgently fix the login bug!"}`))
	rec := httptest.NewRecorder()

	Handler()(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %q", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}

	var res Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Title != "Urgently fix the login bug" {
		t.Errorf("title = %q", res.Title)
	}
	if res.Priority != PriorityHigh {
		t.Errorf("priority = %q, want High", res.Priority)
	}
}

func TestHandlerRejectsEmptyInput(t *testing.T) {
	for _, body := range []string{`{"input": ""}`, `{"input": "   "}`, `{}`} {
		req := httptest.NewRequest(http.MethodPost, "/api/ai/intake", strings.NewReader(body))
		rec := httptest.NewRecorder()

		Handler()(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestHandlerRejectsBadJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/ai/intake", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	Handler()(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
