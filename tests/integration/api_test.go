//go:build integration
// +build integration

package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestHealthz(t *testing.T) {
	resp, err := http.Get(fmt.Sprintf("%s/healthz", baseURL()))
	if err != nil {
		t.Fatalf("health check request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}
}

func TestCategoriesListing(t *testing.T) {
	status, body := call(t, http.MethodGet, "/categories", nil)
	if status != http.StatusOK {
		t.Fatalf("unexpected status: %d", status)
	}
	if body["success"] != true {
		t.Fatalf("expected success envelope, got %v", body)
	}
	if body["total_categories"].(float64) < 1 {
		t.Fatalf("expected seeded categories, got %v", body["total_categories"])
	}
}

func TestQuestionLifecycle(t *testing.T) {
	status, before := call(t, http.MethodGet, "/questions", nil)
	if status != http.StatusOK {
		t.Fatalf("list questions status: %d", status)
	}
	totalBefore := int(before["total_questions"].(float64))

	id := createQuestion(t, "Integration: what color is the sky?", "Blue")

	status, after := call(t, http.MethodGet, "/questions", nil)
	if status != http.StatusOK {
		t.Fatalf("list questions status: %d", status)
	}
	if got := int(after["total_questions"].(float64)); got != totalBefore+1 {
		t.Fatalf("total_questions: want %d, got %d", totalBefore+1, got)
	}

	status, deleted := call(t, http.MethodDelete, fmt.Sprintf("/questions/%d", id), nil)
	if status != http.StatusOK {
		t.Fatalf("delete status: %d", status)
	}
	if int(deleted["deleted"].(float64)) != id {
		t.Fatalf("deleted id mismatch: %v", deleted["deleted"])
	}

	// Deleting again must fail: the row is gone for good.
	status, body := call(t, http.MethodDelete, fmt.Sprintf("/questions/%d", id), nil)
	if status != http.StatusNotFound {
		t.Fatalf("second delete status: %d (%v)", status, body)
	}
	if body["message"] != "resource not found" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestSearchFindsCreatedQuestion(t *testing.T) {
	id := createQuestion(t, "Integration search marker xylophone?", "Yes")
	defer call(t, http.MethodDelete, fmt.Sprintf("/questions/%d", id), nil)

	status, body := call(t, http.MethodPost, "/questions/search", map[string]any{
		"search_term": "XYLOPHONE",
	})
	if status != http.StatusOK {
		t.Fatalf("search status: %d", status)
	}
	if int(body["total_questions"].(float64)) < 1 {
		t.Fatalf("search found nothing: %v", body)
	}
}

func TestQuizExhaustion(t *testing.T) {
	id := createQuestion(t, "Integration quiz marker?", "Marker")
	defer call(t, http.MethodDelete, fmt.Sprintf("/questions/%d", id), nil)

	previous := []int{}
	for i := 0; i < 1000; i++ {
		status, body := call(t, http.MethodPost, "/quizzes", map[string]any{
			"previous_questions": previous,
			"quiz_category":      map[string]any{"id": 1, "type": "Science"},
		})
		if status == http.StatusNotFound {
			return // category exhausted, quiz over
		}
		if status != http.StatusOK {
			t.Fatalf("quiz status: %d (%v)", status, body)
		}
		q := body["question"].(map[string]any)
		qid := int(q["id"].(float64))
		for _, prev := range previous {
			if prev == qid {
				t.Fatalf("question %d repeated", qid)
			}
		}
		previous = append(previous, qid)
	}
	t.Fatal("quiz never exhausted after 1000 draws")
}

func TestUnknownRouteGetsEnvelope(t *testing.T) {
	status, body := call(t, http.MethodGet, "/no/such/route", nil)
	if status != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", status)
	}
	if body["message"] != "resource not found" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestCORSHeadersPresent(t *testing.T) {
	resp, err := http.Get(fmt.Sprintf("%s/categories", baseURL()))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got == "" {
		t.Fatal("missing Access-Control-Allow-Origin header")
	}
	if got := resp.Header.Get("X-Request-ID"); got == "" {
		t.Fatal("missing X-Request-ID header")
	}
}
