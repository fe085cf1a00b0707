//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
)

func envOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func baseURL() string {
	return envOrDefault("INTEGRATION_BASE_URL", "http://localhost:8080")
}

// call issues a request with an optional JSON payload and decodes the JSON
// response into a generic map.
func call(t *testing.T, method, path string, payload any) (int, map[string]any) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, fmt.Sprintf("%s%s", baseURL(), path), body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	decoded := map[string]any{}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil && err != io.EOF {
		t.Fatalf("decode %s %s response: %v", method, path, err)
	}
	return resp.StatusCode, decoded
}

// createQuestion inserts a throwaway question and returns its id.
func createQuestion(t *testing.T, question, answer string) int {
	t.Helper()

	status, body := call(t, http.MethodPost, "/questions", map[string]any{
		"question":   question,
		"answer":     answer,
		"category":   1,
		"difficulty": 1,
	})
	if status != http.StatusOK {
		t.Fatalf("create question status: %d", status)
	}
	created, ok := body["created"].(float64)
	if !ok || created == 0 {
		t.Fatalf("create question returned no id: %v", body)
	}
	return int(created)
}
