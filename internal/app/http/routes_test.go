package routes_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"gallery-app/internal/testutils"
)

func TestHealth(t *testing.T) {
	r := testutils.SetupRouter(t)

	w := testutils.DoJSON(t, r, "GET", "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		OK      bool   `json:"ok"`
		Service string `json:"service"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if !resp.OK || resp.Service == "" {
		t.Fatalf("unexpected health body: %s", w.Body.String())
	}
}
