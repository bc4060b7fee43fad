package artists_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"gallery-app/internal/testutils"
)

func TestListArtistsExcludesVisitorsAndCredentials(t *testing.T) {
	r := testutils.SetupRouter(t)
	testutils.RegisterUser(t, r, "Ana", "ana@x.com", "secret1", "artist")
	testutils.RegisterUser(t, r, "Bob", "bob@x.com", "secret1", "visitor")

	w := testutils.DoJSON(t, r, "GET", "/api/artists", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var list []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode artists: %v", err)
	}
	if len(list) != 1 || list[0]["name"] != "Ana" {
		t.Fatalf("expected only the artist, got %+v", list)
	}
	if _, has := list[0]["email"]; has {
		t.Fatalf("public view leaks email: %+v", list[0])
	}
	if strings.Contains(w.Body.String(), "password") {
		t.Fatalf("public view leaks credential")
	}
}

func TestGetArtist(t *testing.T) {
	r := testutils.SetupRouter(t)
	_, anaID := testutils.RegisterUser(t, r, "Ana", "ana@x.com", "secret1", "artist")
	_, bobID := testutils.RegisterUser(t, r, "Bob", "bob@x.com", "secret1", "visitor")

	w := testutils.DoJSON(t, r, "GET", fmt.Sprintf("/api/artists/%d", anaID), "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	// A visitor id resolves to no artist.
	w = testutils.DoJSON(t, r, "GET", fmt.Sprintf("/api/artists/%d", bobID), "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("visitor id: expected 404, got %d", w.Code)
	}

	w = testutils.DoJSON(t, r, "GET", "/api/artists/9999", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing id: expected 404, got %d", w.Code)
	}
}
