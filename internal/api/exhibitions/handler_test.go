package exhibitions_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"gallery-app/internal/testutils"

	"github.com/gin-gonic/gin"
)

func TestListExhibitionsPublic(t *testing.T) {
	r := testutils.SetupRouter(t)

	w := testutils.DoJSON(t, r, "GET", "/api/exhibitions", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var list []json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("expected array body, got %s", w.Body.String())
	}
}

func TestCreateExhibitionArtistOnly(t *testing.T) {
	r := testutils.SetupRouter(t)

	body := gin.H{
		"title":    "Spring Show",
		"location": "Mumbai",
		"date":     "2025-03-01",
		"endDate":  "2025-03-10",
		"type":     "upcoming",
		"image":    "img-ex",
	}

	w := testutils.DoJSON(t, r, "POST", "/api/exhibitions", "", body)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated: expected 401, got %d", w.Code)
	}

	visitorToken, _ := testutils.RegisterUser(t, r, "Bob", "bob@x.com", "secret1", "visitor")
	w = testutils.DoJSON(t, r, "POST", "/api/exhibitions", visitorToken, body)
	if w.Code != http.StatusForbidden {
		t.Fatalf("visitor: expected 403, got %d", w.Code)
	}

	artistToken, artistID := testutils.RegisterUser(t, r, "Ana", "ana@x.com", "secret1", "artist")
	w = testutils.DoJSON(t, r, "POST", "/api/exhibitions", artistToken, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("artist: expected 201, got %d body=%s", w.Code, w.Body.String())
	}

	var created struct {
		Title            string   `json:"title"`
		Type             string   `json:"type"`
		RegistrationOpen bool     `json:"registrationOpen"`
		Featured         bool     `json:"featured"`
		Artworks         []string `json:"artworks"`
		ArtistID         uint     `json:"artistId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode exhibition: %v", err)
	}
	if created.Title != "Spring Show" || created.ArtistID != artistID {
		t.Fatalf("unexpected exhibition: %+v", created)
	}
	// Defaults: open registration, not featured, empty artwork list.
	if !created.RegistrationOpen || created.Featured || created.Artworks == nil || len(created.Artworks) != 0 {
		t.Fatalf("defaults not applied: %+v", created)
	}
}

func TestCreateExhibitionValidation(t *testing.T) {
	r := testutils.SetupRouter(t)
	token, _ := testutils.RegisterUser(t, r, "Ana", "ana@x.com", "secret1", "artist")

	w := testutils.DoJSON(t, r, "POST", "/api/exhibitions", token, gin.H{
		"title": "No location", "date": "2025-03-01", "endDate": "2025-03-10", "image": "x",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing location: expected 400, got %d", w.Code)
	}

	w = testutils.DoJSON(t, r, "POST", "/api/exhibitions", token, gin.H{
		"title": "Bad type", "location": "Pune", "date": "d", "endDate": "e", "image": "x", "type": "ongoing",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad type: expected 400, got %d", w.Code)
	}
}
