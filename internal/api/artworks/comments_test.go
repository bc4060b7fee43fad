package artworks_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"gallery-app/internal/testutils"

	"github.com/gin-gonic/gin"
)

func addComment(t *testing.T, r *gin.Engine, token string, artworkID uint, text string) uint {
	t.Helper()
	w := testutils.DoJSON(t, r, "POST", fmt.Sprintf("/api/artworks/%d/comments", artworkID), token, gin.H{"text": text})
	if w.Code != http.StatusCreated {
		t.Fatalf("add comment: expected 201, got %d body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode comment: %v", err)
	}
	return resp.ID
}

func TestCommentRequiresAuth(t *testing.T) {
	r := testutils.SetupRouter(t)
	anaToken, _ := testutils.RegisterUser(t, r, "Ana", "ana@x.com", "secret1", "artist")
	id := createArtwork(t, r, anaToken, gin.H{"title": "Sun", "category": "Abstract", "price": 100, "image": "img1"})

	w := testutils.DoJSON(t, r, "POST", fmt.Sprintf("/api/artworks/%d/comments", id), "", gin.H{"text": "hi"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestCommentOnMissingArtwork(t *testing.T) {
	r := testutils.SetupRouter(t)
	token, _ := testutils.RegisterUser(t, r, "Bob", "bob@x.com", "secret1", "visitor")

	w := testutils.DoJSON(t, r, "POST", "/api/artworks/9999/comments", token, gin.H{"text": "hi"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", w.Code, w.Body.String())
	}

	w = testutils.DoJSON(t, r, "GET", "/api/artworks/9999/comments", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("list on missing artwork: expected 404, got %d", w.Code)
	}
}

// Deletion is allowed for the comment's author or the artwork's owning
// artist, and for nobody else.
func TestDeleteCommentAuthorOrArtist(t *testing.T) {
	r := testutils.SetupRouter(t)
	anaToken, _ := testutils.RegisterUser(t, r, "Ana", "ana@x.com", "secret1", "artist")
	bobToken, _ := testutils.RegisterUser(t, r, "Bob", "bob@x.com", "secret1", "visitor")
	calToken, _ := testutils.RegisterUser(t, r, "Cal", "cal@x.com", "secret1", "visitor")

	artworkID := createArtwork(t, r, anaToken, gin.H{"title": "Sun", "category": "Abstract", "price": 100, "image": "img1"})

	// Third party: forbidden.
	c1 := addComment(t, r, bobToken, artworkID, "one")
	w := testutils.DoJSON(t, r, "DELETE", fmt.Sprintf("/api/artworks/%d/comments/%d", artworkID, c1), calToken, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("third party: expected 403, got %d body=%s", w.Code, w.Body.String())
	}

	// Author: allowed.
	w = testutils.DoJSON(t, r, "DELETE", fmt.Sprintf("/api/artworks/%d/comments/%d", artworkID, c1), bobToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("author: expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	var ok struct {
		OK bool `json:"ok"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &ok)
	if !ok.OK {
		t.Fatalf("expected ok:true, got %s", w.Body.String())
	}

	// Artwork owner: allowed for someone else's comment.
	c2 := addComment(t, r, bobToken, artworkID, "two")
	w = testutils.DoJSON(t, r, "DELETE", fmt.Sprintf("/api/artworks/%d/comments/%d", artworkID, c2), anaToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("artist: expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	// Gone now.
	w = testutils.DoJSON(t, r, "DELETE", fmt.Sprintf("/api/artworks/%d/comments/%d", artworkID, c2), anaToken, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("deleted comment: expected 404, got %d", w.Code)
	}
}
