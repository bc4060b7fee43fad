package repo_test

import (
	"testing"
	"time"

	"gallery-app/internal/domain/gallery"
	"gallery-app/internal/domain/users"
	"gallery-app/internal/repo"
	"gallery-app/internal/testutils"
)

func TestUsersCreateConflict(t *testing.T) {
	db := testutils.SetupDB(t)
	r := repo.NewUsers(db)

	u := users.User{Name: "Ana", Email: "ana@x.com", Password: "h", Role: "artist", Avatar: "a"}
	if err := r.Create(&u); err != nil {
		t.Fatalf("first create: %v", err)
	}

	dup := users.User{Name: "Other", Email: "ana@x.com", Password: "h", Role: "visitor", Avatar: "a"}
	if err := r.Create(&dup); err != repo.ErrConflict {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// The original row is untouched.
	got, err := r.FindByID(u.ID)
	if err != nil || got.Name != "Ana" {
		t.Fatalf("original user overwritten: %+v %v", got, err)
	}
}

func TestArtworksOwnedMutations(t *testing.T) {
	db := testutils.SetupDB(t)
	r := repo.NewArtworks(db)

	a := gallery.Artwork{Title: "Sun", Category: "Abstract", Price: 100, Image: "i", Artist: "Ana", ArtistID: 1}
	if err := r.Create(&a); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Wrong owner and missing id are the same error.
	if _, err := r.UpdateOwned(a.ID, 2, map[string]interface{}{"title": "X"}); err != repo.ErrNotFound {
		t.Fatalf("wrong owner update: expected ErrNotFound, got %v", err)
	}
	if _, err := r.UpdateOwned(9999, 1, map[string]interface{}{"title": "X"}); err != repo.ErrNotFound {
		t.Fatalf("missing id update: expected ErrNotFound, got %v", err)
	}
	if _, err := r.DeleteOwned(a.ID, 2); err != repo.ErrNotFound {
		t.Fatalf("wrong owner delete: expected ErrNotFound, got %v", err)
	}

	updated, err := r.UpdateOwned(a.ID, 1, map[string]interface{}{"title": "Sunset"})
	if err != nil || updated.Title != "Sunset" {
		t.Fatalf("owner update: %+v %v", updated, err)
	}

	deleted, err := r.DeleteOwned(a.ID, 1)
	if err != nil || deleted.ID != a.ID {
		t.Fatalf("owner delete: %+v %v", deleted, err)
	}
	if _, err := r.FindByID(a.ID); err != repo.ErrNotFound {
		t.Fatalf("expected gone, got %v", err)
	}
}

func TestCommentsNewestFirst(t *testing.T) {
	db := testutils.SetupDB(t)
	r := repo.NewComments(db)

	base := time.Now().Add(-time.Hour)
	older := gallery.Comment{ArtworkID: 1, UserID: 1, UserName: "Bob", UserAvatar: "a", Text: "first", CreatedAt: base}
	newer := gallery.Comment{ArtworkID: 1, UserID: 1, UserName: "Bob", UserAvatar: "a", Text: "second", CreatedAt: base.Add(time.Minute)}
	other := gallery.Comment{ArtworkID: 2, UserID: 1, UserName: "Bob", UserAvatar: "a", Text: "elsewhere", CreatedAt: base}
	for _, c := range []*gallery.Comment{&older, &newer, &other} {
		if err := r.Create(c); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	list, err := r.ListForArtwork(1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].Text != "second" || list[1].Text != "first" {
		t.Fatalf("unexpected order: %+v", list)
	}
}
