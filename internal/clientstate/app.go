// Package clientstate is the client-side companion of the gallery API: it
// reconciles the server-issued identity with locally owned preference state
// (favorites, likes, follows, inquiries) persisted on the device.
package clientstate

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	keyUser      = "user"
	keyToken     = "token"
	keyFavorites = "favorites"
	keyLikes     = "likes"
	keyFollows   = "follows"
	keyInquiries = "inquiries"
)

// SessionUser is the server-authoritative identity slice. It is only ever
// replaced wholesale from login/register/profile responses.
type SessionUser struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

// Inquiry is an outgoing contact request, kept as an append-only local log.
type Inquiry struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Message      string `json:"message"`
	ArtistID     string `json:"artistId,omitempty"`
	ArtistName   string `json:"artistName,omitempty"`
	ArtworkTitle string `json:"artworkTitle,omitempty"`
	Date         string `json:"date"`
}

// App is the state container. It is passed by reference to whatever consumes
// it; there is deliberately no package-level instance.
type App struct {
	storage Storage

	user      *SessionUser
	token     string
	favorites []string
	likes     []string
	follows   []string
	inquiries []Inquiry
}

// New restores all state slices from storage. Malformed persisted entries
// are dropped silently; restore never fails.
func New(storage Storage) *App {
	a := &App{
		storage:   storage,
		favorites: []string{},
		likes:     []string{},
		follows:   []string{},
		inquiries: []Inquiry{},
	}

	if raw, ok := storage.Get(keyUser); ok {
		var u SessionUser
		if err := json.Unmarshal([]byte(raw), &u); err == nil {
			a.user = &u
		}
	}
	if raw, ok := storage.Get(keyToken); ok {
		a.token = raw
	}
	restoreSlice(storage, keyFavorites, &a.favorites)
	restoreSlice(storage, keyLikes, &a.likes)
	restoreSlice(storage, keyFollows, &a.follows)
	restoreSlice(storage, keyInquiries, &a.inquiries)

	return a
}

func restoreSlice[T any](storage Storage, key string, dst *[]T) {
	raw, ok := storage.Get(key)
	if !ok {
		return
	}
	var parsed []T
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil || parsed == nil {
		return
	}
	*dst = parsed
}

func (a *App) User() *SessionUser { return a.user }

func (a *App) Token() string { return a.token }

func (a *App) Favorites() []string { return a.favorites }

func (a *App) Likes() []string { return a.likes }

func (a *App) Follows() []string { return a.follows }

func (a *App) Inquiries() []Inquiry { return a.inquiries }

// Login installs a fresh identity and session token and persists both.
// Register behaves identically, so it shares the implementation.
func (a *App) Login(user SessionUser, token string) {
	a.user = &user
	a.token = token
	a.persistJSON(keyUser, user)
	_ = a.storage.Set(keyToken, token)
}

func (a *App) Register(user SessionUser, token string) {
	a.Login(user, token)
}

// Logout clears identity and token only. Favorites, likes, follows and
// inquiries are device preferences, not account data, and survive.
func (a *App) Logout() {
	a.user = nil
	a.token = ""
	_ = a.storage.Delete(keyUser)
	_ = a.storage.Delete(keyToken)
}

// ToggleFavorite adds the id when absent and removes it when present.
func (a *App) ToggleFavorite(artworkID string) {
	a.favorites = toggle(a.favorites, artworkID)
	a.persistJSON(keyFavorites, a.favorites)
}

func (a *App) ToggleLike(artworkID string) {
	a.likes = toggle(a.likes, artworkID)
	a.persistJSON(keyLikes, a.likes)
}

func (a *App) ToggleFollow(artistID string) {
	a.follows = toggle(a.follows, artistID)
	a.persistJSON(keyFollows, a.follows)
}

// AddInquiry appends with a locally generated id and timestamp.
func (a *App) AddInquiry(inq Inquiry) Inquiry {
	inq.ID = uuid.NewString()
	if inq.Date == "" {
		inq.Date = time.Now().Format(time.RFC3339)
	}
	a.inquiries = append(a.inquiries, inq)
	a.persistJSON(keyInquiries, a.inquiries)
	return inq
}

func toggle(ids []string, id string) []string {
	for i, existing := range ids {
		if existing == id {
			return append(ids[:i:i], ids[i+1:]...)
		}
	}
	return append(ids, id)
}

func (a *App) persistJSON(key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = a.storage.Set(key, string(data))
}
