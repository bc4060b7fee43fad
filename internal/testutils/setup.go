package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"gallery-app/config"
	"gallery-app/database"
	routes "gallery-app/internal/app/http"
	"gallery-app/internal/domain/gallery"
	"gallery-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var testDBSeq int64

// SetupDB initializes a unique in-memory SQLite database, swaps the global
// database.DB to it, and migrates all models. The previous DB handle is
// restored on cleanup.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	seq := atomic.AddInt64(&testDBSeq, 1)
	dsn := fmt.Sprintf("file:gallery_%d?mode=memory&cache=shared", seq)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	prevDB := database.DB
	t.Cleanup(func() {
		if prevDB != nil && database.DB == gdb {
			database.DB = prevDB
		}
		_ = sqlDB.Close()
	})

	if err := gdb.AutoMigrate(
		&users.User{},
		&gallery.Artwork{},
		&gallery.Exhibition{},
		&gallery.Comment{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	database.DB = gdb
	return gdb
}

// SetupRouter returns a fully wired engine over a fresh test database.
func SetupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	SetupDB(t)
	config.JWT_SECRET = "test-secret"
	r := gin.New()
	routes.RegisterRoutes(r)
	return r
}

// DoJSON performs a request with an optional JSON body and bearer token.
func DoJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// RegisterUser registers through the public endpoint and returns the issued
// token and user id.
func RegisterUser(t *testing.T, r *gin.Engine, name, email, password, role string) (string, uint) {
	t.Helper()
	w := DoJSON(t, r, "POST", "/api/auth/register", "", gin.H{
		"name":     name,
		"email":    email,
		"password": password,
		"role":     role,
	})
	if w.Code != 201 {
		t.Fatalf("register %s: expected 201, got %d body=%s", email, w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode register response: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("register %s: empty token", email)
	}
	return resp.Token, resp.User.ID
}
