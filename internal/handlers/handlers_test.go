package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"barcabuzz/internal/db"
	"barcabuzz/internal/middleware"
	"barcabuzz/internal/models"
	"barcabuzz/internal/router"
	"barcabuzz/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq int64

// captureRender stands in for the HTML renderer so tests can assert on the
// template key and the data a handler passed, without executing templates.
type captureRender struct {
	mu   sync.Mutex
	name string
	data gin.H
}

func (r *captureRender) Instance(name string, data interface{}) render.Render {
	r.mu.Lock()
	r.name = name
	if h, ok := data.(gin.H); ok {
		r.data = h
	} else {
		r.data = nil
	}
	r.mu.Unlock()
	return &capturedPage{name: name}
}

func (r *captureRender) lastRender() (string, gin.H) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.name, r.data
}

type capturedPage struct {
	name string
}

func (p *capturedPage) Render(w http.ResponseWriter) error {
	_, err := fmt.Fprint(w, p.name)
	return err
}

func (p *capturedPage) WriteContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
}

type testEnv struct {
	router *gin.Engine
	render *captureRender
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	db.DB = gdb

	// 首页缓存跨用例残留，先清掉
	utils.GetCache().Delete("home:feed")

	capture := &captureRender{}
	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("barcabuzz_session", store))
	r.HTMLRender = capture
	r.Use(middleware.LoadUser())
	router.RegisterRoutes(r)

	return &testEnv{router: r, render: capture}
}

func (e *testEnv) get(path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) postForm(path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// createUser inserts an account directly and returns it.
func createUser(t *testing.T, username, role string) *models.User {
	t.Helper()
	hash, err := utils.HashPassword("password123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: hash,
		Role:     role,
		IsActive: true,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return &user
}

// login performs a real login request and returns the session cookies.
func (e *testEnv) login(t *testing.T, username string) []*http.Cookie {
	t.Helper()
	w := e.postForm("/accounts/login/", url.Values{
		"username": {username},
		"password": {"password123"},
	}, nil)
	if w.Code != http.StatusFound {
		t.Fatalf("login %s: expected redirect, got %d", username, w.Code)
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatalf("login %s: no session cookie set", username)
	}
	return cookies
}

func createPost(t *testing.T, author *models.User, title, status string, publishedAt *time.Time) *models.Post {
	t.Helper()
	slug, err := utils.UniqueSlug(db.DB, &models.Post{}, title, 0)
	if err != nil {
		t.Fatalf("slug for %q: %v", title, err)
	}
	post := models.Post{
		UserID:      author.ID,
		Title:       title,
		Slug:        slug,
		Text:        "Some body text about the match.",
		Status:      status,
		PublishedAt: publishedAt,
	}
	if err := db.DB.Create(&post).Error; err != nil {
		t.Fatalf("create post %q: %v", title, err)
	}
	return &post
}

func timePtr(t time.Time) *time.Time {
	return &t
}
