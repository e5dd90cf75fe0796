package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"barcabuzz/internal/db"
	"barcabuzz/internal/models"
)

func TestDashboardRoutesByRole(t *testing.T) {
	env := newTestEnv(t)
	user := createUser(t, "writer", "user")
	admin := createUser(t, "boss", "admin")

	userCookies := env.login(t, user.Username)
	if w := env.get("/dashboard/", userCookies); w.Code != http.StatusOK {
		t.Fatalf("user dashboard: got %d", w.Code)
	}
	if name, _ := env.render.lastRender(); name != "dashboards/user.html" {
		t.Errorf("regular user should land on the user dashboard, got %s", name)
	}

	adminCookies := env.login(t, admin.Username)
	if w := env.get("/dashboard/", adminCookies); w.Code != http.StatusOK {
		t.Fatalf("admin dashboard: got %d", w.Code)
	}
	if name, _ := env.render.lastRender(); name != "dashboards/admin.html" {
		t.Errorf("admin should land on the admin dashboard, got %s", name)
	}
}

func TestUserDashboardStats(t *testing.T) {
	env := newTestEnv(t)
	author := createUser(t, "writer", "user")
	other := createUser(t, "other", "user")

	p1 := createPost(t, author, "First piece", models.StatusPublished, timePtr(time.Now()))
	db.DB.Model(p1).UpdateColumn("views_count", 40)
	p2 := createPost(t, author, "Second piece", models.StatusPublished, timePtr(time.Now()))
	db.DB.Model(p2).UpdateColumn("views_count", 2)
	createPost(t, author, "A draft", models.StatusDraft, nil)
	createPost(t, other, "Not mine", models.StatusPublished, timePtr(time.Now()))

	cookies := env.login(t, author.Username)
	if w := env.get("/user-dashboard/", cookies); w.Code != http.StatusOK {
		t.Fatalf("user dashboard: got %d", w.Code)
	}

	_, data := env.render.lastRender()
	if got := data["PublishedCount"].(int64); got != 2 {
		t.Errorf("published count: want 2, got %d", got)
	}
	if got := data["DraftCount"].(int64); got != 1 {
		t.Errorf("draft count: want 1, got %d", got)
	}
	if got := data["TotalViews"].(int64); got != 42 {
		t.Errorf("total views: want 42, got %d", got)
	}
}

func TestAdminDashboardStats(t *testing.T) {
	env := newTestEnv(t)
	admin := createUser(t, "boss", "admin")
	author := createUser(t, "writer", "user")
	banned := createUser(t, "banned", "user")
	db.DB.Model(banned).UpdateColumn("is_active", false)

	post := createPost(t, author, "Front page", models.StatusPublished, timePtr(time.Now()))
	db.DB.Create(&models.Comment{PostID: post.ID, AuthorName: "A", Text: "ok", Approved: true})
	db.DB.Create(&models.Comment{PostID: post.ID, AuthorName: "B", Text: "pending", Approved: false})

	cookies := env.login(t, admin.Username)
	if w := env.get("/admin-dashboard/", cookies); w.Code != http.StatusOK {
		t.Fatalf("admin dashboard: got %d", w.Code)
	}

	_, data := env.render.lastRender()
	if got := data["TotalPosts"].(int64); got != 1 {
		t.Errorf("total posts: want 1, got %d", got)
	}
	if got := data["TotalComments"].(int64); got != 2 {
		t.Errorf("total comments: want 2, got %d", got)
	}
	if got := data["PendingComments"].(int64); got != 1 {
		t.Errorf("pending comments: want 1, got %d", got)
	}
	if got := data["ActiveUsers"].(int64); got != 2 {
		t.Errorf("active users: want 2, got %d", got)
	}
}
