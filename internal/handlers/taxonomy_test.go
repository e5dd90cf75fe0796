package handlers_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"barcabuzz/internal/db"
	"barcabuzz/internal/models"
)

func TestSearchIsCaseInsensitive(t *testing.T) {
	env := newTestEnv(t)
	author := createUser(t, "writer", "user")

	messi := createPost(t, author, "Messi magic at the Bernabéu", models.StatusPublished, timePtr(time.Now()))
	createPost(t, author, "Training ground notes", models.StatusPublished, timePtr(time.Now()))
	body := createPost(t, author, "Quiet news day", models.StatusPublished, timePtr(time.Now()))
	db.DB.Model(body).UpdateColumn("text", "Even MESSI rested today.")

	w := env.get("/search/?q=messi", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("search: got %d", w.Code)
	}
	_, data := env.render.lastRender()
	posts := data["Posts"].([]models.Post)
	if len(posts) != 2 {
		t.Fatalf("expected 2 matches (title + body), got %d", len(posts))
	}
	found := map[string]bool{}
	for _, p := range posts {
		found[p.Slug] = true
	}
	if !found[messi.Slug] || !found[body.Slug] {
		t.Errorf("wrong matches: %v", found)
	}
}

func TestSearchSkipsDraftsAndEmptyQuery(t *testing.T) {
	env := newTestEnv(t)
	author := createUser(t, "writer", "user")
	createPost(t, author, "Messi draft thoughts", models.StatusDraft, nil)

	w := env.get("/search/?q=messi", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("search: got %d", w.Code)
	}
	_, data := env.render.lastRender()
	if posts := data["Posts"].([]models.Post); len(posts) != 0 {
		t.Errorf("draft leaked into search results, got %d", len(posts))
	}

	// 空查询直接返回空结果
	w = env.get("/search/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("empty search: got %d", w.Code)
	}
	_, data = env.render.lastRender()
	if posts := data["Posts"].([]models.Post); len(posts) != 0 {
		t.Errorf("empty query should return nothing, got %d", len(posts))
	}
}

func TestCategoryListsOnlyItsPublishedPosts(t *testing.T) {
	env := newTestEnv(t)
	author := createUser(t, "writer", "user")

	category := models.Category{Name: "Match Reports", Slug: "match-reports"}
	db.DB.Create(&category)
	other := models.Category{Name: "Opinion", Slug: "opinion"}
	db.DB.Create(&other)

	in := createPost(t, author, "Full time report", models.StatusPublished, timePtr(time.Now()))
	db.DB.Model(in).UpdateColumn("category_id", category.ID)
	out := createPost(t, author, "Hot take", models.StatusPublished, timePtr(time.Now()))
	db.DB.Model(out).UpdateColumn("category_id", other.ID)
	draft := createPost(t, author, "Half written report", models.StatusDraft, nil)
	db.DB.Model(draft).UpdateColumn("category_id", category.ID)

	w := env.get("/category/match-reports/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("category: got %d", w.Code)
	}
	_, data := env.render.lastRender()
	posts := data["Posts"].([]models.Post)
	if len(posts) != 1 || posts[0].Slug != in.Slug {
		t.Errorf("expected only the published post of the category, got %d", len(posts))
	}

	if w := env.get("/category/no-such/", nil); w.Code != http.StatusNotFound {
		t.Errorf("unknown category: expected 404, got %d", w.Code)
	}
}

func TestTagListsTaggedPosts(t *testing.T) {
	env := newTestEnv(t)
	author := createUser(t, "writer", "user")
	cookies := env.login(t, author.Username)

	// 通过表单创建，练到标签的 get-or-create 路径
	w := env.postForm("/post/new/", url.Values{
		"title":        {"Pedri masterclass"},
		"text":         {"Midfield control."},
		"tags":         {"pedri, midfield, pedri"},
		"save_publish": {"1"},
	}, cookies)
	if w.Code != http.StatusFound {
		t.Fatalf("create: got %d", w.Code)
	}

	var tags []models.Tag
	db.DB.Find(&tags)
	if len(tags) != 2 {
		t.Fatalf("duplicate tag input should dedup, got %d tags", len(tags))
	}

	if w := env.get("/tag/pedri/", nil); w.Code != http.StatusOK {
		t.Fatalf("tag page: got %d", w.Code)
	}
	_, data := env.render.lastRender()
	if posts := data["Posts"].([]models.Post); len(posts) != 1 {
		t.Errorf("expected 1 tagged post, got %d", len(posts))
	}
}
