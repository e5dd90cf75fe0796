package handlers_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"barcabuzz/internal/db"
	"barcabuzz/internal/models"
)

func TestFeedListsPublishedOnly(t *testing.T) {
	env := newTestEnv(t)
	author := createUser(t, "writer", "user")
	createPost(t, author, "Published headline", models.StatusPublished, timePtr(time.Now()))
	createPost(t, author, "Secret draft headline", models.StatusDraft, nil)

	w := env.get("/feed/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("feed: got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "rss+xml") {
		t.Errorf("wrong content type %q", ct)
	}

	body := w.Body.String()
	if !strings.Contains(body, "Published headline") {
		t.Error("published post missing from feed")
	}
	if strings.Contains(body, "Secret draft headline") {
		t.Error("draft leaked into feed")
	}
	if !strings.Contains(body, "<rss version=\"2.0\">") {
		t.Error("not an RSS 2.0 document")
	}
}

func TestSitemapCoversPostsAndTaxonomies(t *testing.T) {
	env := newTestEnv(t)
	author := createUser(t, "writer", "user")
	post := createPost(t, author, "Mapped post", models.StatusPublished, timePtr(time.Now()))
	db.DB.Create(&models.Category{Name: "Match Reports", Slug: "match-reports"})
	db.DB.Create(&models.Tag{Name: "pedri", Slug: "pedri"})

	w := env.get("/sitemap.xml", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("sitemap: got %d", w.Code)
	}

	body := w.Body.String()
	for _, frag := range []string{"/post/" + post.Slug + "/", "/category/match-reports/", "/tag/pedri/"} {
		if !strings.Contains(body, frag) {
			t.Errorf("sitemap missing %s", frag)
		}
	}
}

func TestRobotsDisallowsPrivateAreas(t *testing.T) {
	env := newTestEnv(t)

	w := env.get("/robots.txt", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("robots: got %d", w.Code)
	}
	body := w.Body.String()
	for _, path := range []string{"/dashboard/", "/drafts/", "/accounts/"} {
		if !strings.Contains(body, "Disallow: "+path) {
			t.Errorf("robots.txt should disallow %s", path)
		}
	}
}

func TestUploadRejectsNonImages(t *testing.T) {
	env := newTestEnv(t)
	user := createUser(t, "writer", "user")
	cookies := env.login(t, user.Username)

	w := env.postForm("/upload/image", nil, cookies)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing file: expected 400, got %d", w.Code)
	}
}
