package models

import (
	"testing"
	"time"
)

func TestVisibleTo(t *testing.T) {
	author := &User{ID: 1, Role: "user"}
	stranger := &User{ID: 2, Role: "user"}
	admin := &User{ID: 3, Role: "admin"}

	published := &Post{UserID: 1, Status: StatusPublished}
	draft := &Post{UserID: 1, Status: StatusDraft}
	archived := &Post{UserID: 1, Status: StatusArchived}

	if !published.VisibleTo(nil) {
		t.Error("published post must be public")
	}
	if draft.VisibleTo(nil) {
		t.Error("draft visible to anonymous")
	}
	if draft.VisibleTo(stranger) {
		t.Error("draft visible to stranger")
	}
	if !draft.VisibleTo(author) {
		t.Error("draft hidden from its author")
	}
	if !draft.VisibleTo(admin) {
		t.Error("draft hidden from admin")
	}
	if archived.VisibleTo(stranger) {
		t.Error("archived post visible to stranger")
	}
}

func TestPublishStampsTime(t *testing.T) {
	p := &Post{Status: StatusDraft}
	now := time.Now()
	p.Publish(now)
	if p.Status != StatusPublished {
		t.Errorf("status = %s", p.Status)
	}
	if p.PublishedAt == nil || !p.PublishedAt.Equal(now) {
		t.Error("PublishedAt not stamped")
	}
}

func TestDisplayName(t *testing.T) {
	cases := []struct {
		user User
		want string
	}{
		{User{Username: "culer10"}, "culer10"},
		{User{Username: "culer10", FirstName: "Lionel"}, "Lionel"},
		{User{Username: "culer10", FirstName: "Lionel", LastName: "Messi"}, "Lionel Messi"},
		{User{Username: "culer10", LastName: "Messi"}, "Messi"},
	}
	for _, c := range cases {
		if got := c.user.DisplayName(); got != c.want {
			t.Errorf("DisplayName(%+v) = %q, want %q", c.user, got, c.want)
		}
	}
}
