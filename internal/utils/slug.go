package utils

import (
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify 把标题转成 URL 友好的 slug
func Slugify(title string) string {
	base := strings.ToLower(strings.TrimSpace(title))
	base = nonAlnum.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")
	if base == "" {
		return "post"
	}
	return base
}

// UniqueSlug derives a slug from title and appends an incrementing numeric
// suffix until no other row of model holds it. excludeID skips the row being
// edited so a post keeps its own slug.
func UniqueSlug(gdb *gorm.DB, model interface{}, title string, excludeID uint) (string, error) {
	base := Slugify(title)
	slug := base
	counter := 1
	for {
		var count int64
		q := gdb.Model(model).Where("slug = ?", slug)
		if excludeID > 0 {
			q = q.Where("id <> ?", excludeID)
		}
		if err := q.Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
		counter++
	}
}
