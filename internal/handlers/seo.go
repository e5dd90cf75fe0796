package handlers

import (
	"fmt"
	"html"
	"net/http"
	"time"

	"barcabuzz/internal/db"
	"barcabuzz/internal/models"
	"barcabuzz/internal/utils"

	"github.com/gin-gonic/gin"
)

type SEOHandler struct{}

func NewSEOHandler() *SEOHandler {
	return &SEOHandler{}
}

// RobotsTxt 返回robots.txt内容
func (h *SEOHandler) RobotsTxt(c *gin.Context) {
	siteURL := getSiteURL()
	content := fmt.Sprintf(`User-agent: *
Allow: /

# 禁止爬取后台和账号页面
Disallow: /dashboard/
Disallow: /user-dashboard/
Disallow: /admin-dashboard/
Disallow: /drafts/
Disallow: /accounts/

Sitemap: %s/sitemap.xml
`, siteURL)

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.String(http.StatusOK, content)
}

// SitemapXML 动态生成sitemap.xml
func (h *SEOHandler) SitemapXML(c *gin.Context) {
	siteURL := getSiteURL()
	now := time.Now().Format("2006-01-02")

	xml := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
`

	// 首页
	xml += fmt.Sprintf(`  <url>
    <loc>%s/</loc>
    <lastmod>%s</lastmod>
    <changefreq>daily</changefreq>
    <priority>1.0</priority>
  </url>
`, siteURL, now)

	// 已发布文章
	var posts []models.Post
	db.DB.Select("slug, updated_at").
		Where("status = ?", models.StatusPublished).
		Order("published_at DESC").
		Find(&posts)
	for _, post := range posts {
		xml += fmt.Sprintf(`  <url>
    <loc>%s/post/%s/</loc>
    <lastmod>%s</lastmod>
    <changefreq>weekly</changefreq>
    <priority>0.8</priority>
  </url>
`, siteURL, post.Slug, post.UpdatedAt.Format("2006-01-02"))
	}

	// 分类与标签页
	var categories []models.Category
	db.DB.Select("slug").Find(&categories)
	for _, category := range categories {
		xml += fmt.Sprintf(`  <url>
    <loc>%s/category/%s/</loc>
    <changefreq>daily</changefreq>
    <priority>0.6</priority>
  </url>
`, siteURL, category.Slug)
	}

	var tags []models.Tag
	db.DB.Select("slug").Find(&tags)
	for _, tag := range tags {
		xml += fmt.Sprintf(`  <url>
    <loc>%s/tag/%s/</loc>
    <changefreq>daily</changefreq>
    <priority>0.5</priority>
  </url>
`, siteURL, tag.Slug)
	}

	xml += `</urlset>`

	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.String(http.StatusOK, xml)
}

// Feed RSS 2.0 输出 - 最新 20 篇已发布文章
func (h *SEOHandler) Feed(c *gin.Context) {
	siteURL := getSiteURL()

	var posts []models.Post
	db.DB.Preload("User").
		Where("status = ?", models.StatusPublished).
		Order("published_at DESC").
		Limit(20).
		Find(&posts)

	xml := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>` + html.EscapeString("Barça Buzz — Latest") + `</title>
    <link>` + siteURL + `/</link>
    <description>Latest posts from Barça Buzz</description>
`

	for _, post := range posts {
		pubDate := post.CreatedAt
		if post.PublishedAt != nil {
			pubDate = *post.PublishedAt
		}
		description := utils.Excerpt(post.Excerpt, post.Text, 180)
		xml += fmt.Sprintf(`    <item>
      <title>%s</title>
      <link>%s/post/%s/</link>
      <guid>%s/post/%s/</guid>
      <description>%s</description>
      <pubDate>%s</pubDate>
    </item>
`, html.EscapeString(post.Title), siteURL, post.Slug, siteURL, post.Slug,
			html.EscapeString(description), pubDate.Format(time.RFC1123Z))
	}

	xml += `  </channel>
</rss>`

	c.Header("Content-Type", "application/rss+xml; charset=utf-8")
	c.String(http.StatusOK, xml)
}
