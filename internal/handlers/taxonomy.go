package handlers

import (
	"net/http"
	"strings"

	"barcabuzz/internal/db"
	"barcabuzz/internal/models"

	"github.com/gin-gonic/gin"
)

type TaxonomyHandler struct{}

func NewTaxonomyHandler() *TaxonomyHandler {
	return &TaxonomyHandler{}
}

// CategoryPosts 分类下的已发布文章列表
func (h *TaxonomyHandler) CategoryPosts(c *gin.Context) {
	var category models.Category
	if err := db.DB.Where("slug = ?", c.Param("slug")).First(&category).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Category not found")
		return
	}

	var posts []models.Post
	db.DB.Preload("User").Preload("Category").
		Where("category_id = ? AND status = ?", category.ID, models.StatusPublished).
		Order("published_at DESC").
		Find(&posts)
	fillCounts(posts)

	Render(c, http.StatusOK, "posts/category.html", gin.H{
		"Title":      category.Name,
		"Categories": loadCategories(),
		"Category":   category,
		"Posts":      posts,
	})
}

// TagPosts 标签下的已发布文章列表
func (h *TaxonomyHandler) TagPosts(c *gin.Context) {
	var tag models.Tag
	if err := db.DB.Where("slug = ?", c.Param("slug")).First(&tag).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Tag not found")
		return
	}

	var posts []models.Post
	db.DB.Preload("User").Preload("Category").
		Distinct("posts.*").
		Joins("JOIN post_tags ON post_tags.post_id = posts.id").
		Where("post_tags.tag_id = ? AND posts.status = ?", tag.ID, models.StatusPublished).
		Order("published_at DESC").
		Find(&posts)
	fillCounts(posts)

	Render(c, http.StatusOK, "posts/tag.html", gin.H{
		"Title":      "#" + tag.Name,
		"Categories": loadCategories(),
		"Tag":        tag,
		"Posts":      posts,
	})
}

// Search 标题或正文的大小写不敏感子串搜索，只搜已发布文章。
// 空查询返回空结果，不查库。
func (h *TaxonomyHandler) Search(c *gin.Context) {
	query := c.Query("q")

	var posts []models.Post
	if strings.TrimSpace(query) != "" {
		// LOWER + LIKE 在 postgres 和测试用的 sqlite 上行为一致
		pattern := "%" + strings.ToLower(query) + "%"
		db.DB.Preload("User").Preload("Category").
			Distinct("posts.*").
			Where("(LOWER(title) LIKE ? OR LOWER(text) LIKE ?) AND status = ?",
				pattern, pattern, models.StatusPublished).
			Order("published_at DESC").
			Find(&posts)
		fillCounts(posts)
	}

	Render(c, http.StatusOK, "posts/search.html", gin.H{
		"Title":      "Search",
		"Categories": loadCategories(),
		"Posts":      posts,
		"Query":      query,
	})
}
