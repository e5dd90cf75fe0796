package handlers

import (
	"os"

	"barcabuzz/internal/db"
	"barcabuzz/internal/middleware"
	"barcabuzz/internal/models"

	"github.com/gin-gonic/gin"
)

// Render helper to inject common variables like 'current user'
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	// Inject Current User
	if user, exists := c.Get(middleware.CheckUserKey); exists {
		obj["CurrentUser"] = user
	}

	obj["CurrentPath"] = c.Request.URL.Path

	c.HTML(code, name, obj)
}

// RenderError 渲染错误页
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Title": "Oops", "Message": message})
}

// loadCategories is the shared read-only category query. Every page handler
// that renders navigation calls it and passes the result into Render
// explicitly; there is no ambient category state.
func loadCategories() []models.Category {
	var categories []models.Category
	db.DB.Order("name ASC").Find(&categories)
	return categories
}

// getSiteURL 从环境变量获取网站URL,如果未设置则使用默认值
func getSiteURL() string {
	siteURL := os.Getenv("SITE_URL")
	if siteURL == "" {
		siteURL = "https://barcabuzz.example.com"
	}
	return siteURL
}
