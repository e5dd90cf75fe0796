package handlers

import (
	"net/http"

	"barcabuzz/internal/db"
	"barcabuzz/internal/middleware"
	"barcabuzz/internal/models"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// Overview 按角色分流：管理员看全站统计，普通用户看自己的
func (h *DashboardHandler) Overview(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/accounts/login/")
		return
	}
	if user.IsAdmin() {
		h.Admin(c)
		return
	}
	h.User(c)
}

// User 作者仪表盘 - 自己文章的统计
func (h *DashboardHandler) User(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	var recent []models.Post
	db.DB.Preload("Category").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Limit(5).
		Find(&recent)

	var publishedCount, draftCount int64
	db.DB.Model(&models.Post{}).
		Where("user_id = ? AND status = ?", user.ID, models.StatusPublished).
		Count(&publishedCount)
	db.DB.Model(&models.Post{}).
		Where("user_id = ? AND status = ?", user.ID, models.StatusDraft).
		Count(&draftCount)

	// 总浏览量（该用户全部文章求和）
	var totalViews int64
	db.DB.Model(&models.Post{}).
		Where("user_id = ?", user.ID).
		Select("COALESCE(SUM(views_count), 0)").
		Scan(&totalViews)

	var profile models.AuthorProfile
	db.DB.Where("user_id = ?", user.ID).First(&profile)

	Render(c, http.StatusOK, "dashboards/user.html", gin.H{
		"Title":          "Dashboard",
		"Categories":     loadCategories(),
		"RecentPosts":    recent,
		"PublishedCount": publishedCount,
		"DraftCount":     draftCount,
		"TotalViews":     totalViews,
		"Profile":        profile,
	})
}

// Admin 管理员仪表盘 - 全站统计
func (h *DashboardHandler) Admin(c *gin.Context) {
	var totalPosts, totalComments, pendingComments, activeUsers int64
	db.DB.Model(&models.Post{}).Count(&totalPosts)
	db.DB.Model(&models.Comment{}).Count(&totalComments)
	db.DB.Model(&models.Comment{}).Where("approved = ?", false).Count(&pendingComments)
	db.DB.Model(&models.User{}).Where("is_active = ?", true).Count(&activeUsers)

	var recentPosts []models.Post
	db.DB.Preload("User").Preload("Category").
		Order("created_at DESC").
		Limit(5).
		Find(&recentPosts)

	var recentComments []models.Comment
	db.DB.Preload("Post").
		Order("created_at DESC").
		Limit(5).
		Find(&recentComments)

	Render(c, http.StatusOK, "dashboards/admin.html", gin.H{
		"Title":           "Admin Dashboard",
		"Categories":      loadCategories(),
		"TotalPosts":      totalPosts,
		"TotalComments":   totalComments,
		"PendingComments": pendingComments,
		"ActiveUsers":     activeUsers,
		"RecentPosts":     recentPosts,
		"RecentComments":  recentComments,
	})
}
