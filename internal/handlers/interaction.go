package handlers

import (
	"net/http"

	"barcabuzz/internal/db"
	"barcabuzz/internal/middleware"
	"barcabuzz/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

type InteractionHandler struct{}

func NewInteractionHandler() *InteractionHandler {
	return &InteractionHandler{}
}

// ToggleLike 切换点赞状态，返回新状态和最新点赞数
func (h *InteractionHandler) ToggleLike(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	var post models.Post
	if err := db.DB.Where("slug = ?", c.Param("slug")).First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	liked := toggleMembership(user.ID, post.ID, &models.PostLike{
		UserID: user.ID,
		PostID: post.ID,
	})

	var count int64
	db.DB.Model(&models.PostLike{}).Where("post_id = ?", post.ID).Count(&count)

	c.JSON(http.StatusOK, gin.H{
		"liked":       liked,
		"likes_count": count,
	})
}

// ToggleBookmark 切换收藏状态
func (h *InteractionHandler) ToggleBookmark(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	var post models.Post
	if err := db.DB.Where("slug = ?", c.Param("slug")).First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	bookmarked := toggleMembership(user.ID, post.ID, &models.Bookmark{
		UserID: user.ID,
		PostID: post.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"bookmarked": bookmarked,
	})
}

// toggleMembership flips a (user, post) association row. Delete first; if
// nothing was deleted, insert with ON CONFLICT DO NOTHING so a racing double
// toggle collapses into one row on the unique index instead of erroring.
// Returns the resulting membership state.
func toggleMembership(userID, postID uint, row interface{}) bool {
	res := db.DB.Where("user_id = ? AND post_id = ?", userID, postID).Delete(row)
	if res.RowsAffected > 0 {
		return false
	}
	db.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(row)
	return true
}
