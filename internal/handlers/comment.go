package handlers

import (
	"net/http"

	"barcabuzz/internal/db"
	"barcabuzz/internal/forms"
	"barcabuzz/internal/middleware"
	"barcabuzz/internal/models"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct{}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{}
}

// ShowCreate 评论表单页
func (h *CommentHandler) ShowCreate(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	var post models.Post
	if err := db.DB.Where("slug = ?", c.Param("slug")).First(&post).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	form := forms.NewCommentForm()
	form.AuthorName = user.DisplayName()
	form.Email = user.Email

	Render(c, http.StatusOK, "posts/comment_form.html", gin.H{
		"Title":      "Add Comment",
		"Categories": loadCategories(),
		"Post":       post,
		"Form":       form,
		"Fields":     form.Fields(),
	})
}

// Create 提交评论 - 默认未审核，通过前不公开显示
func (h *CommentHandler) Create(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	var post models.Post
	if err := db.DB.Where("slug = ?", c.Param("slug")).First(&post).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	form := &forms.CommentForm{
		AuthorName: c.PostForm("author_name"),
		Email:      c.PostForm("email"),
		Text:       c.PostForm("text"),
	}
	if form.AuthorName == "" {
		form.AuthorName = user.DisplayName()
	}

	if !form.Validate() {
		Render(c, http.StatusBadRequest, "posts/comment_form.html", gin.H{
			"Title":      "Add Comment",
			"Categories": loadCategories(),
			"Post":       post,
			"Form":       form,
			"Fields":     form.Fields(),
		})
		return
	}

	comment := models.Comment{
		PostID:     post.ID,
		UserID:     &user.ID,
		AuthorName: form.AuthorName,
		Email:      form.Email,
		Text:       form.Text,
		Approved:   false, // 审核后才公开
	}

	if err := db.DB.Create(&comment).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not save the comment")
		return
	}

	c.Redirect(http.StatusFound, "/post/"+post.Slug+"/")
}

// TODO: restrict Approve/Remove to admins or the post author once the
// moderation role model is decided; right now any logged-in user passes.

// Approve 审核通过评论（重复调用无副作用）
func (h *CommentHandler) Approve(c *gin.Context) {
	var comment models.Comment
	if err := db.DB.Preload("Post").First(&comment, c.Param("id")).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Comment not found")
		return
	}

	if !comment.Approved {
		db.DB.Model(&comment).Update("approved", true)
	}

	c.Redirect(http.StatusFound, "/post/"+comment.Post.Slug+"/")
}

// Remove 永久删除评论
func (h *CommentHandler) Remove(c *gin.Context) {
	var comment models.Comment
	if err := db.DB.Preload("Post").First(&comment, c.Param("id")).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Comment not found")
		return
	}

	slug := comment.Post.Slug
	db.DB.Delete(&comment)

	c.Redirect(http.StatusFound, "/post/"+slug+"/")
}
