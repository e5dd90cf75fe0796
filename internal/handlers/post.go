package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"barcabuzz/internal/db"
	"barcabuzz/internal/forms"
	"barcabuzz/internal/middleware"
	"barcabuzz/internal/models"
	"barcabuzz/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	homeRecentLimit   = 9
	homeTrendingLimit = 5
	trendingWindow    = 14 * 24 * time.Hour
	relatedLimit      = 4
)

type PostHandler struct{}

func NewPostHandler() *PostHandler {
	return &PostHandler{}
}

// fillCounts 批量填充文章的点赞数和评论数（只统计已审核评论）
func fillCounts(posts []models.Post) {
	if len(posts) == 0 {
		return
	}

	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	type countRow struct {
		PostID uint
		Count  int
	}

	var likeRows []countRow
	db.DB.Model(&models.PostLike{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&likeRows)

	var commentRows []countRow
	db.DB.Model(&models.Comment{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ? AND approved = ?", postIDs, true).
		Group("post_id").
		Scan(&commentRows)

	likes := make(map[uint]int)
	for _, r := range likeRows {
		likes[r.PostID] = r.Count
	}
	comments := make(map[uint]int)
	for _, r := range commentRows {
		comments[r.PostID] = r.Count
	}

	for i := range posts {
		posts[i].LikesCount = likes[posts[i].ID]
		posts[i].CommentCount = comments[posts[i].ID]
	}
}

// Home 首页 - 最新发布 + 14 天内的热门文章
func (h *PostHandler) Home(c *gin.Context) {
	cacheKey := "home:feed"
	if cached := utils.GetCache().Get(cacheKey); cached != nil {
		if data, ok := cached.(gin.H); ok {
			Render(c, http.StatusOK, "pages/home.html", data)
			return
		}
	}

	var recent []models.Post
	db.DB.Preload("User").Preload("Category").
		Where("status = ?", models.StatusPublished).
		Order("published_at DESC").
		Limit(homeRecentLimit).
		Find(&recent)
	fillCounts(recent)

	// Trending = 最近 14 天内发布、浏览量最高的文章
	window := time.Now().Add(-trendingWindow)
	var trending []models.Post
	db.DB.Preload("User").Preload("Category").
		Where("status = ? AND published_at >= ?", models.StatusPublished, window).
		Order("views_count DESC, published_at DESC").
		Limit(homeTrendingLimit).
		Find(&trending)
	fillCounts(trending)

	data := gin.H{
		"Title":         "Barça Buzz",
		"Categories":    loadCategories(),
		"RecentPosts":   recent,
		"TrendingPosts": trending,
		"Active":        "home",
	}

	// 写入缓存，有效期 1 分钟
	utils.GetCache().Set(cacheKey, data, 1*time.Minute)

	Render(c, http.StatusOK, "pages/home.html", data)
}

// About 关于页
func (h *PostHandler) About(c *gin.Context) {
	Render(c, http.StatusOK, "pages/about.html", gin.H{
		"Title":      "About",
		"Categories": loadCategories(),
		"Active":     "about",
	})
}

// List 已发布文章列表
func (h *PostHandler) List(c *gin.Context) {
	var posts []models.Post
	db.DB.Preload("User").Preload("Category").
		Where("status = ?", models.StatusPublished).
		Order("published_at DESC").
		Find(&posts)
	fillCounts(posts)

	Render(c, http.StatusOK, "posts/list.html", gin.H{
		"Title":      "All Posts",
		"Categories": loadCategories(),
		"Posts":      posts,
		"Active":     "posts",
	})
}

// Detail 文章详情页 - 草稿和归档仅作者与管理员可见
func (h *PostHandler) Detail(c *gin.Context) {
	slug := c.Param("slug")
	viewer := middleware.CurrentUser(c)

	var post models.Post
	if err := db.DB.Preload("User").Preload("Category").Preload("Tags").
		Where("slug = ?", slug).First(&post).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	// 无权查看时按不存在处理，不暴露草稿
	if !post.VisibleTo(viewer) {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	// 增加浏览量
	db.DB.Model(&models.Post{}).Where("id = ?", post.ID).
		UpdateColumn("views_count", gorm.Expr("views_count + 1"))
	post.ViewsCount++

	// 相关文章：共享至少一个标签，去重，排除自身
	var related []models.Post
	if len(post.Tags) > 0 {
		tagIDs := make([]uint, len(post.Tags))
		for i, t := range post.Tags {
			tagIDs[i] = t.ID
		}
		db.DB.Preload("User").Preload("Category").
			Distinct("posts.*").
			Joins("JOIN post_tags ON post_tags.post_id = posts.id").
			Where("post_tags.tag_id IN ?", tagIDs).
			Where("posts.id <> ? AND posts.status = ?", post.ID, models.StatusPublished).
			Limit(relatedLimit).
			Find(&related)
		fillCounts(related)
	}

	// 已审核评论
	var comments []models.Comment
	db.DB.Where("post_id = ? AND approved = ?", post.ID, true).
		Order("created_at DESC").
		Find(&comments)

	var pendingComments []models.Comment
	if viewer != nil && (viewer.ID == post.UserID || viewer.IsAdmin()) {
		db.DB.Where("post_id = ? AND approved = ?", post.ID, false).
			Order("created_at DESC").
			Find(&pendingComments)
	}

	var likesCount int64
	db.DB.Model(&models.PostLike{}).Where("post_id = ?", post.ID).Count(&likesCount)

	isLiked := false
	isBookmarked := false
	if viewer != nil {
		var like models.PostLike
		isLiked = db.DB.Where("user_id = ? AND post_id = ?", viewer.ID, post.ID).
			First(&like).Error == nil
		var bookmark models.Bookmark
		isBookmarked = db.DB.Where("user_id = ? AND post_id = ?", viewer.ID, post.ID).
			First(&bookmark).Error == nil
	}

	// 作者资料卡
	var profile models.AuthorProfile
	db.DB.Where("user_id = ?", post.UserID).First(&profile)

	postHTML := utils.RenderMarkdown(post.Text)

	Render(c, http.StatusOK, "posts/detail.html", gin.H{
		"Title":           post.Title,
		"Categories":      loadCategories(),
		"Post":            post,
		"PostContent":     postHTML,
		"ReadingTime":     utils.ReadingTime(string(postHTML)),
		"RelatedPosts":    related,
		"Comments":        comments,
		"PendingComments": pendingComments,
		"LikesCount":      likesCount,
		"IsLiked":         isLiked,
		"IsBookmarked":    isBookmarked,
		"AuthorProfile":   profile,
		"Description":     utils.Excerpt(post.Excerpt, post.Text, 150),
		"FullURL":         getSiteURL() + "/post/" + post.Slug + "/",
	})
}

// ShowCreate 新建文章页面
func (h *PostHandler) ShowCreate(c *gin.Context) {
	form := forms.NewPostForm()
	Render(c, http.StatusOK, "posts/form.html", gin.H{
		"Title":      "New Post",
		"Categories": loadCategories(),
		"Form":       form,
		"Fields":     form.Fields(),
	})
}

// Create 提交新文章 - save_draft 存草稿，save_publish 直接发布
func (h *PostHandler) Create(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	form := &forms.PostForm{
		Title:         c.PostForm("title"),
		Excerpt:       c.PostForm("excerpt"),
		Text:          c.PostForm("text"),
		CategoryID:    c.PostForm("category_id"),
		Tags:          c.PostForm("tags"),
		FeaturedImage: c.PostForm("featured_image"),
	}

	if !form.Validate() {
		Render(c, http.StatusBadRequest, "posts/form.html", gin.H{
			"Title":      "New Post",
			"Categories": loadCategories(),
			"Form":       form,
			"Fields":     form.Fields(),
		})
		return
	}

	slug, err := utils.UniqueSlug(db.DB, &models.Post{}, form.Title, 0)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not save the post")
		return
	}

	post := models.Post{
		UserID:        user.ID,
		Title:         form.Title,
		Slug:          slug,
		Excerpt:       form.Excerpt,
		Text:          form.Text,
		CategoryID:    parseCategoryID(form.CategoryID),
		FeaturedImage: form.FeaturedImage,
		Status:        models.StatusDraft,
	}

	// 按按钮决定状态：默认存草稿，save_publish 立即发布
	if _, publish := c.GetPostForm("save_publish"); publish {
		post.Publish(time.Now())
	}

	if err := db.DB.Create(&post).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not save the post")
		return
	}

	if tags := parseTagNames(form.Tags); len(tags) > 0 {
		db.DB.Model(&post).Association("Tags").Replace(tagsFor(tags))
	}

	utils.GetCache().Delete("home:feed")
	c.Redirect(http.StatusFound, "/post/"+post.Slug+"/")
}

// ShowEdit 编辑文章页面
func (h *PostHandler) ShowEdit(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	var post models.Post
	if err := db.DB.Preload("Tags").Where("slug = ?", c.Param("slug")).First(&post).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}
	if post.UserID != user.ID && !user.IsAdmin() {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	tagNames := make([]string, len(post.Tags))
	for i, t := range post.Tags {
		tagNames[i] = t.Name
	}

	form := forms.NewPostForm()
	form.Title = post.Title
	form.Excerpt = post.Excerpt
	form.Text = post.Text
	form.Tags = strings.Join(tagNames, ", ")
	form.FeaturedImage = post.FeaturedImage
	if post.CategoryID != nil {
		form.CategoryID = strconv.Itoa(int(*post.CategoryID))
	}

	Render(c, http.StatusOK, "posts/form.html", gin.H{
		"Title":      "Edit Post",
		"Categories": loadCategories(),
		"Form":       form,
		"Fields":     form.Fields(),
		"Post":       post,
	})
}

// Update 提交文章修改 - slug 创建后固定，除非为空
func (h *PostHandler) Update(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	var post models.Post
	if err := db.DB.Where("slug = ?", c.Param("slug")).First(&post).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}
	if post.UserID != user.ID && !user.IsAdmin() {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	form := &forms.PostForm{
		Title:         c.PostForm("title"),
		Excerpt:       c.PostForm("excerpt"),
		Text:          c.PostForm("text"),
		CategoryID:    c.PostForm("category_id"),
		Tags:          c.PostForm("tags"),
		FeaturedImage: c.PostForm("featured_image"),
	}

	if !form.Validate() {
		Render(c, http.StatusBadRequest, "posts/form.html", gin.H{
			"Title":      "Edit Post",
			"Categories": loadCategories(),
			"Form":       form,
			"Fields":     form.Fields(),
			"Post":       post,
		})
		return
	}

	post.Title = form.Title
	post.Excerpt = form.Excerpt
	post.Text = form.Text
	post.CategoryID = parseCategoryID(form.CategoryID)
	if form.FeaturedImage != "" {
		post.FeaturedImage = form.FeaturedImage
	}

	// slug 不随标题变化；只有历史数据 slug 为空时才补一个
	if post.Slug == "" {
		slug, err := utils.UniqueSlug(db.DB, &models.Post{}, post.Title, post.ID)
		if err != nil {
			RenderError(c, http.StatusInternalServerError, "Could not save the post")
			return
		}
		post.Slug = slug
	}

	if _, publish := c.GetPostForm("save_publish"); publish && !post.IsPublished() {
		post.Publish(time.Now())
	}

	if err := db.DB.Save(&post).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not save the post")
		return
	}

	db.DB.Model(&post).Association("Tags").Replace(tagsFor(parseTagNames(form.Tags)))

	utils.GetCache().Delete("home:feed")
	c.Redirect(http.StatusFound, "/post/"+post.Slug+"/")
}

// Delete 删除文章并级联删除评论、点赞、收藏
func (h *PostHandler) Delete(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	var post models.Post
	if err := db.DB.Where("slug = ?", c.Param("slug")).First(&post).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}
	if post.UserID != user.ID && !user.IsAdmin() {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.PostLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Bookmark{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&post).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not delete the post")
		return
	}

	utils.GetCache().Delete("home:feed")
	c.Redirect(http.StatusFound, "/")
}

// PublishNow 发布快捷入口 - 无论当前状态，强制发布并写入发布时间
func (h *PostHandler) PublishNow(c *gin.Context) {
	var post models.Post
	if err := db.DB.Where("slug = ?", c.Param("slug")).First(&post).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	post.Publish(time.Now())
	if err := db.DB.Save(&post).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not publish the post")
		return
	}

	utils.GetCache().Delete("home:feed")
	c.Redirect(http.StatusFound, "/post/"+post.Slug+"/")
}

// Drafts 当前用户的草稿列表，最新在前
func (h *PostHandler) Drafts(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	var drafts []models.Post
	db.DB.Preload("Category").
		Where("user_id = ? AND status = ?", user.ID, models.StatusDraft).
		Order("created_at DESC").
		Find(&drafts)

	Render(c, http.StatusOK, "posts/drafts.html", gin.H{
		"Title":      "My Drafts",
		"Categories": loadCategories(),
		"Posts":      drafts,
	})
}

func parseCategoryID(raw string) *uint {
	id := utils.StringToInt(raw)
	if id <= 0 {
		return nil
	}
	uid := uint(id)
	return &uid
}

// parseTagNames 逗号分隔的标签输入拆成去重后的名字列表
func parseTagNames(raw string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, part := range strings.Split(raw, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		names = append(names, name)
	}
	return names
}

// tagsFor get-or-create 每个标签
func tagsFor(names []string) []models.Tag {
	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		var tag models.Tag
		if err := db.DB.Where("name = ?", name).First(&tag).Error; err != nil {
			tag = models.Tag{Name: name, Slug: utils.Slugify(name)}
			if err := db.DB.Create(&tag).Error; err != nil {
				continue
			}
		}
		tags = append(tags, tag)
	}
	return tags
}
