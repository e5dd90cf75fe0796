package router

import (
	"barcabuzz/internal/handlers"
	"barcabuzz/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	postHandler := handlers.NewPostHandler()
	taxonomyHandler := handlers.NewTaxonomyHandler()
	commentHandler := handlers.NewCommentHandler()
	interactionHandler := handlers.NewInteractionHandler()
	dashboardHandler := handlers.NewDashboardHandler()
	authHandler := handlers.NewAuthHandler()
	seoHandler := handlers.NewSEOHandler()
	uploadHandler := handlers.NewUploadHandler()

	// 公共路由 (Public Routes)
	r.GET("/", postHandler.Home)                            // 首页
	r.GET("/about/", postHandler.About)                     // 关于
	r.GET("/posts/", postHandler.List)                      // 已发布文章列表
	r.GET("/post/:slug/", postHandler.Detail)               // 文章详情（计浏览量）
	r.GET("/category/:slug/", taxonomyHandler.CategoryPosts) // 分类列表
	r.GET("/tag/:slug/", taxonomyHandler.TagPosts)          // 标签列表
	r.GET("/search/", taxonomyHandler.Search)               // 搜索

	// SEO / 订阅
	r.GET("/feed/", seoHandler.Feed)
	r.GET("/robots.txt", seoHandler.RobotsTxt)
	r.GET("/sitemap.xml", seoHandler.SitemapXML)

	// 账号 (Accounts)
	accounts := r.Group("/accounts")
	{
		accounts.GET("/register/", authHandler.ShowRegister)
		accounts.POST("/register/", authHandler.Register)
		accounts.GET("/login/", authHandler.ShowLogin)
		accounts.POST("/login/", authHandler.Login)
		accounts.GET("/logout/", authHandler.Logout)
		accounts.GET("/password-reset/", authHandler.ShowForgotPassword)
		accounts.POST("/password-reset/", authHandler.ForgotPassword)
		accounts.GET("/password-reset/confirm/", authHandler.ShowResetPassword)
		accounts.POST("/password-reset/confirm/", authHandler.ResetPassword)
	}

	// 受保护路由 (Protected Routes)
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/post/new/", postHandler.ShowCreate)
		authorized.POST("/post/new/", postHandler.Create)
		authorized.GET("/post/:slug/edit/", postHandler.ShowEdit)
		authorized.POST("/post/:slug/edit/", postHandler.Update)
		authorized.GET("/post/:slug/delete/", postHandler.Delete)
		authorized.POST("/post/:slug/delete/", postHandler.Delete)
		authorized.GET("/post/:slug/publish/", postHandler.PublishNow)
		authorized.GET("/drafts/", postHandler.Drafts)

		authorized.GET("/post/:slug/comment/", commentHandler.ShowCreate)
		authorized.POST("/post/:slug/comment/", commentHandler.Create)
		authorized.GET("/comment/:id/approve/", commentHandler.Approve)
		authorized.GET("/comment/:id/remove/", commentHandler.Remove)

		authorized.POST("/post/:slug/like/", interactionHandler.ToggleLike)
		authorized.POST("/post/:slug/bookmark/", interactionHandler.ToggleBookmark)

		authorized.POST("/upload/image", uploadHandler.Image)
	}

	// 仪表盘 (Dashboards)
	dashboards := r.Group("/")
	dashboards.Use(middleware.AuthRequired())
	{
		dashboards.GET("/dashboard/", dashboardHandler.Overview)
		dashboards.GET("/user-dashboard/", dashboardHandler.User)
		dashboards.GET("/admin-dashboard/", dashboardHandler.Admin)
	}
}
