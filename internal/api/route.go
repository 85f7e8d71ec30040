package api

import (
	"Hirebase/internal/api/middleware"
	"Hirebase/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		memberGroup := apiGroup.Group("/members")
		{
			// 无需登录即可访问的接口
			memberGroup.POST("/signup", group.MemberHandler.Signup)
			memberGroup.POST("/login", group.MemberHandler.Login)

			authOptGroup := memberGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/agents", group.MemberHandler.GetAgents)
				authOptGroup.GET("/agents/top", group.MemberHandler.GetTopAgents)
				authOptGroup.GET("/detail/:memberId", group.MemberHandler.GetMember)
				authOptGroup.GET("/:memberId/followers", group.FollowHandler.GetMemberFollowers)
				authOptGroup.GET("/:memberId/followings", group.FollowHandler.GetMemberFollowings)
			}

			authGroup := memberGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.MemberHandler.Logout)
				authGroup.PUT("/info", group.MemberHandler.UpdateMember)
				authGroup.POST("/:memberId/like", group.MemberHandler.LikeTargetMember)
				authGroup.POST("/:memberId/follow", group.FollowHandler.Subscribe)
				authGroup.DELETE("/:memberId/follow", group.FollowHandler.Unsubscribe)
			}

			// 需要登录 & 拥有 ADMIN 角色
			adminGroup := authGroup.Group("")
			adminGroup.Use(middleware.CheckMemberTypes("ADMIN"))
			{
				adminGroup.GET("/all", group.MemberHandler.GetMembers)
				adminGroup.PUT("/:memberId/admin", group.MemberHandler.UpdateMemberByAdmin)
			}
		}

		jobGroup := apiGroup.Group("/jobs")
		{
			authOptGroup := jobGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.POST("/search", group.JobHandler.GetJobs)
				authOptGroup.GET("/top", group.JobHandler.GetTopJobs)
				authOptGroup.GET("/detail/:jobId", group.JobHandler.GetJob)
				authOptGroup.GET("/detail/:jobId/similar", group.JobHandler.GetSimilarJobs)
			}

			authGroup := jobGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/:jobId/like", group.JobHandler.LikeTargetJob)
				authGroup.GET("/favorites", group.JobHandler.GetFavoriteJobs)
				authGroup.GET("/visited", group.JobHandler.GetVisitedJobs)
			}

			agentGroup := authGroup.Group("")
			agentGroup.Use(middleware.CheckMemberTypes("AGENT", "ADMIN"))
			{
				agentGroup.POST("", group.JobHandler.CreateJob)
				agentGroup.PUT("/:jobId", group.JobHandler.UpdateJob)
				agentGroup.POST("/mine", group.JobHandler.GetAgentJobs)
			}

			adminGroup := authGroup.Group("/admin")
			adminGroup.Use(middleware.CheckMemberTypes("ADMIN"))
			{
				adminGroup.POST("/search", group.JobHandler.GetAllJobsByAdmin)
				adminGroup.PUT("/:jobId", group.JobHandler.UpdateJobByAdmin)
				adminGroup.DELETE("/:jobId", group.JobHandler.RemoveJobByAdmin)
			}
		}

		articleGroup := apiGroup.Group("/articles")
		{
			authOptGroup := articleGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("", group.ArticleHandler.GetArticles)
				authOptGroup.GET("/detail/:articleId", group.ArticleHandler.GetArticle)
			}

			authGroup := articleGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.ArticleHandler.CreateArticle)
				authGroup.PUT("/:articleId", group.ArticleHandler.UpdateArticle)
				authGroup.POST("/:articleId/like", group.ArticleHandler.LikeTargetArticle)
			}

			adminGroup := authGroup.Group("/admin")
			adminGroup.Use(middleware.CheckMemberTypes("ADMIN"))
			{
				adminGroup.GET("/all", group.ArticleHandler.GetAllArticlesByAdmin)
				adminGroup.PUT("/:articleId", group.ArticleHandler.UpdateArticleByAdmin)
				adminGroup.DELETE("/:articleId", group.ArticleHandler.RemoveArticleByAdmin)
			}
		}

		commentGroup := apiGroup.Group("/comments")
		{
			commentGroup.GET("", group.CommentHandler.GetComments)

			authGroup := commentGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.CommentHandler.CreateComment)
				authGroup.PUT("/:commentId", group.CommentHandler.UpdateComment)
			}

			adminGroup := authGroup.Group("")
			adminGroup.Use(middleware.CheckMemberTypes("ADMIN"))
			{
				adminGroup.DELETE("/:commentId/admin", group.CommentHandler.RemoveCommentByAdmin)
			}
		}

		applicationGroup := apiGroup.Group("/applications")
		applicationGroup.Use(middleware.AuthMiddleware())
		{
			applicationGroup.POST("", group.ApplicationHandler.Apply)
			applicationGroup.GET("/mine", group.ApplicationHandler.GetMyApplications)
			applicationGroup.GET("/detail/:applicationId", group.ApplicationHandler.GetApplication)
			applicationGroup.POST("/:applicationId/withdraw", group.ApplicationHandler.Withdraw)

			agentGroup := applicationGroup.Group("")
			agentGroup.Use(middleware.CheckMemberTypes("AGENT", "ADMIN"))
			{
				agentGroup.GET("/received", group.ApplicationHandler.GetReceivedApplications)
				agentGroup.PUT("/:applicationId/status", group.ApplicationHandler.UpdateStatus)
				agentGroup.GET("/stats", group.ApplicationHandler.GetCompanyStats)
			}
		}

		notificationGroup := apiGroup.Group("/notifications")
		{
			notificationGroup.GET("/ws", group.WsHandler.Connect)

			authGroup := notificationGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.GET("/list", group.NotificationHandler.GetNotifications)
				authGroup.GET("/unread", group.NotificationHandler.UnreadCount)
				authGroup.POST("/:notificationId/read", group.NotificationHandler.MarkRead)
				authGroup.POST("/read/all", group.NotificationHandler.MarkAllRead)
			}
		}

		mediaGroup := apiGroup.Group("/media")
		mediaGroup.Use(middleware.AuthMiddleware())
		{
			mediaGroup.POST("/image", group.MediaHandler.UploadImage)
			mediaGroup.POST("/resume", group.MediaHandler.UploadResume)
			mediaGroup.DELETE("", group.MediaHandler.Delete)
		}
	}

	return r
}
