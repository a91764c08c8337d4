package router

import (
	"Founder_Circle/internal/config"
	"Founder_Circle/internal/handler"
	"Founder_Circle/internal/middleware"
	"Founder_Circle/internal/pkg"
	"Founder_Circle/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func InitRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	emailCfg := pkg.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}

	emailSvc := service.NewEmailService(emailCfg)
	userSvc := service.NewUserService(db, emailSvc)
	tagSvc := service.NewTagService(db)
	feedSvc := service.NewFeedService(db)
	postSvc := service.NewPostService(db)
	communitySvc := service.NewCommunityService(db)
	followSvc := service.NewFollowService(db)
	launchSvc := service.NewLaunchService(db)
	messageSvc := service.NewMessageService(db)
	broadcastSvc := service.NewBroadcastService(db)

	email := handler.NewEmailHandler(emailSvc)
	user := handler.NewUserHandler(userSvc)
	tag := handler.NewTagHandler(tagSvc)
	feed := handler.NewFeedHandler(feedSvc)
	post := handler.NewPostHandler(postSvc)
	community := handler.NewCommunityHandler(communitySvc)
	follow := handler.NewFollowHandler(followSvc)
	launch := handler.NewLaunchHandler(launchSvc)
	message := handler.NewMessageHandler(messageSvc)
	broadcast := handler.NewBroadcastHandler(broadcastSvc)

	// 邮件验证码
	emailGroup := r.Group("/api/email")
	{
		emailGroup.POST("/code", email.SendCode)
	}

	// 注册登录
	userGroup := r.Group("/api/user")
	{
		userGroup.POST("/register", user.Register)
		userGroup.POST("/login", user.Login)
		userGroup.POST("/reset", user.ResetPassword)
	}

	tokenGroup := r.Group("/api/token")
	{
		tokenGroup.POST("/refresh", user.Refresh)
	}

	// 公开读接口
	pub := r.Group("/api")
	{
		pub.GET("/tags", tag.List)
		pub.GET("/posts", post.ListRecent)
		pub.GET("/posts/:id/comments", post.ListComments)
		pub.GET("/communities", community.List)
		pub.GET("/communities/:id", community.Get)
		pub.GET("/launches", launch.List)
		pub.GET("/launches/today", launch.Today)
		pub.GET("/launches/yesterday", launch.Yesterday)
		pub.GET("/launches/:id/comments", launch.ListComments)
	}

	// 管理员接口
	r.POST("/api/tags", middleware.AuthMiddleware(), middleware.AdminMiddleware(), tag.Create)

	// 登录态接口
	auth := r.Group("/api")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.POST("/user/logout", user.Logout)
		auth.POST("/user/change-password", user.ChangePassword)
		auth.GET("/me", user.Me)
		auth.PATCH("/me", user.UpdateProfile)
		auth.GET("/user/search", user.Search)
		auth.GET("/user/:id", user.GetProfile)
		auth.GET("/user/:id/posts", post.ListByUser)

		auth.GET("/feed", feed.List)

		auth.POST("/posts", post.Create)
		auth.GET("/posts/:id", post.Get)
		auth.DELETE("/posts/:id", post.Delete)
		auth.POST("/posts/:id/like", post.Like)
		auth.DELETE("/posts/:id/like", post.Unlike)
		auth.POST("/posts/:id/comments", post.AddComment)
		auth.POST("/posts/:id/repost", post.Repost)

		auth.POST("/communities", community.Create)
		auth.GET("/communities/mine", community.Mine)
		auth.POST("/communities/:id/join", community.Join)
		auth.POST("/communities/:id/leave", community.Leave)
		auth.DELETE("/communities/:id", community.Delete)

		auth.POST("/follows", follow.Request)
		auth.POST("/follows/:id/accept", follow.Accept)
		auth.POST("/follows/:id/decline", follow.Decline)
		auth.GET("/follows/requests", follow.Requests)
		auth.GET("/follows/status/:id", follow.Status)
		auth.GET("/users/:id/followers", follow.Followers)
		auth.GET("/users/:id/following", follow.Following)

		auth.POST("/launches", launch.Create)
		auth.GET("/launches/recommended", launch.Recommended)
		auth.GET("/launches/:id", launch.Get)
		auth.POST("/launches/:id/comments", launch.AddComment)
		auth.POST("/launches/:id/upvote", launch.Upvote)
		auth.GET("/launches/:id/upvote-status", launch.UpvoteStatus)
		auth.DELETE("/launches/:id", launch.Delete)

		auth.POST("/conversations", message.Open)
		auth.GET("/conversations", message.ListConversations)
		auth.GET("/conversations/:id/messages", message.ListMessages)
		auth.POST("/conversations/:id/messages", message.Send)

		auth.POST("/broadcasts", broadcast.Send)
		auth.GET("/broadcasts", broadcast.History)
	}

	return r
}
