package api

import "Hirebase/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	MemberHandler       *handler.MemberHandler
	JobHandler          *handler.JobHandler
	ArticleHandler      *handler.ArticleHandler
	CommentHandler      *handler.CommentHandler
	FollowHandler       *handler.FollowHandler
	ApplicationHandler  *handler.ApplicationHandler
	NotificationHandler *handler.NotificationHandler
	MediaHandler        *handler.MediaHandler
	WsHandler           *handler.WsHandler
}
