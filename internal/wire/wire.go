package wire

import (
	"Hirebase/internal/api"
	"Hirebase/internal/api/config"
	"Hirebase/internal/api/handler"
	"Hirebase/internal/job"
	"Hirebase/internal/pkg/cron"
	"Hirebase/internal/repository"
	"Hirebase/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *mongo.Database
	CronMgr *cron.Manager
}

func BuildApplication(db *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	memberRepo := repository.NewMemberRepo(db)
	jobRepo := repository.NewJobRepo(db)
	articleRepo := repository.NewArticleRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	likeRepo := repository.NewLikeRepo(db)
	viewRepo := repository.NewViewRepo(db)
	followRepo := repository.NewFollowRepo(db)
	notificationRepo := repository.NewNotificationRepo(db)
	applicationRepo := repository.NewApplicationRepo(db)

	likeService := service.NewLikeService(likeRepo)
	viewService := service.NewViewService(viewRepo)
	notificationService := service.NewNotificationService(notificationRepo, service.NewRedisSink())
	memberService := service.NewMemberService(memberRepo, likeService, viewService, notificationService)
	jobService := service.NewJobService(jobRepo, memberRepo, likeService, viewService, notificationService)
	articleService := service.NewArticleService(articleRepo, memberRepo, likeService, viewService, notificationService)
	commentService := service.NewCommentService(commentRepo, memberRepo, jobRepo, articleRepo, notificationService)
	followService := service.NewFollowService(followRepo, memberRepo, notificationService)
	applicationService := service.NewApplicationService(applicationRepo, jobRepo, notificationService)
	mediaService := service.NewMediaService()

	handlers := &api.HandlersGroup{
		MemberHandler:       handler.NewMemberHandler(memberService),
		JobHandler:          handler.NewJobHandler(jobService),
		ArticleHandler:      handler.NewArticleHandler(articleService),
		CommentHandler:      handler.NewCommentHandler(commentService),
		FollowHandler:       handler.NewFollowHandler(followService),
		ApplicationHandler:  handler.NewApplicationHandler(applicationService),
		NotificationHandler: handler.NewNotificationHandler(notificationService),
		MediaHandler:        handler.NewMediaHandler(mediaService),
		WsHandler:           handler.NewWsHandler(),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(
		job.NewRankRecomputeJob(jobRepo, memberRepo),
		job.NewTopJobsJob(jobRepo),
		job.NewTopAgentsJob(memberRepo),
	)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
