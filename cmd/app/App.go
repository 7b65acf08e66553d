package app

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"

	"hive/configs"
	"hive/internal/handlers"
	"hive/internal/repositories"
	"hive/internal/servers/database"
	"hive/internal/servers/http"
	"hive/internal/services"
)

var (
	app  *App
	once sync.Once
)

type App struct {
	redis   *redis.Client
	ctx     context.Context
	configs *configs.Config
}

func GetApp() *App {
	once.Do(func() {
		app = &App{}
	})
	return app
}

func (app *App) LetsGo() {
	app.ctx = context.Background()
	app.configs = configs.GetConfig()
	app.initializeRedis()

	db := database.GetDB(app.configs)

	publisher := services.NewRedisEventPublisher(
		app.ctx,
		app.redis,
		app.configs.Viper.GetString("redis.events_channel"),
	)

	authRepo := repositories.NewAuthenticationRepository(db)
	messageRepo := repositories.NewMessageRepository(db)
	skillRepo := repositories.NewSkillRepository(db)
	dealRepo := repositories.NewDealRepository(db)
	eventRepo := repositories.NewEventRepository(db)
	postRepo := repositories.NewPostRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)

	authService := services.NewAuthenticationService(authRepo, app.configs)
	notificationService := services.NewNotificationService(notificationRepo, publisher)
	messageService := services.NewMessageService(messageRepo, authRepo, notificationService, publisher)
	skillService := services.NewSkillService(skillRepo, publisher)
	dealService := services.NewDealService(dealRepo, notificationService, publisher)
	eventService := services.NewEventService(eventRepo, notificationService, publisher)
	postService := services.NewPostService(postRepo, notificationService, publisher)
	reviewService := services.NewReviewService(reviewRepo, authRepo, notificationService, publisher)
	searchService := services.NewSearchService(authRepo, skillRepo, dealRepo, eventRepo)

	restHandler := handlers.NewRestHandler(
		authService,
		messageService,
		skillService,
		dealService,
		eventService,
		postService,
		reviewService,
		notificationService,
		searchService,
	)

	http.NewHttpServer(app.ctx, app.configs, restHandler).Run()
}

func (app *App) initializeRedis() {
	app.redis = redis.NewClient(&redis.Options{
		Addr:     app.configs.Viper.GetString("redis.addr"),
		Password: app.configs.Viper.GetString("redis.password"),
	})
}
