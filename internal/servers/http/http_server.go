package http

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hive/configs"
	"hive/internal/handlers"
)

var (
	httpServer *HttpServer
	once       sync.Once
)

type HttpServer struct {
	ctx     context.Context
	config  *configs.Config
	router  *gin.Engine
	handler *handlers.RestHandler
}

func NewHttpServer(ctx context.Context, config *configs.Config, handler *handlers.RestHandler) *HttpServer {
	once.Do(func() {
		httpServer = &HttpServer{
			ctx:     ctx,
			config:  config,
			handler: handler,
		}
	})
	return httpServer
}

func (hs *HttpServer) Run() {
	hs.initializeGin()
	hs.setupRoutes()
	server := hs.startServer()
	hs.waitForShutdown(server)
}

func (hs *HttpServer) initializeGin() {
	hs.router = gin.Default()
}

func (hs *HttpServer) setupRoutes() {
	hs.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := hs.router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", hs.handler.Register)
		auth.POST("/login", hs.handler.Login)
		auth.GET("/me", hs.handler.MustAuthenticateMiddleware(), hs.handler.Me)
		auth.PUT("/profile", hs.handler.MustAuthenticateMiddleware(), hs.handler.UpdateProfile)
		auth.POST("/change-password", hs.handler.MustAuthenticateMiddleware(), hs.handler.ChangePassword)
	}

	users := api.Group("/users", hs.handler.MustAuthenticateMiddleware())
	{
		users.GET("/nearby", hs.handler.GetNearbyUsers)
		users.GET("/:id", hs.handler.GetUser)
	}

	messages := api.Group("/messages", hs.handler.MustAuthenticateMiddleware())
	{
		messages.GET("/conversations", hs.handler.GetConversations)
		messages.GET("/with/:userId", hs.handler.GetThread)
		messages.POST("/send", hs.handler.SendMessage)
		messages.GET("/unread-count", hs.handler.GetUnreadCount)
	}

	skills := api.Group("/skills", hs.handler.MustAuthenticateMiddleware())
	{
		skills.GET("", hs.handler.GetSkills)
		skills.GET("/my-skills", hs.handler.GetMySkills)
		skills.POST("", hs.handler.CreateSkill)
	}

	deals := api.Group("/deals", hs.handler.MustAuthenticateMiddleware())
	{
		deals.GET("", hs.handler.GetDeals)
		deals.GET("/my-deals", hs.handler.GetMyDeals)
		deals.POST("", hs.handler.CreateDeal)
		deals.POST("/:id/join", hs.handler.JoinDeal)
	}

	events := api.Group("/events", hs.handler.MustAuthenticateMiddleware())
	{
		events.GET("", hs.handler.GetEvents)
		events.GET("/my-events", hs.handler.GetMyEvents)
		events.POST("", hs.handler.CreateEvent)
		events.POST("/:id/rsvp", hs.handler.RSVPEvent)
	}

	posts := api.Group("/posts", hs.handler.MustAuthenticateMiddleware())
	{
		posts.GET("", hs.handler.GetPosts)
		posts.GET("/my-posts", hs.handler.GetMyPosts)
		posts.POST("", hs.handler.CreatePost)
		posts.POST("/:id/like", hs.handler.LikePost)
	}

	reviews := api.Group("/reviews", hs.handler.MustAuthenticateMiddleware())
	{
		reviews.GET("/user/:userId", hs.handler.GetUserReviews)
		reviews.GET("/my-reviews", hs.handler.GetMyReviews)
		reviews.POST("", hs.handler.CreateReview)
	}

	notifications := api.Group("/notifications", hs.handler.MustAuthenticateMiddleware())
	{
		notifications.GET("", hs.handler.GetNotifications)
		notifications.PUT("/:id/read", hs.handler.MarkNotificationRead)
		notifications.PUT("/mark-all-read", hs.handler.MarkAllNotificationsRead)
	}

	api.GET("/search", hs.handler.MustAuthenticateMiddleware(), hs.handler.Search)
}

func (hs *HttpServer) startServer() *http.Server {
	addr := fmt.Sprintf(":%d", hs.config.Viper.GetInt("server.port"))
	server := &http.Server{
		Addr:    addr,
		Handler: hs.router,
	}

	go func() {
		log.Println("HTTP server started on", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	return server
}

func (hs *HttpServer) waitForShutdown(server *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if err := server.Shutdown(hs.ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
