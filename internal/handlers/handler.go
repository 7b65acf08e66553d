package handlers

import (
	"github.com/gin-gonic/gin"

	"hive/internal/errs"
	"hive/internal/models"
	"hive/internal/services"
)

type RestHandler struct {
	authService         *services.AuthenticationService
	messageService      *services.MessageService
	skillService        *services.SkillService
	dealService         *services.DealService
	eventService        *services.EventService
	postService         *services.PostService
	reviewService       *services.ReviewService
	notificationService *services.NotificationService
	searchService       *services.SearchService
}

func NewRestHandler(
	authService *services.AuthenticationService,
	messageService *services.MessageService,
	skillService *services.SkillService,
	dealService *services.DealService,
	eventService *services.EventService,
	postService *services.PostService,
	reviewService *services.ReviewService,
	notificationService *services.NotificationService,
	searchService *services.SearchService,
) *RestHandler {
	return &RestHandler{
		authService:         authService,
		messageService:      messageService,
		skillService:        skillService,
		dealService:         dealService,
		eventService:        eventService,
		postService:         postService,
		reviewService:       reviewService,
		notificationService: notificationService,
		searchService:       searchService,
	}
}

// respondError maps a service error onto the HTTP contract: 401 auth,
// 400 validation, 404 missing reference, 500 everything else.
func respondError(ctx *gin.Context, err error) {
	ctx.AbortWithStatusJSON(errs.Status(err), models.ErrorResponse{Message: err.Error()})
}
