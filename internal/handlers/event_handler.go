package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hive/internal/errs"
	"hive/internal/models"
	"hive/internal/utils"
)

func (rh *RestHandler) GetEvents(ctx *gin.Context) {
	events, err := rh.eventService.ListUpcoming()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, events)
}

func (rh *RestHandler) GetMyEvents(ctx *gin.Context) {
	userID := utils.GetUserIdFromContext(ctx)
	events, err := rh.eventService.ListMine(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, events)
}

func (rh *RestHandler) CreateEvent(ctx *gin.Context) {
	var body models.CreateEventRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondError(ctx, errs.ErrInvalidRequestBody)
		return
	}

	userID := utils.GetUserIdFromContext(ctx)
	event, err := rh.eventService.Create(userID, &body)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, event)
}

func (rh *RestHandler) RSVPEvent(ctx *gin.Context) {
	eventID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || eventID < 1 {
		respondError(ctx, errs.ErrInvalidParams)
		return
	}

	userID := utils.GetUserIdFromContext(ctx)
	if err := rh.eventService.RSVP(uint(eventID), userID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.MessageResponse{Message: "RSVP successful"})
}
