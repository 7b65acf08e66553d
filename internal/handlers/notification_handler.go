package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hive/internal/errs"
	"hive/internal/models"
	"hive/internal/utils"
)

func (rh *RestHandler) GetNotifications(ctx *gin.Context) {
	userID := utils.GetUserIdFromContext(ctx)
	notifications, err := rh.notificationService.ListForUser(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, notifications)
}

func (rh *RestHandler) MarkNotificationRead(ctx *gin.Context) {
	notificationID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || notificationID < 1 {
		respondError(ctx, errs.ErrInvalidParams)
		return
	}

	userID := utils.GetUserIdFromContext(ctx)
	if err := rh.notificationService.MarkRead(uint(notificationID), userID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.MessageResponse{Message: "Notification marked as read"})
}

func (rh *RestHandler) MarkAllNotificationsRead(ctx *gin.Context) {
	userID := utils.GetUserIdFromContext(ctx)
	if err := rh.notificationService.MarkAllRead(userID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.MessageResponse{Message: "All notifications marked as read"})
}
