package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hive/internal/errs"
	"hive/internal/utils"
)

func (rh *RestHandler) GetNearbyUsers(ctx *gin.Context) {
	userID := utils.GetUserIdFromContext(ctx)
	users, err := rh.authService.ListNearbyUsers(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

func (rh *RestHandler) GetUser(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id < 1 {
		respondError(ctx, errs.ErrInvalidParams)
		return
	}

	user, err := rh.authService.GetPublicUser(uint(id))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}
