package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hive/internal/errs"
	"hive/internal/models"
	"hive/internal/utils"
)

func (rh *RestHandler) GetUserReviews(ctx *gin.Context) {
	userID, err := strconv.Atoi(ctx.Param("userId"))
	if err != nil || userID < 1 {
		respondError(ctx, errs.ErrInvalidParams)
		return
	}

	reviews, err := rh.reviewService.ListForUser(uint(userID))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, reviews)
}

func (rh *RestHandler) GetMyReviews(ctx *gin.Context) {
	userID := utils.GetUserIdFromContext(ctx)
	reviews, err := rh.reviewService.ListMine(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, reviews)
}

func (rh *RestHandler) CreateReview(ctx *gin.Context) {
	var body models.CreateReviewRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondError(ctx, errs.ErrInvalidRequestBody)
		return
	}

	userID := utils.GetUserIdFromContext(ctx)
	review, err := rh.reviewService.Create(userID, &body)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, review)
}
