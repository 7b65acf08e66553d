package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hive/internal/errs"
	"hive/internal/models"
	"hive/internal/utils"
)

func (rh *RestHandler) GetDeals(ctx *gin.Context) {
	deals, err := rh.dealService.ListOpen()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, deals)
}

func (rh *RestHandler) GetMyDeals(ctx *gin.Context) {
	userID := utils.GetUserIdFromContext(ctx)
	deals, err := rh.dealService.ListMine(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, deals)
}

func (rh *RestHandler) CreateDeal(ctx *gin.Context) {
	var body models.CreateDealRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondError(ctx, errs.ErrInvalidRequestBody)
		return
	}

	userID := utils.GetUserIdFromContext(ctx)
	deal, err := rh.dealService.Create(userID, &body)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, deal)
}

func (rh *RestHandler) JoinDeal(ctx *gin.Context) {
	dealID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || dealID < 1 {
		respondError(ctx, errs.ErrInvalidParams)
		return
	}

	userID := utils.GetUserIdFromContext(ctx)
	if err := rh.dealService.Join(uint(dealID), userID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.MessageResponse{Message: "Successfully joined deal"})
}
