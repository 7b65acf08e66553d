package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hive/internal/errs"
	"hive/internal/models"
	"hive/internal/utils"
)

func (rh *RestHandler) GetSkills(ctx *gin.Context) {
	skills, err := rh.skillService.ListAll()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, skills)
}

func (rh *RestHandler) GetMySkills(ctx *gin.Context) {
	userID := utils.GetUserIdFromContext(ctx)
	skills, err := rh.skillService.ListMine(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, skills)
}

func (rh *RestHandler) CreateSkill(ctx *gin.Context) {
	var body models.CreateSkillRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondError(ctx, errs.ErrInvalidRequestBody)
		return
	}

	userID := utils.GetUserIdFromContext(ctx)
	skill, err := rh.skillService.Create(userID, &body)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, skill)
}
