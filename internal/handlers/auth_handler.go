package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hive/internal/errs"
	"hive/internal/models"
	"hive/internal/utils"
)

// Register godoc
// @Summary      Create an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      201  {object}  models.AuthResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /api/auth/register [post]
func (rh *RestHandler) Register(ctx *gin.Context) {
	var body models.RegisterRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Println("Error binding register body:", err)
		respondError(ctx, errs.ErrInvalidRequestBody)
		return
	}

	response, err := rh.authService.Register(&body)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, response)
}

// Login godoc
// @Summary      Log in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.AuthResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /api/auth/login [post]
func (rh *RestHandler) Login(ctx *gin.Context) {
	var body models.LoginRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Println("Error binding login body:", err)
		respondError(ctx, errs.ErrInvalidRequestBody)
		return
	}

	response, err := rh.authService.Login(&body)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (rh *RestHandler) Me(ctx *gin.Context) {
	userID := utils.GetUserIdFromContext(ctx)
	profile, err := rh.authService.Me(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

func (rh *RestHandler) UpdateProfile(ctx *gin.Context) {
	var body models.UpdateProfileRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondError(ctx, errs.ErrInvalidRequestBody)
		return
	}

	userID := utils.GetUserIdFromContext(ctx)
	if err := rh.authService.UpdateProfile(userID, &body); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, models.MessageResponse{Message: "Profile updated successfully"})
}

func (rh *RestHandler) ChangePassword(ctx *gin.Context) {
	var body models.ChangePasswordRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondError(ctx, errs.ErrInvalidRequestBody)
		return
	}

	userID := utils.GetUserIdFromContext(ctx)
	if err := rh.authService.ChangePassword(userID, &body); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, models.MessageResponse{Message: "Password changed successfully"})
}
