package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hive/internal/errs"
	"hive/internal/models"
	"hive/internal/utils"
)

func (rh *RestHandler) GetPosts(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.Query("page"))
	size, _ := strconv.Atoi(ctx.Query("size"))

	posts, err := rh.postService.ListFeed(page, size)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, posts)
}

func (rh *RestHandler) GetMyPosts(ctx *gin.Context) {
	userID := utils.GetUserIdFromContext(ctx)
	posts, err := rh.postService.ListMine(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, posts)
}

func (rh *RestHandler) CreatePost(ctx *gin.Context) {
	var body models.CreatePostRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondError(ctx, errs.ErrInvalidRequestBody)
		return
	}

	userID := utils.GetUserIdFromContext(ctx)
	post, err := rh.postService.Create(userID, &body)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, post)
}

func (rh *RestHandler) LikePost(ctx *gin.Context) {
	postID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || postID < 1 {
		respondError(ctx, errs.ErrInvalidParams)
		return
	}

	userID := utils.GetUserIdFromContext(ctx)
	if err := rh.postService.Like(uint(postID), userID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.MessageResponse{Message: "Post liked"})
}
