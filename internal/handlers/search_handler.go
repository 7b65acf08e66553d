package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hive/internal/utils"
)

func (rh *RestHandler) Search(ctx *gin.Context) {
	userID := utils.GetUserIdFromContext(ctx)
	query := ctx.Query("q")
	searchType := ctx.Query("type")

	var category *string
	if value := ctx.Query("category"); value != "" {
		category = &value
	}

	results, err := rh.searchService.Search(userID, query, searchType, category)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}
