package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hive/internal/errs"
	"hive/internal/models"
	"hive/internal/utils"
)

// GetConversations godoc
// @Summary      List the caller's conversations
// @Description  One summary per distinct peer, newest conversation first
// @Tags         messages
// @Produce      json
// @Success      200  {array}   models.ConversationSummary
// @Failure      401  {object}  models.ErrorResponse
// @Router       /api/messages/conversations [get]
func (rh *RestHandler) GetConversations(ctx *gin.Context) {
	userID := utils.GetUserIdFromContext(ctx)
	conversations, err := rh.messageService.ListConversations(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, conversations)
}

// GetThread godoc
// @Summary      Fetch the thread with one peer
// @Description  Returns the bidirectional thread oldest first and marks the
// @Description  peer's messages to the caller as read.
// @Tags         messages
// @Produce      json
// @Success      200  {array}   models.ThreadMessageResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /api/messages/with/{userId} [get]
func (rh *RestHandler) GetThread(ctx *gin.Context) {
	userID := utils.GetUserIdFromContext(ctx)

	peerID, err := strconv.Atoi(ctx.Param("userId"))
	if err != nil || peerID < 1 {
		respondError(ctx, errs.ErrInvalidParams)
		return
	}

	messages, err := rh.messageService.FetchThread(userID, uint(peerID))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, messages)
}

// SendMessage godoc
// @Summary      Send a direct message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Success      201  {object}  models.Message
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/messages/send [post]
func (rh *RestHandler) SendMessage(ctx *gin.Context) {
	userID := utils.GetUserIdFromContext(ctx)

	var body models.SendMessageRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondError(ctx, errs.ErrReceiverAndContentMissing)
		return
	}

	message, err := rh.messageService.Send(userID, &body)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, message)
}

// GetUnreadCount godoc
// @Summary      Total unread messages for the caller
// @Tags         messages
// @Produce      json
// @Success      200  {object}  models.UnreadCountResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /api/messages/unread-count [get]
func (rh *RestHandler) GetUnreadCount(ctx *gin.Context) {
	userID := utils.GetUserIdFromContext(ctx)
	count, err := rh.messageService.UnreadCount(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.UnreadCountResponse{Count: count})
}
