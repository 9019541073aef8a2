package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skillswap-app/skillswap-backend/internal/usecase/chat"
)

type MessageHandler struct {
	chatUseCase *chat.ChatUseCase
}

func NewMessageHandler(chatUseCase *chat.ChatUseCase) *MessageHandler {
	return &MessageHandler{chatUseCase: chatUseCase}
}

// History handles GET /messages/:partner_id
func (h *MessageHandler) History(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	partnerID, err := strconv.Atoi(c.Param("partner_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid partner_id"})
		return
	}

	messages, err := h.chatUseCase.History(c.Request.Context(), userID, partnerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// ReactRequest carries the emoji to toggle on a message.
type ReactRequest struct {
	Reaction string `json:"reaction" binding:"required"`
}

// React handles PUT /messages/:partner_id/:message_id/reaction
func (h *MessageHandler) React(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	partnerID, err := strconv.Atoi(c.Param("partner_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid partner_id"})
		return
	}

	var req ReactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	msg, err := h.chatUseCase.React(c.Request.Context(), userID, partnerID, c.Param("message_id"), req.Reaction)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}
