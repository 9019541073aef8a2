package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillswap-app/skillswap-backend/internal/usecase/suggest"
)

type SuggestHandler struct {
	suggestUseCase *suggest.SuggestUseCase
}

func NewSuggestHandler(suggestUseCase *suggest.SuggestUseCase) *SuggestHandler {
	return &SuggestHandler{suggestUseCase: suggestUseCase}
}

// SuggestRequest names the two skills being swapped.
type SuggestRequest struct {
	MySkillID      int `json:"my_skill_id" binding:"required"`
	PartnerSkillID int `json:"partner_skill_id" binding:"required"`
}

// ConversationStarters handles POST /suggestions
func (h *SuggestHandler) ConversationStarters(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	var req SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	starters, err := h.suggestUseCase.ConversationStarters(c.Request.Context(), req.MySkillID, req.PartnerSkillID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"starters": starters})
}
