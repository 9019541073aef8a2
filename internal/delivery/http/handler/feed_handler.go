package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillswap-app/skillswap-backend/internal/usecase/feed"
)

type FeedHandler struct {
	feedUseCase *feed.FeedUseCase
}

func NewFeedHandler(feedUseCase *feed.FeedUseCase) *FeedHandler {
	return &FeedHandler{feedUseCase: feedUseCase}
}

// Candidates handles GET /feed/candidates
func (h *FeedHandler) Candidates(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	candidates, err := h.feedUseCase.Candidates(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"candidates": candidates})
}
