package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skillswap-app/skillswap-backend/internal/domain"
	"github.com/skillswap-app/skillswap-backend/internal/usecase/match"
)

type MatchHandler struct {
	matchUseCase *match.MatchUseCase
}

func NewMatchHandler(matchUseCase *match.MatchUseCase) *MatchHandler {
	return &MatchHandler{matchUseCase: matchUseCase}
}

// ConnectRequest asks to form a match with another user.
type ConnectRequest struct {
	TargetUserID int `json:"target_user_id" binding:"required"`
}

// Connect handles POST /matches/connect
func (h *MatchHandler) Connect(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req ConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.matchUseCase.Connect(c.Request.Context(), userID, req.TargetUserID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateStatusRequest advances the swap status with a partner.
type UpdateStatusRequest struct {
	Status domain.SwapStatus `json:"status" binding:"required"`
}

// UpdateStatus handles PUT /matches/:partner_id/status
func (h *MatchHandler) UpdateStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	partnerID, err := strconv.Atoi(c.Param("partner_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid partner_id"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.matchUseCase.UpdateStatus(c.Request.Context(), userID, partnerID, req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RateRequest scores a completed swap.
type RateRequest struct {
	Rating int `json:"rating" binding:"required,min=1,max=5"`
}

// Rate handles POST /matches/:partner_id/rating
func (h *MatchHandler) Rate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	partnerID, err := strconv.Atoi(c.Param("partner_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid partner_id"})
		return
	}

	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.matchUseCase.RateSession(c.Request.Context(), userID, partnerID, req.Rating); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// List handles GET /matches
func (h *MatchHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	views, err := h.matchUseCase.Matches(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": views})
}
