package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skillswap-app/skillswap-backend/internal/domain"
	"github.com/skillswap-app/skillswap-backend/internal/usecase/session"
)

type SessionHandler struct {
	sessionUseCase *session.SessionUseCase
}

func NewSessionHandler(sessionUseCase *session.SessionUseCase) *SessionHandler {
	return &SessionHandler{sessionUseCase: sessionUseCase}
}

// ProposeRequest offers a session date to a partner.
type ProposeRequest struct {
	PartnerID int       `json:"partner_id" binding:"required"`
	Date      time.Time `json:"date" binding:"required"`
}

// Propose handles POST /sessions/propose
func (h *SessionHandler) Propose(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req ProposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.sessionUseCase.Propose(c.Request.Context(), userID, req.PartnerID, req.Date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// RespondRequest answers a pending proposal.
type RespondRequest struct {
	PartnerID int                     `json:"partner_id" binding:"required"`
	Response  domain.ProposalResponse `json:"response" binding:"required"`
}

// Respond handles POST /sessions/respond
func (h *SessionHandler) Respond(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.sessionUseCase.Respond(c.Request.Context(), userID, req.PartnerID, req.Response)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ExportICS handles GET /sessions/:partner_id/export/ics
func (h *SessionHandler) ExportICS(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	partnerID, err := strconv.Atoi(c.Param("partner_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid partner_id"})
		return
	}

	ics, err := h.sessionUseCase.ExportICS(c.Request.Context(), userID, partnerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="skillswap-session.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(ics))
}

// ExportGoogle handles GET /sessions/:partner_id/export/google
func (h *SessionHandler) ExportGoogle(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	partnerID, err := strconv.Atoi(c.Param("partner_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid partner_id"})
		return
	}

	url, err := h.sessionUseCase.ExportGoogleCalendarURL(c.Request.Context(), userID, partnerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
