package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillswap-app/skillswap-backend/internal/repository"
)

type SkillHandler struct {
	skillRepo repository.SkillRepository
}

func NewSkillHandler(skillRepo repository.SkillRepository) *SkillHandler {
	return &SkillHandler{skillRepo: skillRepo}
}

// List handles GET /skills
func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.skillRepo.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"skills": skills})
}
