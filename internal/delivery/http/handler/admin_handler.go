package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skillswap-app/skillswap-backend/internal/usecase/admin"
)

type AdminHandler struct {
	adminUseCase *admin.AdminUseCase
}

func NewAdminHandler(adminUseCase *admin.AdminUseCase) *AdminHandler {
	return &AdminHandler{adminUseCase: adminUseCase}
}

// DeleteUser handles DELETE /admin/users/:user_id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	currentID, ok := currentUserID(c)
	if !ok {
		return
	}

	targetID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user_id"})
		return
	}
	if targetID == currentID {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cannot delete yourself"})
		return
	}

	if err := h.adminUseCase.DeleteUser(c.Request.Context(), targetID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
