package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/skillswap-app/skillswap-backend/internal/domain"
	"github.com/skillswap-app/skillswap-backend/internal/repository"
)

type PostHandler struct {
	postRepo repository.PostRepository
}

func NewPostHandler(postRepo repository.PostRepository) *PostHandler {
	return &PostHandler{postRepo: postRepo}
}

// CreatePostRequest carries a new feed post.
type CreatePostRequest struct {
	Caption string `json:"caption" binding:"required"`
}

// Create handles POST /posts
func (h *PostHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	post := &domain.Post{
		ID:        uuid.NewString(),
		AuthorID:  userID,
		Caption:   req.Caption,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.postRepo.Create(c.Request.Context(), post); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// ListByAuthor handles GET /posts/:user_id
func (h *PostHandler) ListByAuthor(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	authorID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user_id"})
		return
	}

	posts, err := h.postRepo.ListByAuthor(c.Request.Context(), authorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}
