package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/skillswap-app/skillswap-backend/internal/repository"
	"github.com/skillswap-app/skillswap-backend/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postContext(t *testing.T, userID int, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id", userID)
	c.Request = httptest.NewRequest(http.MethodPost, "/posts", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestCreateAndListPosts(t *testing.T) {
	store := memory.NewPostStore()
	h := NewPostHandler(store)

	c, w := postContext(t, 1, `{"caption":"offering guitar lessons"}`)
	h.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)

	posts, err := store.ListByAuthor(c.Request.Context(), 1)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "offering guitar lessons", posts[0].Caption)
	assert.NotEmpty(t, posts[0].ID)

	listCtx, lw := listContext(t, 1, "1")
	h.ListByAuthor(listCtx)
	assert.Equal(t, http.StatusOK, lw.Code)
	assert.Contains(t, lw.Body.String(), "offering guitar lessons")
}

func TestCreatePostRejectsEmptyBody(t *testing.T) {
	var store repository.PostRepository = memory.NewPostStore()
	h := NewPostHandler(store)

	c, w := postContext(t, 1, `{}`)
	h.Create(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func listContext(t *testing.T, userID int, authorParam string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id", userID)
	c.Params = gin.Params{{Key: "user_id", Value: authorParam}}
	c.Request = httptest.NewRequest(http.MethodGet, "/posts/"+authorParam, nil)
	return c, w
}
