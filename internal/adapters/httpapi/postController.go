package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"inkwell/internal/adapters/httpapi/middleware"
	"inkwell/internal/core/errs"
)

type PostController struct{ pc PostUseCase }

func NewPostController(pc PostUseCase) *PostController { return &PostController{pc: pc} }

// postRequest carries the min/max constraints the editing forms also enforce
// client-side, so a bypassed form cannot slip out-of-bounds content past the
// submission boundary.
type postRequest struct {
	Title   string `json:"title" binding:"required,min=2"`
	Content string `json:"content" binding:"required,min=20,max=3000"`
}

func (ctl *PostController) Create(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input"})
		return
	}

	res, err := ctl.pc.CreatePost(c.Request.Context(), middleware.UserID(c), req.Title, req.Content)
	if err != nil {
		if errors.Is(err, errs.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": res})
}

func (ctl *PostController) List(c *gin.Context) {
	posts, err := ctl.pc.ListPosts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch posts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": posts})
}

func (ctl *PostController) Show(c *gin.Context) {
	res, err := ctl.pc.GetPostByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": res})
}

func (ctl *PostController) Update(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input"})
		return
	}

	res, err := ctl.pc.UpdatePost(c.Request.Context(), middleware.UserID(c), c.Param("id"), req.Title, req.Content)
	if err != nil {
		if errors.Is(err, errs.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": res})
}

func (ctl *PostController) Delete(c *gin.Context) {
	if err := ctl.pc.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Post deleted"})
}
