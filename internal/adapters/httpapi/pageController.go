package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"inkwell/internal/adapters/httpapi/middleware"
	"inkwell/internal/config"
	"inkwell/internal/core/errs"
)

// PageController renders the HTML surface: public feed and detail pages,
// and the session-gated create/edit/dashboard pages.
type PageController struct{ pc PostUseCase }

func NewPageController(pc PostUseCase) *PageController { return &PageController{pc: pc} }

func (ctl *PageController) Feed(c *gin.Context) {
	posts, err := ctl.pc.ListPosts(c.Request.Context())
	if err != nil {
		config.Logger.Error("failed to load feed", zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.HTML(http.StatusOK, "feed.html", gin.H{
		"Posts":  posts,
		"UserID": middleware.UserID(c),
	})
}

func (ctl *PageController) Show(c *gin.Context) {
	p, err := ctl.pc.GetPostByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			c.HTML(http.StatusNotFound, "notfound.html", nil)
			return
		}
		config.Logger.Error("failed to load post page", zap.String("id", c.Param("id")), zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.HTML(http.StatusOK, "post.html", gin.H{
		"Post":   p,
		"UserID": middleware.UserID(c),
	})
}

func (ctl *PageController) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "create.html", gin.H{
		"MaxUploadBytes": MaxUploadBytes,
	})
}

func (ctl *PageController) EditForm(c *gin.Context) {
	p, err := ctl.pc.GetPostByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			c.HTML(http.StatusNotFound, "notfound.html", nil)
			return
		}
		config.Logger.Error("failed to load edit page", zap.String("id", c.Param("id")), zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.HTML(http.StatusOK, "edit.html", gin.H{
		"Post":           p,
		"MaxUploadBytes": MaxUploadBytes,
	})
}

// Dashboard lists the caller's own posts. This page is the only place the
// delete control is rendered, which is where its ownership gate lives.
func (ctl *PageController) Dashboard(c *gin.Context) {
	userID := middleware.UserID(c)

	posts, err := ctl.pc.ListPostsByAuthor(c.Request.Context(), userID)
	if err != nil {
		config.Logger.Error("failed to load dashboard", zap.String("userID", userID), zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Posts":  posts,
		"UserID": userID,
	})
}
