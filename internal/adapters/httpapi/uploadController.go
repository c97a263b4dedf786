package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inkwell/internal/adapters/httpapi/middleware"
)

// MaxUploadBytes is the advisory client-side limit checked before the
// browser even requests credentials. The image service enforces its own
// limits; this is not a security boundary.
const MaxUploadBytes = 3 << 20

type UploadController struct{ uc UploadUseCase }

func NewUploadController(uc UploadUseCase) *UploadController {
	return &UploadController{uc: uc}
}

// Credentials issues signed upload parameters to an authenticated caller.
// Every failure is reported as HTTP 200 with a uniform failure body; callers
// inspect the body, not the status code.
func (ctl *UploadController) Credentials(c *gin.Context) {
	if middleware.UserID(c) == "" {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	creds, err := ctl.uc.Credentials(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Failed to generate auth parameters"})
		return
	}

	c.JSON(http.StatusOK, creds)
}
