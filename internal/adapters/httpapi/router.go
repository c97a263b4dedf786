package httpapi

import (
	"context"

	"github.com/gin-gonic/gin"
	svix "github.com/svix/svix-webhooks/go"

	"inkwell/internal/adapters/httpapi/middleware"
	postPort "inkwell/internal/ports/post"
	uploadPort "inkwell/internal/ports/upload"
	userPort "inkwell/internal/ports/user"
)

// Inbound ports: what the controllers need from the use-case layer.

type PostUseCase interface {
	CreatePost(ctx context.Context, callerID, title, content string) (*postPort.PostDTO, error)
	GetPostByID(ctx context.Context, id string) (*postPort.PostDTO, error)
	ListPosts(ctx context.Context) ([]*postPort.PostDTO, error)
	ListPostsByAuthor(ctx context.Context, callerID string) ([]*postPort.PostDTO, error)
	UpdatePost(ctx context.Context, callerID, id, title, content string) (*postPort.PostDTO, error)
	DeletePost(ctx context.Context, id string) error
}

type ProfileUseCase interface {
	SyncCreated(ctx context.Context, id, email, firstName, lastName string, profileImage *string) (*userPort.UserDTO, error)
}

type UploadUseCase interface {
	Credentials(ctx context.Context) (*uploadPort.UploadCredentials, error)
}

// SetupRoutes wires controllers to routes. Use cases are injected from main.
func SetupRoutes(
	profileUC ProfileUseCase,
	postUC PostUseCase,
	uploadUC UploadUseCase,
	verifier *svix.Webhook,
	sessionSecret []byte,
	signInURL string,
) *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(pageTemplates())

	wc := NewWebhookController(verifier, profileUC)
	pc := NewPostController(postUC)
	upc := NewUploadController(uploadUC)
	pg := NewPageController(postUC)

	// Public pages: the feed and post detail need no session, but resolve
	// one when present so the nav and the author's edit controls render.
	r.GET("/", middleware.OptionalSession(sessionSecret), pg.Feed)
	r.GET("/posts/:id", middleware.OptionalSession(sessionSecret), pg.Show)

	// Session-gated pages; unauthenticated visitors are redirected to
	// sign-in before the handler runs.
	pages := r.Group("/", middleware.RequirePageSession(sessionSecret, signInURL))
	pages.GET("/create", pg.CreateForm)
	pages.GET("/edit/:id", pg.EditForm)
	pages.GET("/dashboard", pg.Dashboard)

	// Identity-provider webhook.
	r.POST("/api/webhooks", wc.Handle)

	// Upload credentials report failures in the body, not the status code,
	// so the session here is optional rather than enforced by middleware.
	r.GET("/api/imagekit-auth", middleware.OptionalSession(sessionSecret), upc.Credentials)

	// Post actions. Reads are public; mutations require a session.
	r.GET("/api/posts", pc.List)
	r.GET("/api/posts/:id", pc.Show)

	api := r.Group("/api", middleware.RequireSession(sessionSecret))
	api.POST("/posts", pc.Create)
	api.PUT("/posts/:id", pc.Update)
	api.DELETE("/posts/:id", pc.Delete)

	return r
}
