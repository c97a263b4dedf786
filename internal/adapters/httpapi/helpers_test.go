package httpapi_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	svix "github.com/svix/svix-webhooks/go"
	"go.uber.org/zap"

	"inkwell/internal/adapters/httpapi"
	"inkwell/internal/config"
	"inkwell/internal/core/errs"
	postPort "inkwell/internal/ports/post"
	uploadPort "inkwell/internal/ports/upload"
	userPort "inkwell/internal/ports/user"
)

var (
	testSessionSecret = []byte("test-session-secret")
	testWebhookKey    = []byte("0123456789abcdef0123456789abcdef")
)

func testWebhookSecret() string {
	return "whsec_" + base64.StdEncoding.EncodeToString(testWebhookKey)
}

func newTestRouter(t *testing.T, profile httpapi.ProfileUseCase, posts httpapi.PostUseCase, upload httpapi.UploadUseCase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.Logger = zap.NewNop()

	verifier, err := svix.NewWebhook(testWebhookSecret())
	require.NoError(t, err)

	return httpapi.SetupRoutes(profile, posts, upload, verifier, testSessionSecret, "/sign-in")
}

func mintSession(t *testing.T, sub string, ttl time.Duration) string {
	t.Helper()
	claims := &jwt.StandardClaims{
		Subject:   sub,
		IssuedAt:  time.Now().Unix(),
		ExpiresAt: time.Now().Add(ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSessionSecret)
	require.NoError(t, err)
	return token
}

// signWebhook produces the provider's envelope headers for a payload:
// v1,base64(hmac-sha256(key, id.timestamp.payload)).
func signWebhook(msgID string, ts time.Time, payload []byte) http.Header {
	mac := hmac.New(sha256.New, testWebhookKey)
	mac.Write([]byte(msgID + "." + strconv.FormatInt(ts.Unix(), 10) + "." + string(payload)))

	h := http.Header{}
	h.Set("svix-id", msgID)
	h.Set("svix-timestamp", strconv.FormatInt(ts.Unix(), 10))
	h.Set("svix-signature", "v1,"+base64.StdEncoding.EncodeToString(mac.Sum(nil)))
	h.Set("content-type", "application/json")
	return h
}

// --- stubs -----------------------------------------------------------------

type syncedProfile struct {
	id, email, firstName, lastName string
	profileImage                   *string
}

type stubProfileUC struct {
	err   error
	calls []syncedProfile
}

func (s *stubProfileUC) SyncCreated(ctx context.Context, id, email, firstName, lastName string, profileImage *string) (*userPort.UserDTO, error) {
	s.calls = append(s.calls, syncedProfile{id, email, firstName, lastName, profileImage})
	if s.err != nil {
		return nil, s.err
	}
	return &userPort.UserDTO{ID: id, Email: email, FirstName: firstName, LastName: lastName, ProfileImage: profileImage}, nil
}

type stubPostUC struct {
	posts map[string]*postPort.PostDTO
	order []string
	next  int
	err   error
}

func newStubPostUC() *stubPostUC {
	return &stubPostUC{posts: make(map[string]*postPort.PostDTO)}
}

func (s *stubPostUC) CreatePost(ctx context.Context, callerID, title, content string) (*postPort.PostDTO, error) {
	if callerID == "" {
		return nil, errs.ErrUnauthorized
	}
	if s.err != nil {
		return nil, s.err
	}
	s.next++
	dto := &postPort.PostDTO{
		ID:        fmt.Sprintf("post_%d", s.next),
		Title:     title,
		Content:   content,
		AuthorID:  callerID,
		CreatedAt: time.Now(),
		Author:    &userPort.UserDTO{ID: callerID, FirstName: "Test", LastName: "User"},
	}
	s.posts[dto.ID] = dto
	s.order = append([]string{dto.ID}, s.order...)
	return dto, nil
}

func (s *stubPostUC) GetPostByID(ctx context.Context, id string) (*postPort.PostDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	p, ok := s.posts[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return p, nil
}

func (s *stubPostUC) ListPosts(ctx context.Context) ([]*postPort.PostDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]*postPort.PostDTO, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.posts[id])
	}
	return out, nil
}

func (s *stubPostUC) ListPostsByAuthor(ctx context.Context, callerID string) ([]*postPort.PostDTO, error) {
	if callerID == "" {
		return nil, errs.ErrUnauthorized
	}
	out := make([]*postPort.PostDTO, 0)
	for _, id := range s.order {
		if s.posts[id].AuthorID == callerID {
			out = append(out, s.posts[id])
		}
	}
	return out, nil
}

func (s *stubPostUC) UpdatePost(ctx context.Context, callerID, id, title, content string) (*postPort.PostDTO, error) {
	if callerID == "" {
		return nil, errs.ErrUnauthorized
	}
	p, ok := s.posts[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	p.Title = title
	p.Content = content
	return p, nil
}

func (s *stubPostUC) DeletePost(ctx context.Context, id string) error {
	if _, ok := s.posts[id]; !ok {
		return errs.ErrNotFound
	}
	delete(s.posts, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

type stubUploadUC struct {
	creds *uploadPort.UploadCredentials
	err   error
}

func (s *stubUploadUC) Credentials(ctx context.Context) (*uploadPort.UploadCredentials, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.creds, nil
}
