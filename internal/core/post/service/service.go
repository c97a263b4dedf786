package postapp

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"

	"inkwell/internal/core/errs"
	postEntity "inkwell/internal/core/post"
	postPort "inkwell/internal/ports/post"
	userPort "inkwell/internal/ports/user"
)

// PostService implements the post lifecycle: creation, public reads,
// authenticated mutation, deletion.
type PostService struct {
	PostRepository postPort.PostRepository
}

func NewPostService(postRepo postPort.PostRepository) *PostService {
	return &PostService{PostRepository: postRepo}
}

// CreatePost stores a new post owned by the caller. The author is always the
// authenticated caller; it cannot be supplied by the request.
func (s *PostService) CreatePost(ctx context.Context, callerID, title, content string) (*postPort.PostDTO, error) {
	if callerID == "" {
		return nil, errs.ErrUnauthorized
	}

	p := &postEntity.Post{
		ID:       uuid.Must(uuid.NewV4()),
		Title:    title,
		Content:  content,
		AuthorID: callerID,
	}

	created, err := s.PostRepository.Create(p)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	return toDTO(created), nil
}

// GetPostByID returns a single post with its author embedded. Public.
func (s *PostService) GetPostByID(ctx context.Context, id string) (*postPort.PostDTO, error) {
	p, err := s.PostRepository.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("get post %s: %w", id, err)
	}
	return toDTO(p), nil
}

// ListPosts returns every post, newest first, with authors embedded. Public.
func (s *PostService) ListPosts(ctx context.Context) ([]*postPort.PostDTO, error) {
	posts, err := s.PostRepository.FindAll()
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	dtos := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, toDTO(p))
	}
	return dtos, nil
}

// ListPostsByAuthor returns the caller's own posts, newest first.
func (s *PostService) ListPostsByAuthor(ctx context.Context, callerID string) ([]*postPort.PostDTO, error) {
	if callerID == "" {
		return nil, errs.ErrUnauthorized
	}

	posts, err := s.PostRepository.FindByAuthorID(callerID)
	if err != nil {
		return nil, fmt.Errorf("list posts by author: %w", err)
	}

	dtos := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, toDTO(p))
	}
	return dtos, nil
}

// UpdatePost replaces title and content. Any authenticated caller may update
// any post; ownership gates only which pages render the edit controls.
func (s *PostService) UpdatePost(ctx context.Context, callerID, id, title, content string) (*postPort.PostDTO, error) {
	if callerID == "" {
		return nil, errs.ErrUnauthorized
	}

	updated, err := s.PostRepository.Update(id, title, content)
	if err != nil {
		return nil, fmt.Errorf("update post %s: %w", id, err)
	}

	return toDTO(updated), nil
}

// DeletePost removes a post by identifier. The data layer performs no
// ownership check; the dashboard renders the delete control only for the
// author.
func (s *PostService) DeletePost(ctx context.Context, id string) error {
	if err := s.PostRepository.Delete(id); err != nil {
		return fmt.Errorf("delete post %s: %w", id, err)
	}
	return nil
}

func toDTO(p *postEntity.Post) *postPort.PostDTO {
	dto := &postPort.PostDTO{
		ID:        p.ID.String(),
		Title:     p.Title,
		Content:   p.Content,
		AuthorID:  p.AuthorID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Author.ID != "" {
		dto.Author = &userPort.UserDTO{
			ID:           p.Author.ID,
			Email:        p.Author.Email,
			FirstName:    p.Author.FirstName,
			LastName:     p.Author.LastName,
			ProfileImage: p.Author.ProfileImage,
		}
	}
	return dto
}
