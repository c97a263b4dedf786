package post

import (
	"time"

	"inkwell/internal/core/post"
	userPort "inkwell/internal/ports/user"
)

// PostRepository is the outbound port for post storage. FindByID, FindAll and
// FindByAuthorID return posts with the author row preloaded; FindAll and
// FindByAuthorID order by descending creation time.
type PostRepository interface {
	Create(post *post.Post) (*post.Post, error)
	FindByID(id string) (*post.Post, error)
	FindAll() ([]*post.Post, error)
	FindByAuthorID(authorID string) ([]*post.Post, error)
	Update(id, title, content string) (*post.Post, error)
	Delete(id string) error
}

type PostDTO struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	AuthorID  string            `json:"authorId"`
	Author    *userPort.UserDTO `json:"author,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}
