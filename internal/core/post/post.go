package post

import (
	"time"

	"github.com/gofrs/uuid"

	"inkwell/internal/core/user"
)

// Post is a user-authored article. AuthorID is set once at creation from the
// authenticated caller and never reassigned.
type Post struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36)"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:text;not null"`
	AuthorID  string    `gorm:"type:varchar(64);not null;index"`
	Author    user.User `gorm:"foreignkey:AuthorID"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
