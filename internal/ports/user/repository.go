package user

import "inkwell/internal/core/user"

// UserRepository is the outbound port for provider-synced profiles.
type UserRepository interface {
	Create(user *user.User) (*user.User, error)
	FindByID(id string) (*user.User, error)
}

type UserDTO struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	ProfileImage *string `json:"profileImage"`
}

// FullName is what the pages show as the author byline.
func (u *UserDTO) FullName() string {
	if u == nil {
		return ""
	}
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
