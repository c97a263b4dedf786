package userapp

import (
	"context"
	"fmt"

	userEntity "inkwell/internal/core/user"
	userPort "inkwell/internal/ports/user"
)

// ProfileService keeps local profiles in sync with the identity provider.
// Only creation events have an effect; update and delete notifications are
// acknowledged without action, so local rows can drift from the provider.
type ProfileService struct {
	UserRepository userPort.UserRepository
}

func NewProfileService(repo userPort.UserRepository) *ProfileService {
	return &ProfileService{UserRepository: repo}
}

// SyncCreated inserts the profile delivered by a verified "user.created"
// notification. Webhook delivery is at-least-once: a redelivered event hits
// the primary-key constraint and comes back wrapped around errs.ErrDuplicate.
func (s *ProfileService) SyncCreated(ctx context.Context, id, email, firstName, lastName string, profileImage *string) (*userPort.UserDTO, error) {
	u := &userEntity.User{
		ID:           id,
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		ProfileImage: profileImage,
	}

	created, err := s.UserRepository.Create(u)
	if err != nil {
		return nil, fmt.Errorf("sync created user %s: %w", id, err)
	}

	return &userPort.UserDTO{
		ID:           created.ID,
		Email:        created.Email,
		FirstName:    created.FirstName,
		LastName:     created.LastName,
		ProfileImage: created.ProfileImage,
	}, nil
}
