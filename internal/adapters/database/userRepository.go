package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"inkwell/internal/config"
	"inkwell/internal/core/errs"
	"inkwell/internal/core/user"
)

// UserRepositoryDatabase implements the user port on top of GORM.
type UserRepositoryDatabase struct{}

func NewUserRepositoryDatabase() *UserRepositoryDatabase {
	return &UserRepositoryDatabase{}
}

func (repo *UserRepositoryDatabase) Create(u *user.User) (*user.User, error) {
	if err := config.DB.Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: user %s", errs.ErrDuplicate, u.ID)
		}
		return nil, fmt.Errorf("%w: %v", errs.ErrPersistence, err)
	}
	return u, nil
}

func (repo *UserRepositoryDatabase) FindByID(id string) (*user.User, error) {
	var u user.User
	if err := config.DB.Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", errs.ErrPersistence, err)
	}
	return &u, nil
}
