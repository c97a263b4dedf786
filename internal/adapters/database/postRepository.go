package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"inkwell/internal/config"
	"inkwell/internal/core/errs"
	"inkwell/internal/core/post"
)

// PostRepositoryDatabase implements the post port on top of GORM.
type PostRepositoryDatabase struct{}

func NewPostRepositoryDatabase() *PostRepositoryDatabase {
	return &PostRepositoryDatabase{}
}

func (repo *PostRepositoryDatabase) Create(p *post.Post) (*post.Post, error) {
	if err := config.DB.Create(p).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrPersistence, err)
	}
	return p, nil
}

func (repo *PostRepositoryDatabase) FindByID(id string) (*post.Post, error) {
	var p post.Post
	if err := config.DB.Preload("Author").Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", errs.ErrPersistence, err)
	}
	return &p, nil
}

func (repo *PostRepositoryDatabase) FindAll() ([]*post.Post, error) {
	var posts []*post.Post
	err := config.DB.Preload("Author").Order("created_at DESC").Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrPersistence, err)
	}
	return posts, nil
}

func (repo *PostRepositoryDatabase) FindByAuthorID(authorID string) ([]*post.Post, error) {
	var posts []*post.Post
	err := config.DB.Preload("Author").
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrPersistence, err)
	}
	return posts, nil
}

func (repo *PostRepositoryDatabase) Update(id, title, content string) (*post.Post, error) {
	var p post.Post
	if err := config.DB.Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", errs.ErrPersistence, err)
	}

	updates := map[string]interface{}{"title": title, "content": content}
	if err := config.DB.Model(&p).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrPersistence, err)
	}
	return &p, nil
}

func (repo *PostRepositoryDatabase) Delete(id string) error {
	res := config.DB.Where("id = ?", id).Delete(&post.Post{})
	if res.Error != nil {
		return fmt.Errorf("%w: %v", errs.ErrPersistence, res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}
