package db

import (
	"github.com/techagentng/socialgraph/models"
	"gorm.io/gorm"
)

type PostRepository interface {
	CreatePost(post *models.Post) error
	FindPostByID(id uint) (*models.Post, error)
	GetPostsByUserID(userID uint) ([]models.Post, error)
	DeletePost(id uint) error
}

type postRepo struct {
	DB *gorm.DB
}

func NewPostRepo(db *GormDB) PostRepository {
	return &postRepo{db.DB}
}

func (r *postRepo) CreatePost(post *models.Post) error {
	return r.DB.Create(post).Error
}

// FindPostByID loads the post with its owner, comments and media.
func (r *postRepo) FindPostByID(id uint) (*models.Post, error) {
	post := &models.Post{}
	err := r.DB.
		Preload("User").
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Media", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(post, id).Error
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (r *postRepo) GetPostsByUserID(userID uint) ([]models.Post, error) {
	var posts []models.Post
	if err := r.DB.Where("user_id = ?", userID).Order("id").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// DeletePost removes the post; its comments and media are cascaded by the database.
func (r *postRepo) DeletePost(id uint) error {
	return deleteByID(r.DB, &models.Post{}, id)
}
