package db

import (
	"github.com/techagentng/socialgraph/models"
	"gorm.io/gorm"
)

type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	FindCommentByID(id uint) (*models.Comment, error)
	GetCommentsByPostID(postID uint) ([]models.Comment, error)
	GetCommentsByAuthorID(authorID uint) ([]models.Comment, error)
	DeleteComment(id uint) error
}

type commentRepo struct {
	DB *gorm.DB
}

func NewCommentRepo(db *GormDB) CommentRepository {
	return &commentRepo{db.DB}
}

func (r *commentRepo) CreateComment(comment *models.Comment) error {
	return r.DB.Create(comment).Error
}

// FindCommentByID loads the comment with its author and post.
func (r *commentRepo) FindCommentByID(id uint) (*models.Comment, error) {
	comment := &models.Comment{}
	if err := r.DB.Preload("Author").Preload("Post").First(comment, id).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func (r *commentRepo) GetCommentsByPostID(postID uint) ([]models.Comment, error) {
	return r.findComments("post_id = ?", postID)
}

func (r *commentRepo) GetCommentsByAuthorID(authorID uint) ([]models.Comment, error) {
	return r.findComments("author_id = ?", authorID)
}

func (r *commentRepo) findComments(query string, id uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.DB.Where(query, id).Order("id").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepo) DeleteComment(id uint) error {
	return deleteByID(r.DB, &models.Comment{}, id)
}
