package db

import (
	"github.com/techagentng/socialgraph/models"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(user *models.User) (*models.User, error)
	FindUserByID(id uint) (*models.User, error)
	FindUserByEmail(email string) (*models.User, error)
	FindUserWithContent(id uint) (*models.User, error)
	DeleteUser(id uint) error
}

type userRepo struct {
	DB *gorm.DB
}

func NewUserRepo(db *GormDB) UserRepository {
	return &userRepo{db.DB}
}

// CreateUser inserts the user. Constraint errors from the database are returned as is.
func (u *userRepo) CreateUser(user *models.User) (*models.User, error) {
	if err := u.DB.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userRepo) FindUserByID(id uint) (*models.User, error) {
	user := &models.User{}
	if err := u.DB.First(user, id).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userRepo) FindUserByEmail(email string) (*models.User, error) {
	user := &models.User{}
	if err := u.DB.Where("email = ?", email).First(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// FindUserWithContent loads the user along with their posts and authored comments.
func (u *userRepo) FindUserWithContent(id uint) (*models.User, error) {
	user := &models.User{}
	err := u.DB.
		Preload("Posts", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(user, id).Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the user. Posts, comments and follower rows go with it.
func (u *userRepo) DeleteUser(id uint) error {
	return deleteByID(u.DB, &models.User{}, id)
}

func deleteByID(db *gorm.DB, model interface{}, id uint) error {
	result := db.Delete(model, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
