package db

import (
	"github.com/techagentng/socialgraph/models"
	"gorm.io/gorm"
)

// FollowerRepository manages the follower junction. Both views are read from
// the same table, only the column treated as "self" differs.
type FollowerRepository interface {
	Follow(followerID, followedID uint) error
	Unfollow(followerID, followedID uint) error
	IsFollowing(followerID, followedID uint) (bool, error)
	GetFollowing(userID uint) ([]models.User, error)
	GetFollowers(userID uint) ([]models.User, error)
}

type followerRepo struct {
	DB *gorm.DB
}

func NewFollowerRepo(db *GormDB) FollowerRepository {
	return &followerRepo{db.DB}
}

// Follow inserts the pair. A repeated pair, a self-follow or an unknown user
// fails with the database's constraint error.
func (r *followerRepo) Follow(followerID, followedID uint) error {
	return r.DB.Create(&models.Follower{FollowerID: followerID, FollowedID: followedID}).Error
}

func (r *followerRepo) Unfollow(followerID, followedID uint) error {
	result := r.DB.
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.Follower{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *followerRepo) IsFollowing(followerID, followedID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&models.Follower{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetFollowing returns the users userID follows.
func (r *followerRepo) GetFollowing(userID uint) ([]models.User, error) {
	return r.related("followed_id", "follower_id", userID)
}

// GetFollowers returns the users following userID.
func (r *followerRepo) GetFollowers(userID uint) ([]models.User, error) {
	return r.related("follower_id", "followed_id", userID)
}

func (r *followerRepo) related(otherColumn, selfColumn string, userID uint) ([]models.User, error) {
	sub := r.DB.Model(&models.Follower{}).
		Select(otherColumn).
		Where(selfColumn+" = ?", userID)

	var users []models.User
	if err := r.DB.Where("id IN (?)", sub).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
