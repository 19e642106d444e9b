package db

import (
	"github.com/techagentng/socialgraph/models"
	"gorm.io/gorm"
)

type MediaRepository interface {
	CreateMediaType(mediaType *models.MediaType) error
	FindMediaTypeByName(name string) (*models.MediaType, error)
	DeleteMediaType(id uint) error
	SaveMedia(media *models.Media) error
	FindMediaByID(id uint) (*models.Media, error)
	GetMediaByPostID(postID uint) ([]models.Media, error)
}

type mediaRepo struct {
	DB *gorm.DB
}

func NewMediaRepo(db *GormDB) MediaRepository {
	return &mediaRepo{db.DB}
}

func (m *mediaRepo) CreateMediaType(mediaType *models.MediaType) error {
	return m.DB.Create(mediaType).Error
}

func (m *mediaRepo) FindMediaTypeByName(name string) (*models.MediaType, error) {
	mediaType := &models.MediaType{}
	if err := m.DB.Where("name = ?", name).First(mediaType).Error; err != nil {
		return nil, err
	}
	return mediaType, nil
}

// DeleteMediaType removes the type; media that referenced it keep a NULL type.
func (m *mediaRepo) DeleteMediaType(id uint) error {
	return deleteByID(m.DB, &models.MediaType{}, id)
}

func (m *mediaRepo) SaveMedia(media *models.Media) error {
	return m.DB.Create(media).Error
}

func (m *mediaRepo) FindMediaByID(id uint) (*models.Media, error) {
	media := &models.Media{}
	if err := m.DB.Preload("Post").Preload("MediaType").First(media, id).Error; err != nil {
		return nil, err
	}
	return media, nil
}

func (m *mediaRepo) GetMediaByPostID(postID uint) ([]models.Media, error) {
	var media []models.Media
	if err := m.DB.Where("post_id = ?", postID).Order("id").Find(&media).Error; err != nil {
		return nil, err
	}
	return media, nil
}
