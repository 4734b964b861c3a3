package repository

import (
	"back_office/internal/models"
	"back_office/internal/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MediaRepository interface {
	Create(media *models.Media) error
	GetByID(id uuid.UUID) (*models.Media, error)
	List(filter query.MediaFilter) ([]models.Media, int64, error)
	Delete(id uuid.UUID) error
}

type mediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(media *models.Media) error {
	return r.db.Create(media).Error
}

func (r *mediaRepository) GetByID(id uuid.UUID) (*models.Media, error) {
	var media models.Media
	err := r.db.First(&media, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &media, nil
}

func (r *mediaRepository) List(filter query.MediaFilter) ([]models.Media, int64, error) {
	tx := r.db.Model(&models.Media{})
	if filter.Query != "" {
		tx = tx.Where("file_name ILIKE ?", "%"+filter.Query+"%")
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var items []models.Media
	err := tx.Order("created_at DESC").
		Offset(filter.Skip).
		Limit(filter.Limit).
		Find(&items).Error
	return items, count, err
}

func (r *mediaRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Media{}, "id = ?", id).Error
}
