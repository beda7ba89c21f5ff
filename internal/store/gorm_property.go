package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/stayfinder/stayfinder-api/internal/models"
)

type GormPropertyStore struct {
	db *gorm.DB
}

func NewGormPropertyStore(db *gorm.DB) *GormPropertyStore {
	return &GormPropertyStore{db: db}
}

func (s *GormPropertyStore) List(filter PropertyFilter) ([]models.Property, error) {
	query := s.db.Model(&models.Property{})
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.MaxPrice > 0 {
		query = query.Where("price <= ?", filter.MaxPrice)
	}

	var properties []models.Property
	if err := query.Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

func (s *GormPropertyStore) GetByID(id string) (*models.Property, error) {
	var property models.Property
	if err := s.db.First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &property, nil
}

func (s *GormPropertyStore) GetByIDs(ids []string) ([]models.Property, error) {
	var properties []models.Property
	if err := s.db.Where("id IN ?", ids).Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

func (s *GormPropertyStore) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&models.Property{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *GormPropertyStore) CreateBatch(properties []models.Property) error {
	if len(properties) == 0 {
		return nil
	}
	return s.db.Create(&properties).Error
}
