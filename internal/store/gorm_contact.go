package store

import (
	"gorm.io/gorm"

	"github.com/stayfinder/stayfinder-api/internal/models"
)

type GormContactStore struct {
	db *gorm.DB
}

func NewGormContactStore(db *gorm.DB) *GormContactStore {
	return &GormContactStore{db: db}
}

func (s *GormContactStore) Create(request *models.ContactRequest) error {
	return s.db.Create(request).Error
}

func (s *GormContactStore) ListNewestFirst() ([]models.ContactRequest, error) {
	var requests []models.ContactRequest
	if err := s.db.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}
