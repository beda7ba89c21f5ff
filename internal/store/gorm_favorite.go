package store

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stayfinder/stayfinder-api/internal/models"
)

type GormFavoriteStore struct {
	db *gorm.DB
}

func NewGormFavoriteStore(db *gorm.DB) *GormFavoriteStore {
	return &GormFavoriteStore{db: db}
}

func (s *GormFavoriteStore) ListByUser(userID string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	if err := s.db.Where("user_id = ?", userID).Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}

// Upsert relies on the composite unique index: ON CONFLICT refreshes
// created_at, so concurrent duplicate adds never fail with a key violation.
func (s *GormFavoriteStore) Upsert(favorite *models.Favorite) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "property_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"created_at": favorite.CreatedAt}),
	}).Create(favorite).Error
}

func (s *GormFavoriteStore) Delete(userID, propertyID string) error {
	return s.db.Where("user_id = ? AND property_id = ?", userID, propertyID).
		Delete(&models.Favorite{}).Error
}
