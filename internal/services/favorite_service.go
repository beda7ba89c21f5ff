package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stayfinder/stayfinder-api/internal/models"
	"github.com/stayfinder/stayfinder-api/internal/store"
)

var ErrInvalidPropertyID = errors.New("Invalid propertyId")

type FavoriteService struct {
	favorites  store.FavoriteStore
	properties store.PropertyStore
}

func NewFavoriteService(favorites store.FavoriteStore, properties store.PropertyStore) *FavoriteService {
	return &FavoriteService{favorites: favorites, properties: properties}
}

// List returns the properties the user favorited, in no particular order.
// An empty favorites list skips the property lookup entirely.
func (s *FavoriteService) List(userID string) ([]models.Property, error) {
	favorites, err := s.favorites.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	if len(favorites) == 0 {
		return []models.Property{}, nil
	}

	ids := make([]string, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.PropertyID)
	}

	properties, err := s.properties.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load favorited properties: %w", err)
	}
	return properties, nil
}

// Add upserts the (user, property) pair. Re-adding an existing favorite
// refreshes its created_at rather than erroring.
func (s *FavoriteService) Add(userID, propertyID string) error {
	if _, err := s.properties.GetByID(propertyID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidPropertyID
		}
		return fmt.Errorf("failed to check property: %w", err)
	}

	favorite := models.Favorite{
		ID:         "f_" + uuid.NewString(),
		UserID:     userID,
		PropertyID: propertyID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.favorites.Upsert(&favorite); err != nil {
		return fmt.Errorf("failed to save favorite: %w", err)
	}
	return nil
}

// Remove deletes the pair if present. Removing a favorite that was never
// added is a silent no-op.
func (s *FavoriteService) Remove(userID, propertyID string) error {
	if err := s.favorites.Delete(userID, propertyID); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}
