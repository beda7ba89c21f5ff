// Package store defines the persistence interfaces the services depend on
// and their GORM-backed implementations. Services never see *gorm.DB.
package store

import (
	"errors"

	"github.com/stayfinder/stayfinder-api/internal/models"
)

// ErrNotFound is returned by lookups when no row matches.
var ErrNotFound = errors.New("record not found")

// PropertyFilter narrows a property listing. Zero values mean "no filter";
// MaxPrice is only applied when positive.
type PropertyFilter struct {
	Type     string
	MaxPrice int
}

type UserStore interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

type PropertyStore interface {
	List(filter PropertyFilter) ([]models.Property, error)
	GetByID(id string) (*models.Property, error)
	GetByIDs(ids []string) ([]models.Property, error)
	Count() (int64, error)
	CreateBatch(properties []models.Property) error
}

type FavoriteStore interface {
	ListByUser(userID string) ([]models.Favorite, error)
	// Upsert inserts the pair or, when it already exists, refreshes its
	// created_at. Atomicity is delegated to the database's conflict clause.
	Upsert(favorite *models.Favorite) error
	// Delete removes the pair if present; a missing pair is not an error.
	Delete(userID, propertyID string) error
}

type ContactStore interface {
	Create(request *models.ContactRequest) error
	// ListNewestFirst returns all contact requests ordered by created_at
	// descending.
	ListNewestFirst() ([]models.ContactRequest, error)
}
