package services

import (
	"errors"
	"fmt"

	"github.com/stayfinder/stayfinder-api/internal/models"
	"github.com/stayfinder/stayfinder-api/internal/store"
)

var ErrPropertyNotFound = errors.New("Property not found")

type PropertyService struct {
	properties store.PropertyStore
}

func NewPropertyService(properties store.PropertyStore) *PropertyService {
	return &PropertyService{properties: properties}
}

// List returns all properties matching the optional filters: bhk is an exact
// match on the type field, maxPrice an inclusive upper bound ignored unless
// positive.
func (s *PropertyService) List(bhk string, maxPrice int) ([]models.Property, error) {
	properties, err := s.properties.List(store.PropertyFilter{Type: bhk, MaxPrice: maxPrice})
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return properties, nil
}

func (s *PropertyService) Get(id string) (*models.Property, error) {
	property, err := s.properties.GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to load property: %w", err)
	}
	return property, nil
}
