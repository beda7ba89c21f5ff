package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stayfinder/stayfinder-api/internal/models"
	"github.com/stayfinder/stayfinder-api/internal/store"
)

var ErrMissingContactFields = errors.New("name, phone and propertyId are required")

type ContactService struct {
	contacts   store.ContactStore
	properties store.PropertyStore
}

func NewContactService(contacts store.ContactStore, properties store.PropertyStore) *ContactService {
	return &ContactService{contacts: contacts, properties: properties}
}

// Create validates the reference and appends a contact request. Requests are
// never mutated or deleted afterwards.
func (s *ContactService) Create(name, phone, propertyID string) (*models.ContactRequest, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(phone) == "" || propertyID == "" {
		return nil, ErrMissingContactFields
	}

	if _, err := s.properties.GetByID(propertyID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidPropertyID
		}
		return nil, fmt.Errorf("failed to check property: %w", err)
	}

	request := models.ContactRequest{
		ID:         "c_" + uuid.NewString(),
		Name:       strings.TrimSpace(name),
		Phone:      strings.TrimSpace(phone),
		PropertyID: propertyID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.contacts.Create(&request); err != nil {
		return nil, fmt.Errorf("failed to save contact request: %w", err)
	}
	return &request, nil
}

func (s *ContactService) List() ([]models.ContactRequest, error) {
	requests, err := s.contacts.ListNewestFirst()
	if err != nil {
		return nil, fmt.Errorf("failed to list contact requests: %w", err)
	}
	return requests, nil
}
