package dto

import "github.com/stayfinder/stayfinder-api/internal/models"

type ContactCreateRequest struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	PropertyID string `json:"propertyId"`
}

type ContactCreateResponse struct {
	Message string                `json:"message"`
	Data    models.ContactRequest `json:"data"`
}

type ContactListResponse struct {
	Total int                     `json:"total"`
	Data  []models.ContactRequest `json:"data"`
}
