package dto

import "github.com/stayfinder/stayfinder-api/internal/models"

type PropertyListResponse struct {
	Total int               `json:"total"`
	Data  []models.Property `json:"data"`
}

type FavoriteAddRequest struct {
	PropertyID string `json:"propertyId"`
}

type FavoriteMutationResponse struct {
	Message    string `json:"message"`
	PropertyID string `json:"propertyId"`
}
