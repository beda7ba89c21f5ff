package models

import "time"

// Favorite links a user to a property they saved. The (user_id, property_id)
// pair is unique; re-adding refreshes CreatedAt instead of failing.
type Favorite struct {
	ID         string    `gorm:"primaryKey;size:64" json:"id"`
	UserID     string    `gorm:"size:64;not null;uniqueIndex:idx_favorites_user_property" json:"userId"`
	PropertyID string    `gorm:"size:64;not null;uniqueIndex:idx_favorites_user_property" json:"propertyId"`
	CreatedAt  time.Time `json:"createdAt"`
}
