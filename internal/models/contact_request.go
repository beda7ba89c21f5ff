package models

import "time"

// ContactRequest records a visitor asking about a property. Append-only:
// nothing in the API mutates or deletes these rows.
type ContactRequest struct {
	ID         string    `gorm:"primaryKey;size:64" json:"id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Phone      string    `gorm:"size:50;not null" json:"phone"`
	PropertyID string    `gorm:"size:64;not null;index" json:"propertyId"`
	CreatedAt  time.Time `gorm:"index:idx_contact_requests_created_at,sort:desc" json:"createdAt"`
}
