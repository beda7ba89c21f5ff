package database

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stayfinder/stayfinder-api/internal/config"
	"github.com/stayfinder/stayfinder-api/internal/models"
	"github.com/stayfinder/stayfinder-api/internal/password"
)

// SeedProperties are the initial listings, inserted once when the table is
// empty. Properties are immutable afterwards.
var SeedProperties = []models.Property{
	{
		ID:           "p1",
		Title:        "1 BHK Flat in Patliputra Colony, Patna",
		Type:         "1 BHK",
		Price:        18000,
		AreaSqft:     1000,
		Furnishing:   "Fully furnished",
		Location:     "Patliputra Garden, Patna",
		Highlights:   "Lift, Natural Light, 24x7 Security",
		Image:        "https://dyimg1.realestateindia.com/prop_images/3075992/1174334_1-350x350.jpg",
		UpdatedLabel: "Updated 3w ago",
	},
	{
		ID:           "p2",
		Title:        "2 BHK Flat in Rajendra Nagar, Patna",
		Type:         "2 BHK",
		Price:        16500,
		AreaSqft:     1250,
		Furnishing:   "Semi furnished",
		Location:     "Rajendra Nagar, Patna",
		Highlights:   "Balcony, Lift, 24x7 Water Supply",
		Image:        "https://images.unsplash.com/photo-1564013799919-ab600027ffc6?auto=format&fit=crop&w=900&q=80",
		UpdatedLabel: "Updated 2d ago",
	},
	{
		ID:           "p3",
		Title:        "2 BHK House in Bailey Road, Patna",
		Type:         "2 BHK",
		Price:        20000,
		AreaSqft:     1400,
		Furnishing:   "Fully furnished",
		Location:     "Bailey Road, Patna",
		Highlights:   "Parking, Power Backup, Family Friendly",
		Image:        "https://images.unsplash.com/photo-1600585154340-be6161a56a0c?auto=format&fit=crop&w=900&q=80",
		UpdatedLabel: "Updated 1d ago",
	},
}

// Seed inserts the initial properties and the default login user when absent.
func Seed(db *gorm.DB, cfg *config.Config) error {
	var propertyCount int64
	if err := db.Model(&models.Property{}).Count(&propertyCount).Error; err != nil {
		return fmt.Errorf("failed to count properties: %w", err)
	}
	if propertyCount == 0 {
		if err := db.Create(&SeedProperties).Error; err != nil {
			return fmt.Errorf("failed to seed properties: %w", err)
		}
		slog.Info("seeded properties", "count", len(SeedProperties))
	}

	email := strings.ToLower(cfg.DefaultUserEmail)
	var existing models.User
	err := db.First(&existing, "email = ?", email).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up default user: %w", err)
	}

	hash, err := password.Hash(cfg.DefaultUserPassword)
	if err != nil {
		return fmt.Errorf("failed to hash default user password: %w", err)
	}

	user := models.User{
		ID:           "u_seed_" + uuid.NewString(),
		Name:         cfg.DefaultUserName,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to seed default user: %w", err)
	}
	slog.Info("seeded default user", "email", email)
	return nil
}
