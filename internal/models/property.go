package models

// Property is a rental listing. Rows are written once by the seeder and
// never updated afterwards.
type Property struct {
	ID           string `gorm:"primaryKey;size:64" json:"id"`
	Title        string `gorm:"size:255;not null" json:"title"`
	Type         string `gorm:"size:50;index" json:"type"`
	Price        int    `gorm:"not null;index" json:"price"`
	AreaSqft     int    `json:"areaSqft"`
	Furnishing   string `gorm:"size:100" json:"furnishing"`
	Location     string `gorm:"size:255" json:"location"`
	Highlights   string `gorm:"size:255" json:"highlights"`
	Image        string `gorm:"type:text" json:"image"`
	UpdatedLabel string `gorm:"size:50" json:"updatedAt"`
}
