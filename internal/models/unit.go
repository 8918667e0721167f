package models

// Unit is a unit of measure. Items store its abbreviation.
type Unit struct {
	Abbreviation string `gorm:"primaryKey;type:varchar(16)" json:"abbreviation"`
	Name         string `gorm:"type:varchar(64);not null;uniqueIndex" json:"name"`
	// Position keeps the seeded order when listing.
	Position uint `gorm:"default:0" json:"position"`
}
