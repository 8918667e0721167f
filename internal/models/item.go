package models

type Item struct {
	BaseModel
	BoxID       *uint  `gorm:"index" json:"box_id,omitempty"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Unit        string `gorm:"type:varchar(16);not null;default:'ea'" json:"unit"`
	// Position orders items inside a box; it is the placement sequence number.
	Position uint64 `gorm:"default:0" json:"position"`
}
