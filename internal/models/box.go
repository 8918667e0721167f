package models

type Box struct {
	BaseModel
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	Location string `gorm:"type:varchar(255)" json:"location,omitempty"`
	Items    []Item `gorm:"foreignKey:BoxID" json:"items,omitempty"`
}
