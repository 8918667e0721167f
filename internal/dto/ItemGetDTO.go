package dto

type ItemGetDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Unit        string `json:"unit,omitempty"`
	BoxID       *uint  `json:"box_id,omitempty"`
}
