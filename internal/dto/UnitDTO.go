package dto

type UnitDTO struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}
