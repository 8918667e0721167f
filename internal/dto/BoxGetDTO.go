package dto

type BoxGetDTO struct {
	ID       uint         `json:"id"`
	Name     string       `json:"name"`
	Location string       `json:"location,omitempty"`
	Items    []ItemGetDTO `json:"items,omitempty"`
}
