package dto

type SearchResultDTO struct {
	Box   BoxGetDTO    `json:"box"`
	Items []ItemGetDTO `json:"items"`
}
