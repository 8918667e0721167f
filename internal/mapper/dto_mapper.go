package mapper

import (
	"HomeBoxed/internal/dto"
	"HomeBoxed/internal/inventory"
)

func ToBoxGetDTO(box inventory.Box, items []inventory.Item) dto.BoxGetDTO {
	boxDTO := dto.BoxGetDTO{
		ID:       uint(box.ID),
		Name:     box.Name,
		Location: box.Location,
	}
	if len(items) > 0 {
		boxDTO.Items = ToItemGetDTOs(items, &box.ID)
	}
	return boxDTO
}

func ToBoxGetDTOs(boxes []inventory.Box) []dto.BoxGetDTO {
	boxDTOs := make([]dto.BoxGetDTO, 0, len(boxes))
	for _, box := range boxes {
		boxDTOs = append(boxDTOs, ToBoxGetDTO(box, nil))
	}
	return boxDTOs
}

// ToItemGetDTO converts an item; boxID is nil for unplaced items.
func ToItemGetDTO(item inventory.Item, boxID *inventory.BoxID) dto.ItemGetDTO {
	itemDTO := dto.ItemGetDTO{
		ID:          uint(item.ID),
		Name:        item.Name,
		Description: item.Description,
		Unit:        item.Unit,
	}
	if boxID != nil {
		id := uint(*boxID)
		itemDTO.BoxID = &id
	}
	return itemDTO
}

func ToItemGetDTOs(items []inventory.Item, boxID *inventory.BoxID) []dto.ItemGetDTO {
	itemDTOs := make([]dto.ItemGetDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ToItemGetDTO(item, boxID))
	}
	return itemDTOs
}

func ToSearchResultDTOs(results []inventory.SearchResult) []dto.SearchResultDTO {
	resultDTOs := make([]dto.SearchResultDTO, 0, len(results))
	for _, result := range results {
		boxID := result.Box.ID
		resultDTOs = append(resultDTOs, dto.SearchResultDTO{
			Box:   ToBoxGetDTO(result.Box, nil),
			Items: ToItemGetDTOs(result.Items, &boxID),
		})
	}
	return resultDTOs
}

func ToUnitDTOs(units []inventory.Unit) []dto.UnitDTO {
	unitDTOs := make([]dto.UnitDTO, 0, len(units))
	for _, unit := range units {
		unitDTOs = append(unitDTOs, dto.UnitDTO{Name: unit.Name, Abbreviation: unit.Abbreviation})
	}
	return unitDTOs
}
