package mapper

import (
	"HomeBoxed/internal/inventory"
	"HomeBoxed/internal/models"
	"sort"
)

func ToBoxModel(box inventory.Box) *models.Box {
	return &models.Box{
		BaseModel: models.BaseModel{ID: uint(box.ID)},
		Name:      box.Name,
		Location:  box.Location,
	}
}

func ToItemModel(item inventory.Item) *models.Item {
	return &models.Item{
		BaseModel:   models.BaseModel{ID: uint(item.ID)},
		Name:        item.Name,
		Description: item.Description,
		Unit:        item.Unit,
	}
}

// ToSnapshot builds a model snapshot from stored rows. Items whose box is not
// among boxes are left unplaced and returned as orphans.
func ToSnapshot(boxes []models.Box, items []models.Item) (inventory.Snapshot, []models.Item) {
	var snapshot inventory.Snapshot
	known := make(map[uint]bool, len(boxes))
	for _, box := range boxes {
		known[box.ID] = true
		snapshot.Boxes = append(snapshot.Boxes, inventory.Box{
			ID:       inventory.BoxID(box.ID),
			Name:     box.Name,
			Location: box.Location,
		})
	}

	var placed, orphans []models.Item
	for _, item := range items {
		snapshot.Items = append(snapshot.Items, inventory.Item{
			ID:          inventory.ItemID(item.ID),
			Name:        item.Name,
			Description: item.Description,
			Unit:        item.Unit,
		})
		if item.BoxID == nil {
			continue
		}
		if !known[*item.BoxID] {
			orphans = append(orphans, item)
			continue
		}
		placed = append(placed, item)
	}

	sort.SliceStable(placed, func(i, j int) bool {
		if placed[i].Position != placed[j].Position {
			return placed[i].Position < placed[j].Position
		}
		return placed[i].ID < placed[j].ID
	})
	for _, item := range placed {
		snapshot.Placements = append(snapshot.Placements, inventory.Placement{
			Item: inventory.ItemID(item.ID),
			Box:  inventory.BoxID(*item.BoxID),
		})
	}
	return snapshot, orphans
}

// ToUnitModels keeps the order of units in Position.
func ToUnitModels(units []inventory.Unit) []models.Unit {
	unitModels := make([]models.Unit, 0, len(units))
	for i, unit := range units {
		unitModels = append(unitModels, models.Unit{
			Abbreviation: unit.Abbreviation,
			Name:         unit.Name,
			Position:     uint(i),
		})
	}
	return unitModels
}

func ToUnits(unitModels []models.Unit) []inventory.Unit {
	units := make([]inventory.Unit, 0, len(unitModels))
	for _, unit := range unitModels {
		units = append(units, inventory.Unit{Name: unit.Name, Abbreviation: unit.Abbreviation})
	}
	return units
}
