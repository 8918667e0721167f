package services

import (
	"HomeBoxed/internal/inventory"
	"fmt"
	"github.com/sirupsen/logrus"
)

type MoverService interface {
	MoveAll(fromBoxID, toBoxID inventory.BoxID) (int, error)
	CopyItem(itemID inventory.ItemID, toBoxID inventory.BoxID) (inventory.Item, error)
}

type MoverServiceImpl struct {
	inventoryService InventoryService
	logService       LogService
}

func NewMoverService(inventoryService InventoryService, logService LogService) MoverService {
	return &MoverServiceImpl{
		inventoryService: inventoryService,
		logService:       logService,
	}
}

// MoveAll empties one box into another, keeping the items' order.
func (m *MoverServiceImpl) MoveAll(fromBoxID, toBoxID inventory.BoxID) (int, error) {
	items, err := m.inventoryService.ListItemsInBox(fromBoxID)
	if err != nil {
		return 0, fmt.Errorf("error with source box: %w", err)
	}
	if _, err := m.inventoryService.GetBox(toBoxID); err != nil {
		return 0, fmt.Errorf("error with destination box: %w", err)
	}
	if fromBoxID == toBoxID {
		return 0, nil
	}

	ids := make([]inventory.ItemID, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	moved, err := m.inventoryService.PlaceItems(ids, toBoxID)
	if err != nil {
		return 0, fmt.Errorf("failed to move items: %w", err)
	}
	m.logService.Log.WithFields(logrus.Fields{
		"from":  fromBoxID,
		"to":    toBoxID,
		"count": moved,
	}).Info("box emptied")
	return moved, nil
}

// CopyItem creates a new item with the same name, description and unit and places
// it into toBoxID. The source item is left where it is.
func (m *MoverServiceImpl) CopyItem(itemID inventory.ItemID, toBoxID inventory.BoxID) (inventory.Item, error) {
	source, err := m.inventoryService.GetItem(itemID)
	if err != nil {
		return inventory.Item{}, fmt.Errorf("error with source item: %w", err)
	}
	if _, err := m.inventoryService.GetBox(toBoxID); err != nil {
		return inventory.Item{}, fmt.Errorf("error with destination box: %w", err)
	}

	copied, err := m.inventoryService.CreateItem(source.Name, source.Description, source.Unit)
	if err != nil {
		return inventory.Item{}, fmt.Errorf("failed to create new item record: %w", err)
	}
	if err := m.inventoryService.PlaceItem(copied.ID, toBoxID); err != nil {
		if deleteErr := m.inventoryService.DeleteItem(copied.ID); deleteErr != nil {
			m.logService.Log.WithFields(logrus.Fields{
				"item":  copied.ID,
				"error": deleteErr.Error(),
			}).Warn("Failed to remove copy after placement error")
		}
		return inventory.Item{}, fmt.Errorf("failed to place copy: %w", err)
	}
	return copied, nil
}
