package services

import (
	"HomeBoxed/internal/inventory"
	"HomeBoxed/internal/mapper"
	"HomeBoxed/internal/models"
	"HomeBoxed/internal/repository"
	"fmt"
	"github.com/sirupsen/logrus"
	"sync"
)

type InventoryService interface {
	CreateBox(name, location string) (inventory.Box, error)
	// CreateItem counts the item in unit, a unit name or abbreviation; empty
	// means each.
	CreateItem(name, description, unit string) (inventory.Item, error)
	PlaceItem(itemID inventory.ItemID, boxID inventory.BoxID) error
	PlaceItems(itemIDs []inventory.ItemID, boxID inventory.BoxID) (int, error)
	RemoveItemFromBox(itemID inventory.ItemID) error
	DeleteBox(boxID inventory.BoxID) error
	DeleteItem(itemID inventory.ItemID) error
	// FindBoxOfItem returns nil when the item is unplaced.
	FindBoxOfItem(itemID inventory.ItemID) (*inventory.Box, error)
	ListItemsInBox(boxID inventory.BoxID) ([]inventory.Item, error)
	GetBox(boxID inventory.BoxID) (inventory.Box, error)
	GetItem(itemID inventory.ItemID) (inventory.Item, error)
	GetBoxes() ([]inventory.Box, error)
	GetItems() ([]inventory.Item, error)
	GetUnplacedItems() ([]inventory.Item, error)
	UpdateBox(boxID inventory.BoxID, name, location string) (inventory.Box, error)
	UpdateItem(itemID inventory.ItemID, name, description, unit string) (inventory.Item, error)
	Search(query string) ([]inventory.SearchResult, error)
	GetUnits() ([]inventory.Unit, error)
}

// inventoryServiceImpl serializes access to one inventory.Model and writes
// every change through to the repositories before applying it to the model.
type inventoryServiceImpl struct {
	mutex        sync.Mutex
	model        *inventory.Model
	nextPosition uint64
	boxRepo      repository.BoxRepository
	itemRepo     repository.ItemRepository
	seqRepo      repository.SequenceRepository
	unitRepo     repository.UnitRepository
	logService   LogService
}

func NewInventoryService(
	boxRepo repository.BoxRepository,
	itemRepo repository.ItemRepository,
	seqRepo repository.SequenceRepository,
	unitRepo repository.UnitRepository,
	logService LogService,
) (InventoryService, error) {
	s := &inventoryServiceImpl{
		boxRepo:    boxRepo,
		itemRepo:   itemRepo,
		seqRepo:    seqRepo,
		unitRepo:   unitRepo,
		logService: logService,
	}
	if err := s.load(); err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}
	return s, nil
}

func (s *inventoryServiceImpl) load() error {
	boxes, err := s.boxRepo.FindAll()
	if err != nil {
		return err
	}
	items, err := s.itemRepo.FindAll()
	if err != nil {
		return err
	}
	units, err := s.unitRepo.FindAll()
	if err != nil {
		return err
	}
	snapshot, orphans := mapper.ToSnapshot(boxes, items)
	snapshot.Units = mapper.ToUnits(units)
	for _, orphan := range orphans {
		s.logService.Log.WithFields(logrus.Fields{
			"item":  orphan.ID,
			"boxId": *orphan.BoxID,
		}).Warn("item refers to a missing box, loading it unplaced")
	}

	nextBox, err := s.nextValue(models.SequenceBox, s.boxRepo.MaxID)
	if err != nil {
		return err
	}
	nextItem, err := s.nextValue(models.SequenceItem, s.itemRepo.MaxID)
	if err != nil {
		return err
	}
	snapshot.NextBoxID = inventory.BoxID(nextBox)
	snapshot.NextItemID = inventory.ItemID(nextItem)

	s.model, err = inventory.Restore(snapshot)
	if err != nil {
		return err
	}

	storedPosition, err := s.seqRepo.Get(models.SequencePlacement)
	if err != nil {
		return err
	}
	maxPosition, err := s.itemRepo.MaxPosition()
	if err != nil {
		return err
	}
	s.nextPosition = max(storedPosition, maxPosition+1)

	s.logService.Log.WithFields(logrus.Fields{
		"boxes": len(snapshot.Boxes),
		"items": len(snapshot.Items),
	}).Debug("inventory loaded")
	return nil
}

// nextValue is the larger of the stored sequence and one past the highest
// row id ever written.
func (s *inventoryServiceImpl) nextValue(name string, maxID func() (uint, error)) (uint64, error) {
	stored, err := s.seqRepo.Get(name)
	if err != nil {
		return 0, err
	}
	highest, err := maxID()
	if err != nil {
		return 0, err
	}
	return max(stored, uint64(highest)+1), nil
}

func (s *inventoryServiceImpl) CreateBox(name, location string) (inventory.Box, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	id := s.model.CreateBox(name, location)
	box, _ := s.model.Box(id)
	err := s.boxRepo.CreateWithSequence(mapper.ToBoxModel(box), models.SequenceBox, uint64(s.model.NextBoxID()))
	if err != nil {
		_ = s.model.DeleteBox(id)
		return inventory.Box{}, err
	}
	s.logService.Log.WithFields(logrus.Fields{"op": "create_box", "box": id}).Info("box created")
	return box, nil
}

func (s *inventoryServiceImpl) CreateItem(name, description, unit string) (inventory.Item, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	abbreviation, err := s.model.ResolveUnit(unit)
	if err != nil {
		return inventory.Item{}, err
	}
	id := s.model.CreateItem(name, description)
	_ = s.model.SetItemUnit(id, abbreviation)
	item, _ := s.model.Item(id)
	err = s.itemRepo.CreateWithSequence(mapper.ToItemModel(item), models.SequenceItem, uint64(s.model.NextItemID()))
	if err != nil {
		_ = s.model.DeleteItem(id)
		return inventory.Item{}, err
	}
	s.logService.Log.WithFields(logrus.Fields{"op": "create_item", "item": id}).Info("item created")
	return item, nil
}

func (s *inventoryServiceImpl) PlaceItem(itemID inventory.ItemID, boxID inventory.BoxID) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	current, placed, err := s.model.FindBoxOfItem(itemID)
	if err != nil {
		return err
	}
	if _, err := s.model.Box(boxID); err != nil {
		return err
	}
	if placed && current == boxID {
		return nil
	}
	if err := s.itemRepo.Place(uint(itemID), uint(boxID), s.nextPosition); err != nil {
		return err
	}
	s.nextPosition++
	if err := s.model.PlaceItem(itemID, boxID); err != nil {
		return err
	}
	fields := logrus.Fields{"op": "place_item", "item": itemID, "box": boxID}
	if placed {
		fields["from"] = current
	}
	s.logService.Log.WithFields(fields).Info("item placed")
	return nil
}

func (s *inventoryServiceImpl) RemoveItemFromBox(itemID inventory.ItemID) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	current, placed, err := s.model.FindBoxOfItem(itemID)
	if err != nil {
		return err
	}
	if !placed {
		return nil
	}
	if err := s.itemRepo.Unplace(uint(itemID)); err != nil {
		return err
	}
	if err := s.model.RemoveItemFromBox(itemID); err != nil {
		return err
	}
	s.logService.Log.WithFields(logrus.Fields{"op": "remove_item", "item": itemID, "box": current}).Info("item removed from box")
	return nil
}

func (s *inventoryServiceImpl) DeleteBox(boxID inventory.BoxID) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	held, err := s.model.ListItemsInBox(boxID)
	if err != nil {
		return err
	}
	if err := s.boxRepo.DeleteAndUnplace(uint(boxID)); err != nil {
		return err
	}
	if err := s.model.DeleteBox(boxID); err != nil {
		return err
	}
	s.logService.Log.WithFields(logrus.Fields{"op": "delete_box", "box": boxID, "unplaced": len(held)}).Info("box deleted")
	return nil
}

func (s *inventoryServiceImpl) DeleteItem(itemID inventory.ItemID) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, err := s.model.Item(itemID); err != nil {
		return err
	}
	if err := s.itemRepo.DeleteAndUnplace(uint(itemID)); err != nil {
		return err
	}
	if err := s.model.DeleteItem(itemID); err != nil {
		return err
	}
	s.logService.Log.WithFields(logrus.Fields{"op": "delete_item", "item": itemID}).Info("item deleted")
	return nil
}

func (s *inventoryServiceImpl) FindBoxOfItem(itemID inventory.ItemID) (*inventory.Box, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	boxID, placed, err := s.model.FindBoxOfItem(itemID)
	if err != nil || !placed {
		return nil, err
	}
	box, err := s.model.Box(boxID)
	if err != nil {
		return nil, err
	}
	return &box, nil
}

func (s *inventoryServiceImpl) ListItemsInBox(boxID inventory.BoxID) ([]inventory.Item, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	ids, err := s.model.ListItemsInBox(boxID)
	if err != nil {
		return nil, err
	}
	items := make([]inventory.Item, 0, len(ids))
	for _, id := range ids {
		item, err := s.model.Item(id)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *inventoryServiceImpl) GetBox(boxID inventory.BoxID) (inventory.Box, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.model.Box(boxID)
}

func (s *inventoryServiceImpl) GetItem(itemID inventory.ItemID) (inventory.Item, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.model.Item(itemID)
}

func (s *inventoryServiceImpl) GetBoxes() ([]inventory.Box, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.model.Boxes(), nil
}

func (s *inventoryServiceImpl) GetItems() ([]inventory.Item, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.model.Items(), nil
}

func (s *inventoryServiceImpl) GetUnplacedItems() ([]inventory.Item, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.model.UnplacedItems(), nil
}

func (s *inventoryServiceImpl) UpdateBox(boxID inventory.BoxID, name, location string) (inventory.Box, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, err := s.model.Box(boxID); err != nil {
		return inventory.Box{}, err
	}
	err := s.boxRepo.UpdateColumns(uint(boxID), map[string]interface{}{"name": name, "location": location})
	if err != nil {
		return inventory.Box{}, err
	}
	if err := s.model.UpdateBox(boxID, name, location); err != nil {
		return inventory.Box{}, err
	}
	s.logService.Log.WithFields(logrus.Fields{"op": "update_box", "box": boxID}).Info("box updated")
	return s.model.Box(boxID)
}

func (s *inventoryServiceImpl) UpdateItem(itemID inventory.ItemID, name, description, unit string) (inventory.Item, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, err := s.model.Item(itemID); err != nil {
		return inventory.Item{}, err
	}
	abbreviation, err := s.model.ResolveUnit(unit)
	if err != nil {
		return inventory.Item{}, err
	}
	err = s.itemRepo.UpdateColumns(uint(itemID), map[string]interface{}{
		"name":        name,
		"description": description,
		"unit":        abbreviation,
	})
	if err != nil {
		return inventory.Item{}, err
	}
	if err := s.model.UpdateItem(itemID, name, description); err != nil {
		return inventory.Item{}, err
	}
	if err := s.model.SetItemUnit(itemID, abbreviation); err != nil {
		return inventory.Item{}, err
	}
	s.logService.Log.WithFields(logrus.Fields{"op": "update_item", "item": itemID}).Info("item updated")
	return s.model.Item(itemID)
}

func (s *inventoryServiceImpl) GetUnits() ([]inventory.Unit, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.model.Units(), nil
}

func (s *inventoryServiceImpl) Search(query string) ([]inventory.SearchResult, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.model.Search(query), nil
}

// PlaceItems places several items into one box as a single change. Items
// already in that box keep their position. It returns how many items moved.
func (s *inventoryServiceImpl) PlaceItems(itemIDs []inventory.ItemID, boxID inventory.BoxID) (int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	var moving []inventory.ItemID
	for _, id := range itemIDs {
		current, placed, err := s.model.FindBoxOfItem(id)
		if err != nil {
			return 0, err
		}
		if !placed || current != boxID {
			moving = append(moving, id)
		}
	}
	if _, err := s.model.Box(boxID); err != nil {
		return 0, err
	}
	if len(moving) == 0 {
		return 0, nil
	}
	rowIDs := make([]uint, len(moving))
	for i, id := range moving {
		rowIDs[i] = uint(id)
	}
	if err := s.itemRepo.PlaceMany(rowIDs, uint(boxID), s.nextPosition); err != nil {
		return 0, err
	}
	s.nextPosition += uint64(len(moving))
	for _, id := range moving {
		if err := s.model.PlaceItem(id, boxID); err != nil {
			return 0, err
		}
	}
	s.logService.Log.WithFields(logrus.Fields{"op": "place_items", "box": boxID, "count": len(moving)}).Info("items placed")
	return len(moving), nil
}
