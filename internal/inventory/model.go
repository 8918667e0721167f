// Package inventory holds the box/item domain model.
//
// A Model is not safe for concurrent use. Callers that share one must
// serialize access themselves.
package inventory

import "sort"

type BoxID uint

type ItemID uint

// Box is a named container with an optional physical location.
type Box struct {
	ID       BoxID
	Name     string
	Location string
}

// Item is a named inventory object. Unit is the abbreviation of the unit it
// is counted in.
type Item struct {
	ID          ItemID
	Name        string
	Description string
	Unit        string
}

type boxEntry struct {
	box   Box
	items []ItemID
}

// Model owns all boxes, items and the containment relation between them.
type Model struct {
	boxes      map[BoxID]*boxEntry
	items      map[ItemID]*Item
	containing map[ItemID]BoxID
	units      []Unit
	nextBoxID  BoxID
	nextItemID ItemID
}

func NewModel() *Model {
	return &Model{
		boxes:      make(map[BoxID]*boxEntry),
		items:      make(map[ItemID]*Item),
		containing: make(map[ItemID]BoxID),
		units:      DefaultUnits(),
		nextBoxID:  1,
		nextItemID: 1,
	}
}

func (m *Model) CreateBox(name, location string) BoxID {
	id := m.nextBoxID
	m.nextBoxID++
	m.boxes[id] = &boxEntry{box: Box{ID: id, Name: name, Location: location}}
	return id
}

func (m *Model) CreateItem(name, description string) ItemID {
	id := m.nextItemID
	m.nextItemID++
	m.items[id] = &Item{ID: id, Name: name, Description: description, Unit: DefaultUnit}
	return id
}

// PlaceItem moves an item into a box, taking it out of any box it was in.
// Placing an item into the box that already holds it changes nothing.
func (m *Model) PlaceItem(itemID ItemID, boxID BoxID) error {
	if _, ok := m.items[itemID]; !ok {
		return itemNotFound(itemID)
	}
	target, ok := m.boxes[boxID]
	if !ok {
		return boxNotFound(boxID)
	}
	if current, placed := m.containing[itemID]; placed {
		if current == boxID {
			return nil
		}
		m.detach(itemID, current)
	}
	target.items = append(target.items, itemID)
	m.containing[itemID] = boxID
	return nil
}

func (m *Model) RemoveItemFromBox(itemID ItemID) error {
	if _, ok := m.items[itemID]; !ok {
		return itemNotFound(itemID)
	}
	if current, placed := m.containing[itemID]; placed {
		m.detach(itemID, current)
	}
	return nil
}

// DeleteBox removes a box. Items it held stay in the model, unplaced.
func (m *Model) DeleteBox(boxID BoxID) error {
	entry, ok := m.boxes[boxID]
	if !ok {
		return boxNotFound(boxID)
	}
	for _, itemID := range entry.items {
		delete(m.containing, itemID)
	}
	delete(m.boxes, boxID)
	return nil
}

func (m *Model) DeleteItem(itemID ItemID) error {
	if _, ok := m.items[itemID]; !ok {
		return itemNotFound(itemID)
	}
	if current, placed := m.containing[itemID]; placed {
		m.detach(itemID, current)
	}
	delete(m.items, itemID)
	return nil
}

// FindBoxOfItem reports the box holding an item. The bool is false when the
// item is unplaced.
func (m *Model) FindBoxOfItem(itemID ItemID) (BoxID, bool, error) {
	if _, ok := m.items[itemID]; !ok {
		return 0, false, itemNotFound(itemID)
	}
	boxID, placed := m.containing[itemID]
	return boxID, placed, nil
}

// ListItemsInBox returns the ids held by a box in the order they were placed.
// The slice is a copy owned by the caller.
func (m *Model) ListItemsInBox(boxID BoxID) ([]ItemID, error) {
	entry, ok := m.boxes[boxID]
	if !ok {
		return nil, boxNotFound(boxID)
	}
	ids := make([]ItemID, len(entry.items))
	copy(ids, entry.items)
	return ids, nil
}

func (m *Model) Box(boxID BoxID) (Box, error) {
	entry, ok := m.boxes[boxID]
	if !ok {
		return Box{}, boxNotFound(boxID)
	}
	return entry.box, nil
}

func (m *Model) Item(itemID ItemID) (Item, error) {
	item, ok := m.items[itemID]
	if !ok {
		return Item{}, itemNotFound(itemID)
	}
	return *item, nil
}

func (m *Model) UpdateBox(boxID BoxID, name, location string) error {
	entry, ok := m.boxes[boxID]
	if !ok {
		return boxNotFound(boxID)
	}
	entry.box.Name = name
	entry.box.Location = location
	return nil
}

func (m *Model) UpdateItem(itemID ItemID, name, description string) error {
	item, ok := m.items[itemID]
	if !ok {
		return itemNotFound(itemID)
	}
	item.Name = name
	item.Description = description
	return nil
}

// Boxes returns every box ordered by id.
func (m *Model) Boxes() []Box {
	boxes := make([]Box, 0, len(m.boxes))
	for _, entry := range m.boxes {
		boxes = append(boxes, entry.box)
	}
	sort.Slice(boxes, func(i, j int) bool { return boxes[i].ID < boxes[j].ID })
	return boxes
}

// Items returns every item ordered by id.
func (m *Model) Items() []Item {
	items := make([]Item, 0, len(m.items))
	for _, item := range m.items {
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

// UnplacedItems returns items that are in no box, ordered by id.
func (m *Model) UnplacedItems() []Item {
	var items []Item
	for _, item := range m.Items() {
		if _, placed := m.containing[item.ID]; !placed {
			items = append(items, item)
		}
	}
	return items
}

// NextBoxID is the id the next CreateBox call will return.
func (m *Model) NextBoxID() BoxID {
	return m.nextBoxID
}

// NextItemID is the id the next CreateItem call will return.
func (m *Model) NextItemID() ItemID {
	return m.nextItemID
}

func (m *Model) detach(itemID ItemID, boxID BoxID) {
	entry := m.boxes[boxID]
	for i, id := range entry.items {
		if id == itemID {
			entry.items = append(entry.items[:i], entry.items[i+1:]...)
			break
		}
	}
	delete(m.containing, itemID)
}
