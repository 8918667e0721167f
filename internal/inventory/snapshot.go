package inventory

import (
	"fmt"
	"strings"
)

// Placement puts one item into one box. Within a Snapshot, placements for the
// same box appear in list order.
type Placement struct {
	Item ItemID
	Box  BoxID
}

// Snapshot is the complete state of a Model, including its id counters.
// Empty Units means DefaultUnits.
type Snapshot struct {
	Units      []Unit
	Boxes      []Box
	Items      []Item
	Placements []Placement
	NextBoxID  BoxID
	NextItemID ItemID
}

func (m *Model) Snapshot() Snapshot {
	snapshot := Snapshot{
		Units:      m.Units(),
		Boxes:      m.Boxes(),
		Items:      m.Items(),
		NextBoxID:  m.nextBoxID,
		NextItemID: m.nextItemID,
	}
	for _, box := range snapshot.Boxes {
		for _, itemID := range m.boxes[box.ID].items {
			snapshot.Placements = append(snapshot.Placements, Placement{Item: itemID, Box: box.ID})
		}
	}
	return snapshot
}

// Restore rebuilds a Model from a snapshot. Zero counters are raised past the
// highest id present and items without a unit get DefaultUnit.
func Restore(snapshot Snapshot) (*Model, error) {
	m := NewModel()
	if len(snapshot.Units) > 0 {
		if err := m.restoreUnits(snapshot.Units); err != nil {
			return nil, err
		}
	}
	var maxBoxID BoxID
	for _, box := range snapshot.Boxes {
		if box.ID == 0 {
			return nil, fmt.Errorf("%w: box with zero id", ErrInvalidSnapshot)
		}
		if _, exists := m.boxes[box.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate box %d", ErrInvalidSnapshot, box.ID)
		}
		m.boxes[box.ID] = &boxEntry{box: box}
		if box.ID > maxBoxID {
			maxBoxID = box.ID
		}
	}
	var maxItemID ItemID
	for _, item := range snapshot.Items {
		if item.ID == 0 {
			return nil, fmt.Errorf("%w: item with zero id", ErrInvalidSnapshot)
		}
		if _, exists := m.items[item.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate item %d", ErrInvalidSnapshot, item.ID)
		}
		copied := item
		unit, err := m.ResolveUnit(item.Unit)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrInvalidSnapshot, item.ID, err)
		}
		copied.Unit = unit
		m.items[item.ID] = &copied
		if item.ID > maxItemID {
			maxItemID = item.ID
		}
	}
	for _, placement := range snapshot.Placements {
		if _, ok := m.items[placement.Item]; !ok {
			return nil, fmt.Errorf("%w: placement of unknown item %d", ErrInvalidSnapshot, placement.Item)
		}
		entry, ok := m.boxes[placement.Box]
		if !ok {
			return nil, fmt.Errorf("%w: placement into unknown box %d", ErrInvalidSnapshot, placement.Box)
		}
		if _, placed := m.containing[placement.Item]; placed {
			return nil, fmt.Errorf("%w: item %d placed twice", ErrInvalidSnapshot, placement.Item)
		}
		entry.items = append(entry.items, placement.Item)
		m.containing[placement.Item] = placement.Box
	}

	m.nextBoxID = maxBoxID + 1
	if snapshot.NextBoxID != 0 {
		if snapshot.NextBoxID <= maxBoxID {
			return nil, fmt.Errorf("%w: next box id %d would reuse %d", ErrInvalidSnapshot, snapshot.NextBoxID, maxBoxID)
		}
		m.nextBoxID = snapshot.NextBoxID
	}
	m.nextItemID = maxItemID + 1
	if snapshot.NextItemID != 0 {
		if snapshot.NextItemID <= maxItemID {
			return nil, fmt.Errorf("%w: next item id %d would reuse %d", ErrInvalidSnapshot, snapshot.NextItemID, maxItemID)
		}
		m.nextItemID = snapshot.NextItemID
	}
	return m, nil
}

func (m *Model) restoreUnits(units []Unit) error {
	seen := make(map[string]bool, len(units))
	for _, unit := range units {
		key := strings.ToLower(unit.Abbreviation)
		if key == "" || seen[key] {
			return fmt.Errorf("%w: duplicate or empty unit %q", ErrInvalidSnapshot, unit.Abbreviation)
		}
		seen[key] = true
	}
	if !seen[DefaultUnit] {
		return fmt.Errorf("%w: default unit %q missing", ErrInvalidSnapshot, DefaultUnit)
	}
	m.units = make([]Unit, len(units))
	copy(m.units, units)
	return nil
}
