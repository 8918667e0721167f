package inventory

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultUnit is the unit new items are counted in.
const DefaultUnit = "ea"

var ErrUnknownUnit = errors.New("unknown unit")

// Unit is a unit of measure. Items refer to it by abbreviation.
type Unit struct {
	Name         string
	Abbreviation string
}

// DefaultUnits are the units every inventory starts with.
func DefaultUnits() []Unit {
	return []Unit{
		{Name: "each", Abbreviation: "ea"},
		{Name: "feet", Abbreviation: "ft"},
		{Name: "inches", Abbreviation: "in"},
		{Name: "centimeters", Abbreviation: "cm"},
		{Name: "millimeters", Abbreviation: "mm"},
	}
}

func (m *Model) Units() []Unit {
	units := make([]Unit, len(m.units))
	copy(units, m.units)
	return units
}

// ResolveUnit maps a unit name or abbreviation, in any case, to its
// abbreviation. An empty string resolves to DefaultUnit.
func (m *Model) ResolveUnit(unit string) (string, error) {
	return ResolveUnit(m.units, unit)
}

// ResolveUnit looks unit up in units the same way Model.ResolveUnit does.
func ResolveUnit(units []Unit, unit string) (string, error) {
	wanted := strings.TrimSpace(unit)
	if wanted == "" {
		return DefaultUnit, nil
	}
	for _, known := range units {
		if strings.EqualFold(known.Abbreviation, wanted) || strings.EqualFold(known.Name, wanted) {
			return known.Abbreviation, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownUnit, unit)
}

func (m *Model) SetItemUnit(itemID ItemID, unit string) error {
	item, ok := m.items[itemID]
	if !ok {
		return itemNotFound(itemID)
	}
	abbreviation, err := m.ResolveUnit(unit)
	if err != nil {
		return err
	}
	item.Unit = abbreviation
	return nil
}
