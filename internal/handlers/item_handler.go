package handlers

import (
	"HomeBoxed/internal/inventory"
	"HomeBoxed/internal/mapper"
	"HomeBoxed/internal/services"
	"fmt"
	"github.com/spf13/cobra"
	"io"
)

type ItemHandler struct {
	service services.InventoryService
	mover   services.MoverService
}

func NewItemHandler(service services.InventoryService, mover services.MoverService) *ItemHandler {
	return &ItemHandler{service: service, mover: mover}
}

func (h *ItemHandler) CreateItem(c *cobra.Command, args []string) error {
	description, _ := c.Flags().GetString("description")
	unit, _ := c.Flags().GetString("unit")
	if args[0] == "" {
		return fmt.Errorf("name is required")
	}

	var boxID *inventory.BoxID
	if c.Flags().Changed("box") {
		raw, _ := c.Flags().GetString("box")
		id, err := parseBoxID(raw)
		if err != nil {
			return err
		}
		// Check first so a bad box does not leave a stray item behind.
		if _, err := h.service.GetBox(id); err != nil {
			return err
		}
		boxID = &id
	}

	item, err := h.service.CreateItem(args[0], description, unit)
	if err != nil {
		return err
	}
	if boxID != nil {
		if err := h.service.PlaceItem(item.ID, *boxID); err != nil {
			return err
		}
	}

	return respond(c, mapper.ToItemGetDTO(item, boxID), func(w io.Writer) {
		fmt.Fprintf(w, "Created item %d\t%s\t%s\n", item.ID, item.Name, item.Unit)
	})
}

func (h *ItemHandler) GetItemByID(c *cobra.Command, args []string) error {
	id, err := parseItemID(args[0])
	if err != nil {
		return err
	}

	item, err := h.service.GetItem(id)
	if err != nil {
		return err
	}
	box, err := h.service.FindBoxOfItem(id)
	if err != nil {
		return err
	}

	var boxID *inventory.BoxID
	if box != nil {
		boxID = &box.ID
	}
	return respond(c, mapper.ToItemGetDTO(item, boxID), func(w io.Writer) {
		fmt.Fprintf(w, "Item %d\t%s\n", item.ID, item.Name)
		if item.Description != "" {
			fmt.Fprintf(w, "Description\t%s\n", item.Description)
		}
		fmt.Fprintf(w, "Unit\t%s\n", item.Unit)
		fmt.Fprintf(w, "Box\t%s\n", describeBox(box))
	})
}

func (h *ItemHandler) UpdateItem(c *cobra.Command, args []string) error {
	id, err := parseItemID(args[0])
	if err != nil {
		return err
	}
	item, err := h.service.GetItem(id)
	if err != nil {
		return err
	}

	name, description, unit := item.Name, item.Description, item.Unit
	if c.Flags().Changed("name") {
		name, _ = c.Flags().GetString("name")
	}
	if c.Flags().Changed("description") {
		description, _ = c.Flags().GetString("description")
	}
	if c.Flags().Changed("unit") {
		unit, _ = c.Flags().GetString("unit")
	}
	if name == "" {
		return fmt.Errorf("name is required")
	}

	item, err = h.service.UpdateItem(id, name, description, unit)
	if err != nil {
		return err
	}

	return respond(c, mapper.ToItemGetDTO(item, nil), func(w io.Writer) {
		fmt.Fprintf(w, "Updated item %d\t%s\n", item.ID, item.Name)
	})
}

func (h *ItemHandler) DeleteItem(c *cobra.Command, args []string) error {
	id, err := parseItemID(args[0])
	if err != nil {
		return err
	}

	if err := h.service.DeleteItem(id); err != nil {
		return err
	}

	return respond(c, map[string]interface{}{"deleted": uint(id)}, func(w io.Writer) {
		fmt.Fprintf(w, "Deleted item %d\n", id)
	})
}

func (h *ItemHandler) ListItems(c *cobra.Command, args []string) error {
	unplacedOnly, _ := c.Flags().GetBool("unplaced")
	var items []inventory.Item
	var err error
	if unplacedOnly {
		items, err = h.service.GetUnplacedItems()
	} else {
		items, err = h.service.GetItems()
	}
	if err != nil {
		return err
	}

	itemDTOs := mapper.ToItemGetDTOs(items, nil)
	boxes := make([]*inventory.Box, len(items))
	for i, item := range items {
		box, err := h.service.FindBoxOfItem(item.ID)
		if err != nil {
			return err
		}
		boxes[i] = box
		if box != nil {
			id := uint(box.ID)
			itemDTOs[i].BoxID = &id
		}
	}

	return respond(c, itemDTOs, func(w io.Writer) {
		fmt.Fprintln(w, "ID\tNAME\tUNIT\tBOX")
		for i, item := range items {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", item.ID, item.Name, item.Unit, describeBox(boxes[i]))
		}
	})
}

func (h *ItemHandler) PlaceItem(c *cobra.Command, args []string) error {
	itemID, err := parseItemID(args[0])
	if err != nil {
		return err
	}
	boxID, err := parseBoxID(args[1])
	if err != nil {
		return err
	}

	if err := h.service.PlaceItem(itemID, boxID); err != nil {
		return err
	}

	return respond(c, map[string]interface{}{"item": uint(itemID), "box": uint(boxID)}, func(w io.Writer) {
		fmt.Fprintf(w, "Placed item %d in box %d\n", itemID, boxID)
	})
}

func (h *ItemHandler) RemoveItemFromBox(c *cobra.Command, args []string) error {
	itemID, err := parseItemID(args[0])
	if err != nil {
		return err
	}

	if err := h.service.RemoveItemFromBox(itemID); err != nil {
		return err
	}

	return respond(c, map[string]interface{}{"item": uint(itemID), "box": nil}, func(w io.Writer) {
		fmt.Fprintf(w, "Item %d is no longer in a box\n", itemID)
	})
}

func (h *ItemHandler) FindBoxOfItem(c *cobra.Command, args []string) error {
	itemID, err := parseItemID(args[0])
	if err != nil {
		return err
	}

	box, err := h.service.FindBoxOfItem(itemID)
	if err != nil {
		return err
	}

	var value interface{}
	if box != nil {
		value = mapper.ToBoxGetDTO(*box, nil)
	}
	return respond(c, value, func(w io.Writer) {
		fmt.Fprintln(w, describeBox(box))
	})
}

func (h *ItemHandler) CopyItem(c *cobra.Command, args []string) error {
	itemID, err := parseItemID(args[0])
	if err != nil {
		return err
	}
	boxID, err := parseBoxID(args[1])
	if err != nil {
		return err
	}

	copied, err := h.mover.CopyItem(itemID, boxID)
	if err != nil {
		return err
	}

	return respond(c, mapper.ToItemGetDTO(copied, &boxID), func(w io.Writer) {
		fmt.Fprintf(w, "Copied item %d to item %d in box %d\n", itemID, copied.ID, boxID)
	})
}

func (h *ItemHandler) Search(c *cobra.Command, args []string) error {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	results, err := h.service.Search(query)
	if err != nil {
		return err
	}

	return respond(c, mapper.ToSearchResultDTOs(results), func(w io.Writer) {
		if len(results) == 0 {
			fmt.Fprintln(w, "No matching items")
			return
		}
		for _, result := range results {
			fmt.Fprintf(w, "%s\n", describeBox(&result.Box))
			for _, item := range result.Items {
				fmt.Fprintf(w, "  %d\t%s\n", item.ID, item.Name)
			}
		}
	})
}

func (h *ItemHandler) ListUnits(c *cobra.Command, args []string) error {
	units, err := h.service.GetUnits()
	if err != nil {
		return err
	}
	return respond(c, mapper.ToUnitDTOs(units), func(w io.Writer) {
		fmt.Fprintln(w, "UNIT\tNAME")
		for _, unit := range units {
			fmt.Fprintf(w, "%s\t%s\n", unit.Abbreviation, unit.Name)
		}
	})
}

func describeBox(box *inventory.Box) string {
	if box == nil {
		return "(unplaced)"
	}
	if box.Location != "" {
		return fmt.Sprintf("%d %s @ %s", box.ID, box.Name, box.Location)
	}
	return fmt.Sprintf("%d %s", box.ID, box.Name)
}
