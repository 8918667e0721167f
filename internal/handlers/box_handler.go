package handlers

import (
	"HomeBoxed/internal/mapper"
	"HomeBoxed/internal/services"
	"fmt"
	"github.com/spf13/cobra"
	"io"
)

type BoxHandler struct {
	service services.InventoryService
	mover   services.MoverService
}

func NewBoxHandler(service services.InventoryService, mover services.MoverService) *BoxHandler {
	return &BoxHandler{service: service, mover: mover}
}

func (h *BoxHandler) CreateBox(c *cobra.Command, args []string) error {
	location, _ := c.Flags().GetString("location")
	if args[0] == "" {
		return fmt.Errorf("name is required")
	}

	box, err := h.service.CreateBox(args[0], location)
	if err != nil {
		return err
	}

	return respond(c, mapper.ToBoxGetDTO(box, nil), func(w io.Writer) {
		fmt.Fprintf(w, "Created box %d\t%s\n", box.ID, box.Name)
	})
}

func (h *BoxHandler) GetBoxByID(c *cobra.Command, args []string) error {
	id, err := parseBoxID(args[0])
	if err != nil {
		return err
	}

	box, err := h.service.GetBox(id)
	if err != nil {
		return err
	}
	items, err := h.service.ListItemsInBox(id)
	if err != nil {
		return err
	}

	return respond(c, mapper.ToBoxGetDTO(box, items), func(w io.Writer) {
		fmt.Fprintf(w, "Box %d\t%s\n", box.ID, box.Name)
		if box.Location != "" {
			fmt.Fprintf(w, "Location\t%s\n", box.Location)
		}
		if len(items) == 0 {
			fmt.Fprintln(w, "  (empty)")
			return
		}
		for _, item := range items {
			fmt.Fprintf(w, "  %d\t%s\t%s\n", item.ID, item.Name, item.Description)
		}
	})
}

func (h *BoxHandler) UpdateBox(c *cobra.Command, args []string) error {
	id, err := parseBoxID(args[0])
	if err != nil {
		return err
	}
	box, err := h.service.GetBox(id)
	if err != nil {
		return err
	}

	name, location := box.Name, box.Location
	if c.Flags().Changed("name") {
		name, _ = c.Flags().GetString("name")
	}
	if c.Flags().Changed("location") {
		location, _ = c.Flags().GetString("location")
	}
	if name == "" {
		return fmt.Errorf("name is required")
	}

	box, err = h.service.UpdateBox(id, name, location)
	if err != nil {
		return err
	}

	return respond(c, mapper.ToBoxGetDTO(box, nil), func(w io.Writer) {
		fmt.Fprintf(w, "Updated box %d\t%s\t%s\n", box.ID, box.Name, box.Location)
	})
}

func (h *BoxHandler) DeleteBox(c *cobra.Command, args []string) error {
	id, err := parseBoxID(args[0])
	if err != nil {
		return err
	}

	if err := h.service.DeleteBox(id); err != nil {
		return err
	}

	return respond(c, map[string]interface{}{"deleted": uint(id)}, func(w io.Writer) {
		fmt.Fprintf(w, "Deleted box %d\n", id)
	})
}

func (h *BoxHandler) ListBoxes(c *cobra.Command, args []string) error {
	boxes, err := h.service.GetBoxes()
	if err != nil {
		return err
	}
	return respond(c, mapper.ToBoxGetDTOs(boxes), func(w io.Writer) {
		fmt.Fprintln(w, "ID\tNAME\tLOCATION")
		for _, box := range boxes {
			fmt.Fprintf(w, "%d\t%s\t%s\n", box.ID, box.Name, box.Location)
		}
	})
}

func (h *BoxHandler) MoveAll(c *cobra.Command, args []string) error {
	from, err := parseBoxID(args[0])
	if err != nil {
		return err
	}
	to, err := parseBoxID(args[1])
	if err != nil {
		return err
	}

	moved, err := h.mover.MoveAll(from, to)
	if err != nil {
		return err
	}

	return respond(c, map[string]interface{}{"moved": moved}, func(w io.Writer) {
		fmt.Fprintf(w, "Moved %d items from box %d to box %d\n", moved, from, to)
	})
}
