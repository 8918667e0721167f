package handlers

import (
	"HomeBoxed/internal/inventory"
	"encoding/json"
	"fmt"
	"github.com/spf13/cobra"
	"io"
	"strconv"
	"text/tabwriter"
)

func parseBoxID(arg string) (inventory.BoxID, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid box ID %q", arg)
	}
	return inventory.BoxID(id), nil
}

func parseItemID(arg string) (inventory.ItemID, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid item ID %q", arg)
	}
	return inventory.ItemID(id), nil
}

// respond prints value as JSON when --json is set, otherwise calls text.
func respond(c *cobra.Command, value interface{}, text func(w io.Writer)) error {
	asJSON, _ := c.Flags().GetBool("json")
	out := c.OutOrStdout()
	if asJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(value)
	}
	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	text(writer)
	return writer.Flush()
}
