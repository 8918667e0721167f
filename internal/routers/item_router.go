package routers

import (
	"HomeBoxed/cmd"
	"github.com/spf13/cobra"
)

func SetupItemRouter(root *cobra.Command, app *cmd.App) {
	itemHandler := app.ItemHandler
	item := &cobra.Command{Use: "item", Short: "Manage items"}

	create := &cobra.Command{Use: "create NAME", Short: "Create an item", Args: cobra.ExactArgs(1), RunE: itemHandler.CreateItem}
	create.Flags().String("description", "", "item description")
	create.Flags().String("box", "", "place the new item into this box")
	create.Flags().String("unit", "", "unit of measure (each, feet, inches, centimeters, millimeters)")

	update := &cobra.Command{Use: "update ID", Short: "Rename or describe an item", Args: cobra.ExactArgs(1), RunE: itemHandler.UpdateItem}
	update.Flags().String("name", "", "new name")
	update.Flags().String("description", "", "new description")
	update.Flags().String("unit", "", "new unit of measure")

	list := &cobra.Command{Use: "list", Short: "List items", Args: cobra.NoArgs, RunE: itemHandler.ListItems}
	list.Flags().Bool("unplaced", false, "only items that are in no box")

	item.AddCommand(
		create,
		update,
		list,
		&cobra.Command{Use: "show ID", Short: "Show an item", Args: cobra.ExactArgs(1), RunE: itemHandler.GetItemByID},
		&cobra.Command{Use: "place ITEM BOX", Short: "Put an item into a box", Args: cobra.ExactArgs(2), RunE: itemHandler.PlaceItem},
		&cobra.Command{Use: "unplace ITEM", Short: "Take an item out of its box", Args: cobra.ExactArgs(1), RunE: itemHandler.RemoveItemFromBox},
		&cobra.Command{Use: "where ITEM", Short: "Show which box holds an item", Args: cobra.ExactArgs(1), RunE: itemHandler.FindBoxOfItem},
		&cobra.Command{Use: "copy ITEM BOX", Short: "Copy an item into a box", Args: cobra.ExactArgs(2), RunE: itemHandler.CopyItem},
		&cobra.Command{Use: "delete ID", Short: "Delete an item", Args: cobra.ExactArgs(1), RunE: itemHandler.DeleteItem},
	)
	root.AddCommand(item)

	root.AddCommand(&cobra.Command{
		Use:   "search [QUERY]",
		Short: "Find placed items by name",
		Args:  cobra.MaximumNArgs(1),
		RunE:  itemHandler.Search,
	})
	root.AddCommand(&cobra.Command{
		Use:   "units",
		Short: "List the units items can be counted in",
		Args:  cobra.NoArgs,
		RunE:  itemHandler.ListUnits,
	})
}
