package routers

import (
	"HomeBoxed/cmd"
	"github.com/spf13/cobra"
)

func SetupBoxRouter(root *cobra.Command, app *cmd.App) {
	boxHandler := app.BoxHandler
	box := &cobra.Command{Use: "box", Short: "Manage boxes"}

	create := &cobra.Command{Use: "create NAME", Short: "Create a box", Args: cobra.ExactArgs(1), RunE: boxHandler.CreateBox}
	create.Flags().String("location", "", "where the box is kept")

	update := &cobra.Command{Use: "update ID", Short: "Rename or relocate a box", Args: cobra.ExactArgs(1), RunE: boxHandler.UpdateBox}
	update.Flags().String("name", "", "new name")
	update.Flags().String("location", "", "new location")

	box.AddCommand(
		create,
		update,
		&cobra.Command{Use: "list", Short: "List boxes", Args: cobra.NoArgs, RunE: boxHandler.ListBoxes},
		&cobra.Command{Use: "show ID", Short: "Show a box and its items", Args: cobra.ExactArgs(1), RunE: boxHandler.GetBoxByID},
		&cobra.Command{Use: "delete ID", Short: "Delete a box, leaving its items unplaced", Args: cobra.ExactArgs(1), RunE: boxHandler.DeleteBox},
		&cobra.Command{Use: "move-all FROM TO", Short: "Move every item from one box to another", Args: cobra.ExactArgs(2), RunE: boxHandler.MoveAll},
	)
	root.AddCommand(box)
}
