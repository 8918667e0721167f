package routers

import (
	"HomeBoxed/cmd"
	"github.com/spf13/cobra"
)

func SetupFileRouter(root *cobra.Command, app *cmd.App) {
	fileHandler := app.FileHandler
	root.AddCommand(
		&cobra.Command{Use: "export FILE", Short: "Write the inventory as CSV (- for stdout)", Args: cobra.ExactArgs(1), RunE: fileHandler.Export},
		&cobra.Command{Use: "import FILE", Short: "Read boxes and items from CSV (- for stdin)", Args: cobra.ExactArgs(1), RunE: fileHandler.Import},
	)
}
