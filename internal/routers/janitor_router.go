package routers

import (
	"HomeBoxed/cmd"
	"github.com/spf13/cobra"
)

func SetupJanitorRouter(root *cobra.Command, app *cmd.App) {
	janitorHandler := app.JanitorHandler
	janitor := &cobra.Command{Use: "janitor", Short: "Purge deleted records past their retention"}
	janitor.AddCommand(
		&cobra.Command{Use: "run", Short: "Purge once and exit", Args: cobra.NoArgs, RunE: janitorHandler.Clean},
		&cobra.Command{Use: "watch", Short: "Purge on the configured schedule until interrupted", Args: cobra.NoArgs, RunE: janitorHandler.Watch},
	)
	root.AddCommand(janitor)
}
