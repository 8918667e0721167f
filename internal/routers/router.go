package routers

import (
	"HomeBoxed/cmd"
	"github.com/spf13/cobra"
)

// SetupRoutes builds the boxed command tree on top of app.
func SetupRoutes(app *cmd.App) *cobra.Command {
	root := &cobra.Command{
		Use:          "boxed",
		Short:        "Keep track of what is in which box",
		SilenceUsage: true,
	}
	root.PersistentFlags().Bool("json", false, "print results as JSON")

	SetupBoxRouter(root, app)
	SetupItemRouter(root, app)
	SetupFileRouter(root, app)
	SetupJanitorRouter(root, app)
	return root
}
