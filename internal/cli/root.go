package cli

import (
	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "leadboard",
		Short: "Leadboard - kanban lead tracking API",
		Long: `Leadboard serves a kanban-style board of sales leads over HTTP.

Commands:
- serve        run the HTTP API
- db create    drop, recreate and seed the board tables`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newDBCommand())

	return rootCmd
}

func Execute() error {
	return NewRootCommand().Execute()
}
