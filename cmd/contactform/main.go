package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	serve := newServeCmd()

	root := &cobra.Command{
		Use:   "contactform",
		Short: "Contact form server with live validation",
		// Running without a subcommand serves.
		RunE:         serve.RunE,
		SilenceUsage: true,
	}
	root.AddCommand(serve, newValidateCmd())
	return root
}
