package main

import (
	"os"

	"github.com/spf13/cobra"

	"deskd/internal/interfaces/cli/migrate"
	"deskd/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "deskd",
		Short: "deskd - customer support ticketing backend",
		Long:  `deskd is a customer support ticketing backend with rule-based ticket auto-assignment.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
