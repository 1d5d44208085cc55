package main

import (
	"os"

	"github.com/spf13/cobra"

	"authpanel/internal/interfaces/cli/migrate"
	"authpanel/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "authpanel",
		Short: "Authpanel - account management admin panel",
		Long:  `Authpanel serves the signup and login views and an admin panel for OAuth provider status and linked social accounts.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
