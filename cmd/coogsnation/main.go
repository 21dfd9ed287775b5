package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jerphayes/Coogsnation-sub000/internal/interfaces/cli/migrate"
	"github.com/jerphayes/Coogsnation-sub000/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "coogsnation",
		Short: "CoogsNation identity and community access service",
		Long:  `CoogsNation is the identity core for the university fan community: multi-provider login, verification codes, and community-gated access.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
