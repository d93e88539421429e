package main

import (
	"github.com/nss-day-cohort-41/tabloidmvc-the-gefilte-fish/internal/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return database.Migrate(cmd.Context(), &app.log, app.cfg)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
