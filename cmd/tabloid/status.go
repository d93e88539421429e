package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check that the database is reachable and show pool statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.connect(); err != nil {
			return err
		}

		if err := app.srv.DB.Ping(cmd.Context(), app.srv.HealthTimeout()); err != nil {
			return storeError(fmt.Errorf("ping database: %w", err))
		}

		stat := app.srv.DB.Pool.Stat()

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Database", "Max Conns", "Total", "Idle", "Acquired"})
		table.Append([]string{
			app.cfg.Database.Name,
			strconv.Itoa(int(stat.MaxConns())),
			strconv.Itoa(int(stat.TotalConns())),
			strconv.Itoa(int(stat.IdleConns())),
			strconv.Itoa(int(stat.AcquiredConns())),
		})
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
