package main

import (
	"fmt"

	"github.com/rmrobinson/transitcal/services/transit/store"
	"github.com/spf13/cobra"
)

const dbKey = "db"

func importCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "import",
		Short: "Save the service calendars of a feed into a sqlite database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dbPath, err := a.requireString(dbKey)
			if err != nil {
				return err
			}

			catalog, err := a.loadCatalog()
			if err != nil {
				return err
			}

			s, err := store.Open(a.logger, dbPath)
			if err != nil {
				return err
			}
			defer s.Close()

			id, err := s.SaveCatalog(cmd.Context(), catalog)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}

	c.Flags().String(inKey, "", "GTFS feed directory or zip archive (required)")
	c.Flags().String(dbKey, "", "sqlite database path (required)")
	return c
}
