package main

import (
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/rmrobinson/transitcal/services/transit/calendar"
	"github.com/rmrobinson/transitcal/services/transit/calendar/translate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	outKey  = "out"
	dumpKey = "dump"
)

func normalizeCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "normalize",
		Short: "Rewrite calendar.txt and calendar_dates.txt in canonical form",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := a.requireString(outKey)
			if err != nil {
				return err
			}

			catalog, err := a.loadCatalog()
			if err != nil {
				return err
			}

			if a.v.GetBool(dumpKey) {
				// Counters and logs belong to the Write below.
				calendars, calendarDates := calendar.NewWriter(zap.NewNop(), translate.New(), nil).Translate(catalog)
				spew.Fdump(cmd.OutOrStdout(), calendars, calendarDates)
			}

			if err := os.MkdirAll(out, 0755); err != nil {
				return err
			}
			return calendar.NewWriter(a.logger, translate.New(), a.metrics).Write(out, catalog)
		},
	}

	c.Flags().String(inKey, "", "GTFS feed directory or zip archive (required)")
	c.Flags().String(outKey, "", "directory receiving the rewritten files (required)")
	c.Flags().Bool(dumpKey, false, "print the produced rows")
	return c
}
