package main

import (
	"fmt"
	"time"

	"github.com/rmrobinson/transitcal/services/transit"
	"github.com/rmrobinson/transitcal/services/transit/calendar"
	"github.com/rmrobinson/transitcal/services/transit/gtfs"
	"github.com/spf13/cobra"
)

const dateKey = "date"

func activeCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "active",
		Short: "List the services running on a date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			val, err := a.requireString(dateKey)
			if err != nil {
				return err
			}
			date, err := time.Parse(gtfs.DateFormat, val)
			if err != nil {
				return fmt.Errorf("invalid --%s %q: %w", dateKey, val, err)
			}

			in, err := a.requireString(inKey)
			if err != nil {
				return err
			}
			src, err := gtfs.OpenSource(in)
			if err != nil {
				return err
			}
			defer src.Close()

			feed := transit.NewFeed(a.logger)
			if err := calendar.NewLoader(a.logger, a.metrics).LoadInto(src, feed); err != nil {
				return err
			}

			for _, id := range feed.ServicesActiveOn(date) {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}

	c.Flags().String(inKey, "", "GTFS feed directory or zip archive (required)")
	c.Flags().String(dateKey, "", "service day as YYYYMMDD (required)")
	return c
}
