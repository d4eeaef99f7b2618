package main

import (
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rmrobinson/transitcal/services/transit/calendar"
	"github.com/rmrobinson/transitcal/services/transit/gtfs"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	envPrefix        = "CALCONV"
	metricsNamespace = "calendarconv"

	debugKey           = "debug"
	configKey          = "config"
	metricsTextfileKey = "metrics-textfile"
	inKey              = "in"
)

// app holds what every subcommand shares once the root has parsed its flags.
type app struct {
	v        *viper.Viper
	logger   *zap.Logger
	registry *prometheus.Registry
	metrics  *calendar.Metrics
}

func newRootCmd() *cobra.Command {
	a := &app{
		v: viper.New(),
	}

	cmd := &cobra.Command{
		Use:          "calendarconv",
		Short:        "Normalize, inspect and store GTFS service calendars",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().Bool(debugKey, false, "enable development logging")
	cmd.PersistentFlags().String(configKey, "", "optional config file providing flag values")
	cmd.PersistentFlags().String(metricsTextfileKey, "", "write run metrics to this file in the Prometheus text format")

	for _, sub := range []*cobra.Command{normalizeCmd(a), importCmd(a), activeCmd(a)} {
		sub.RunE = a.withTeardown(sub.RunE)
		cmd.AddCommand(sub)
	}
	return cmd
}

// withTeardown runs teardown once run returns, whether or not it failed.
func (a *app) withTeardown(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if terr := a.teardown(); err == nil {
				err = terr
			}
		}()
		return run(cmd, args)
	}
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if path := a.v.GetString(configKey); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var err error
	if a.v.GetBool(debugKey) {
		a.logger, err = zap.NewDevelopment()
	} else {
		a.logger, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}

	a.registry = prometheus.NewRegistry()
	a.metrics = calendar.NewMetrics(metricsNamespace, a.registry)
	return nil
}

func (a *app) teardown() error {
	defer a.logger.Sync()

	path := a.v.GetString(metricsTextfileKey)
	if path == "" {
		return nil
	}

	if err := prometheus.WriteToTextfile(path, a.registry); err != nil {
		a.logger.Warn("unable to write metrics",
			zap.String("file_name", path),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// requireString returns the value of key, failing when it was not set by any source.
func (a *app) requireString(key string) (string, error) {
	val := a.v.GetString(key)
	if val == "" {
		return "", fmt.Errorf("--%s is required", key)
	}
	return val, nil
}

// loadCatalog opens the feed named by --in and loads its service calendars.
func (a *app) loadCatalog() (*calendar.Catalog, error) {
	in, err := a.requireString(inKey)
	if err != nil {
		return nil, err
	}

	src, err := gtfs.OpenSource(in)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return calendar.NewLoader(a.logger, a.metrics).Load(src)
}
