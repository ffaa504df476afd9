package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/field-sync/internal/client"
	"github.com/MKhiriev/field-sync/internal/config"
	"github.com/MKhiriev/field-sync/internal/logger"
	"github.com/MKhiriev/field-sync/models"
)

const clientRole = "field-sync-client"

// rootOptions holds the persistent flags. Env and the JSON file fill what is
// not set here.
type rootOptions struct {
	configPath        string
	address           string
	dsn               string
	token             string
	serviceProviderID string
	logFile           string

	app *client.App
}

func newRootCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "field-sync",
		Short:        "Offline-first sync of sanitation field forms",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipsAppSetup(cmd) {
				return nil
			}
			return opts.open(cmd.Context(), buildInfo)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if opts.app == nil {
				return nil
			}
			return opts.app.Close()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "JSON config file path")
	flags.StringVarP(&opts.address, "address", "a", "", "Remote service base URL")
	flags.StringVarP(&opts.dsn, "db", "d", "", "Local database file")
	flags.StringVar(&opts.token, "token", "", "Bearer token issued for this device")
	flags.StringVar(&opts.serviceProviderID, "service-provider", "", "Service provider id of this device")
	flags.StringVar(&opts.logFile, "log-file", "", "Log file path")

	cmd.AddCommand(
		newOpenCmd(opts),
		newSaveCmd(opts),
		newSyncCmd(opts),
		newRetryCmd(opts),
		newStatusCmd(opts),
		newApplicationsCmd(opts),
		newRunCmd(opts),
		newVersionCmd(buildInfo),
	)

	return cmd
}

// skipsAppSetup reports whether cmd runs without the local store.
func skipsAppSetup(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "version", "help", "completion", cobra.ShellCompRequestCmd:
			return true
		}
	}
	return false
}

func (o *rootOptions) flagsConfig(buildInfo models.AppBuildInfo) *config.StructuredConfig {
	cfg := &config.StructuredConfig{
		App: config.App{
			ServiceProviderID: o.serviceProviderID,
			LogFile:           o.logFile,
		},
		Storage: config.Storage{DB: config.DB{DSN: o.dsn}},
		Adapter: config.Adapter{
			HTTPAddress: o.address,
			Token:       o.token,
		},
		JSONFilePath: o.configPath,
	}
	if buildInfo.Known() {
		cfg.App.Version = buildInfo.Version
	}
	return cfg
}

func (o *rootOptions) open(ctx context.Context, buildInfo models.AppBuildInfo) error {
	cfg, err := config.GetClientConfig(o.flagsConfig(buildInfo))
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger(clientRole, cfg.App.LogFile)
	log.Debug().Any("config", cfg).Msg("received configs")

	o.app, err = client.NewApp(log.WithContext(ctx), cfg, log)
	if err != nil {
		return fmt.Errorf("init client app error: %w", err)
	}
	return nil
}
