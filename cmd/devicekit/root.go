package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/devicekit/pkg/config"
	"github.com/dmitrymomot/devicekit/pkg/device"
	"github.com/dmitrymomot/devicekit/pkg/httpserver"
	"github.com/dmitrymomot/devicekit/pkg/logger"
)

// appConfig is everything the binary reads from the environment.
type appConfig struct {
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"SERVICE_NAME" envDefault:"devicekit"`

	HTTP   httpserver.Config
	Device device.Config
}

// app carries the loaded configuration and logger into subcommands.
type app struct {
	cfg appConfig
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "devicekit",
		Short: "Device category classifier",
		Long: `Devicekit decides whether a browsing environment should get the mobile,
tablet or desktop layout, from its user agent, viewport and an optional
manual override.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(&a.cfg); err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			a.log = logger.New(
				logger.WithEnvironment(config.ParseEnvironment(a.cfg.Env), a.cfg.Service),
				logger.WithOutput(cmd.ErrOrStderr()),
				logger.WithContextExtractors(device.LogExtractor),
			)
			return nil
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		newClassifyCmd(a),
		newFlagsCmd(),
		newWatchCmd(a),
		newServeCmd(a),
	)

	return root
}
