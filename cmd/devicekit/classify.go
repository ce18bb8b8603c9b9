package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/devicekit/pkg/device"
	"github.com/dmitrymomot/devicekit/pkg/reactive"
	"github.com/dmitrymomot/devicekit/pkg/useragent"
)

func newClassifyCmd(a *app) *cobra.Command {
	var (
		ua     string
		width  int
		height int
		mode   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a user agent and viewport",
		Long: `Classify a browsing environment once and print its category, effective
mode, viewport and user agent flags.

Without --width the configured fallback viewport is used: a phone-sized
one for handheld user agents, a desktop one otherwise. A width without a
height is taken as a square viewport, as with HTTP client hints.`,
		Example: `  # iPad in portrait
  devicekit classify --ua "Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X)" --width 820 --height 1180

  # Force the desktop layout, print JSON
  devicekit classify --ua "..." --width 390 --height 844 --mode desktop --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			vp := device.Viewport{Width: width, Height: height}
			flags := useragent.Detect(ua)
			switch {
			case width <= 0:
				vp = a.cfg.Device.Fallback(flags)
			case height <= 0:
				vp.Height = width
			}
			if mode == "" {
				mode = a.cfg.Device.DefaultMode
			}

			c := device.New(
				device.NewEnvironment(ua, vp.Width, vp.Height),
				device.WithOverride(reactive.Const(device.ParseMode(mode))),
				device.WithLogger(a.log),
			)
			defer c.Stop()

			return writeSnapshot(cmd.OutOrStdout(), output, c.Snapshot(), c.Flags())
		},
	}

	cmd.Flags().StringVar(&ua, "ua", "", "User agent string")
	cmd.Flags().IntVar(&width, "width", 0, "Viewport width in CSS pixels")
	cmd.Flags().IntVar(&height, "height", 0, "Viewport height in CSS pixels")
	cmd.Flags().StringVar(&mode, "mode", "", "Override: auto, desktop, tablet or mobile (default from DEVICE_DEFAULT_MODE)")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format (text, json, yaml)")

	return cmd
}
