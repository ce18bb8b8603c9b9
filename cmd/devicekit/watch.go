package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/devicekit/pkg/device"
	"github.com/dmitrymomot/devicekit/pkg/reactive"
)

var errBadUpdate = errors.New("expected WIDTHxHEIGHT or mode=<mode>")

func newWatchCmd(a *app) *cobra.Command {
	var (
		ua     string
		width  int
		height int
		mode   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Reclassify as viewport and mode updates arrive on stdin",
		Long: `Classify a user agent, then read updates from stdin, one per line:

  WIDTHxHEIGHT   resize the viewport, e.g. 1024x768
  mode=<mode>    change the override (auto, desktop, tablet, mobile)

A line is printed for the initial category and every time it changes.
Updates that leave the category unchanged print nothing.`,
		Example: `  printf '800x1280\n1280x800\nmode=mobile\n' | devicekit watch --ua "Mozilla/5.0 (X11; Linux x86_64)"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != outputText && output != outputJSON {
				return fmt.Errorf("unknown output format %q (want text or json)", output)
			}
			if mode == "" {
				mode = a.cfg.Device.DefaultMode
			}

			env := device.NewEnvironment(ua, width, height)
			override := reactive.NewValue(device.ParseMode(mode))
			c := device.New(env, device.WithOverride(override), device.WithLogger(a.log))
			defer c.Stop()

			out := cmd.OutOrStdout()
			var writeErr error
			emit := func() {
				if writeErr == nil {
					writeErr = writeWatchLine(out, output, c.Snapshot())
				}
			}

			emit()
			cancel := c.Subscribe(func(device.Category) { emit() })
			defer cancel()

			ctx := cmd.Context()
			lines := scanLines(cmd.InOrStdin(), ctx.Done())
			for {
				select {
				case <-ctx.Done():
					return writeErr
				case res, ok := <-lines:
					if !ok {
						return writeErr
					}
					if res.err != nil {
						return fmt.Errorf("read updates: %w", res.err)
					}
					if err := applyUpdate(res.line, env, override); err != nil {
						a.log.WarnContext(ctx, "update ignored", slog.String("line", res.line), slog.String("reason", err.Error()))
					}
					if writeErr != nil {
						return writeErr
					}
				}
			}
		},
	}

	cmd.Flags().StringVar(&ua, "ua", "", "User agent string")
	cmd.Flags().IntVar(&width, "width", 1280, "Initial viewport width")
	cmd.Flags().IntVar(&height, "height", 800, "Initial viewport height")
	cmd.Flags().StringVar(&mode, "mode", "", "Initial override (default from DEVICE_DEFAULT_MODE)")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format (text, json)")

	return cmd
}

type scanResult struct {
	line string
	err  error
}

// scanLines feeds r line by line into a channel that is closed at EOF.
// The reader stops once done is closed.
func scanLines(r io.Reader, done <-chan struct{}) <-chan scanResult {
	ch := make(chan scanResult)
	send := func(res scanResult) bool {
		select {
		case ch <- res:
			return true
		case <-done:
			return false
		}
	}

	go func() {
		defer close(ch)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			if !send(scanResult{line: line}) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			send(scanResult{err: err})
		}
	}()
	return ch
}

// applyUpdate parses one watch input line and applies it.
func applyUpdate(line string, env *device.MemoryEnvironment, override *reactive.Value[device.Mode]) error {
	if v, ok := strings.CutPrefix(line, "mode="); ok {
		override.Set(device.ParseMode(v))
		return nil
	}

	w, h, ok := strings.Cut(strings.ToLower(line), "x")
	if !ok {
		return errBadUpdate
	}
	width, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil || width < 0 {
		return errBadUpdate
	}
	height, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil || height < 0 {
		return errBadUpdate
	}

	env.Resize(width, height)
	return nil
}

func writeWatchLine(w io.Writer, format string, s device.Snapshot) error {
	if format == outputJSON {
		return json.NewEncoder(w).Encode(s)
	}
	_, err := fmt.Fprintf(w, "%s %dx%d mode=%s\n", s.Category, s.Viewport.Width, s.Viewport.Height, s.Mode)
	return err
}
