// Devicekit classifies browsing environments into mobile, tablet or desktop
// layouts and reports browser identity flags for a user agent.
//
// Usage:
//
//	devicekit [command] [flags]
//
// Commands:
//
//	classify  classify a user agent and viewport once
//	flags     print the user agent flags
//	watch     reclassify as viewport and mode updates arrive on stdin
//	serve     run the HTTP classification service
//
// Configuration is read from the environment and an optional .env file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
