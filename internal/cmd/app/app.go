// Package app is helper for simple cli apps.
package app

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"
)

// Run parses flags and calls run with development logger, cancelling
// context on interrupt.
//
// Flags must be registered before Run. The -v flag enables debug logs.
func Run(run func(ctx context.Context, lg *zap.Logger) error) {
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	cfg := zap.NewDevelopmentConfig()
	if !*verbose {
		cfg.Level.SetLevel(zap.InfoLevel)
	}
	lg, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, lg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(2)
	}
}
