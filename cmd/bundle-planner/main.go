// Package main provides the CLI entrypoint for bundle-planner.
//
// bundle-planner resolves a declarative bundler build configuration into an
// immutable build plan:
//   - Loads YAML or JSONC configuration files, merging several in order
//   - Validates loaders, plugins and their options against known kinds
//   - Prints the plan, its fingerprint, or every diagnostic found
package main

import (
	"context"
	"os"
	"os/signal"

	"bundle-planner/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, os.Args[1:])

	stop()
	os.Exit(code)
}
