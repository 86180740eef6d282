// Package main is the dashboard command. "serve" runs the HTTP API; the
// other subcommands are local tooling around the same configuration.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
