// Command sitectl inspects the site from a terminal: it checks every
// section against the content repository, renders pages without a server,
// and simulates the carousel loop.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"propellus-site/internal/observability/logging"
)

func main() {
	slog.SetDefault(logging.NewTextLogger())
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
