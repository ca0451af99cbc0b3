// Package main is the entry point for the oci-description CLI.
//
// The binary prints the org.opencontainers.image.description label of a
// Dockerfile for release tooling. All behavior lives in internal/cli.
//
// Build-time variables (version, commit, date) are injected via ldflags
// during the release build. During development, they default to "dev",
// "none", and "unknown" respectively.
package main

import (
	"github.com/shinji-kodama/oci-description/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	cli.Execute()
}
