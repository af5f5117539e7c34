// Package main is the single-binary entrypoint for EcoTrack.
package main

import "github.com/ecotrack-app/ecotrack/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
