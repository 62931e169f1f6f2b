// Sunpaper - sun-position driven wallpaper selection
//
// Sunpaper classifies the sun's current position at a configured location
// into a light state and applies the first configured wallpaper whose
// temporal condition matches.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/sunpaper/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
