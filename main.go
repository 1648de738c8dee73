// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/yourorg/hello/internal/cmd"
)

func main() {
	// Failures here come from the environment (stdout unusable); there is no
	// message to report.
	if err := cmd.Execute(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
