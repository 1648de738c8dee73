// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package buildinfo holds metadata assigned at link time, e.g.:
//
//	go build -ldflags "-X 'github.com/yourorg/hello/internal/buildinfo.Version=1.2.3' -X 'github.com/yourorg/hello/internal/buildinfo.LogLevel=debug'"
package buildinfo

import "strings"

var (
	// Version is the release string. Empty is treated as "dev".
	Version = "dev"
	// Commit is the VCS revision, optional.
	Commit = ""
	// Date is the build date, optional.
	Date = ""
	// LogLevel is the minimum zap level written to stderr.
	LogLevel = "info"
)

// Summary returns a single-line version string such as
// "1.2.3 (commit=abcdef1, date=2025-01-02)".
func Summary() string {
	v := Version
	if v == "" {
		v = "dev"
	}

	parts := make([]string, 0, 2)
	if Commit != "" {
		c := Commit
		if len(c) > 7 {
			c = c[:7]
		}
		parts = append(parts, "commit="+c)
	}
	if Date != "" {
		parts = append(parts, "date="+Date)
	}
	if len(parts) > 0 {
		v += " (" + strings.Join(parts, ", ") + ")"
	}
	return v
}
