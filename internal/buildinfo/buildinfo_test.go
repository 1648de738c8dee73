// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummary(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	t.Cleanup(func() {
		Version, Commit, Date = oldVersion, oldCommit, oldDate
	})

	tests := []struct {
		name    string
		version string
		commit  string
		date    string
		want    string
	}{
		{name: "defaults", version: "dev", want: "dev"},
		{name: "empty version", want: "dev"},
		{name: "version only", version: "1.2.3", want: "1.2.3"},
		{name: "long commit truncated", version: "1.2.3", commit: "0123456789abcdef", want: "1.2.3 (commit=0123456)"},
		{name: "short commit kept", version: "1.2.3", commit: "abc", want: "1.2.3 (commit=abc)"},
		{name: "date only", version: "1.2.3", date: "2025-01-02", want: "1.2.3 (date=2025-01-02)"},
		{name: "all fields", version: "1.2.3", commit: "0123456789", date: "2025-01-02", want: "1.2.3 (commit=0123456, date=2025-01-02)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, Commit, Date = tt.version, tt.commit, tt.date
			assert.Equal(t, tt.want, Summary())
		})
	}
}

func TestLogLevelDefault(t *testing.T) {
	assert.Equal(t, "info", LogLevel)
}
