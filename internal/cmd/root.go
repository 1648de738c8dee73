// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yourorg/hello/internal/buildinfo"
)

// Greeting is the line printed on every run.
const Greeting = "Hello World"

// NewRootCmd creates the root command for hello.
func NewRootCmd(log *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hello",
		Short: "Print a greeting",
		Long: `Print "Hello World" to standard output and exit.

Arguments are accepted and ignored, including flags such as --help.`,
		Example: `  hello
  hello foo bar`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := writeGreeting(cmd.OutOrStdout()); err != nil {
				log.Debug("greeting not written", zap.Error(err))
				return fmt.Errorf("write greeting: %w", err)
			}
			log.Debug("greeting written")
			return nil
		},
	}

	return cmd
}

// Execute runs the root command. args are logged and otherwise ignored; cobra
// is handed an empty argv so that nothing (not even its hidden completion
// request command) can change the output.
func Execute(args []string) error {
	log, err := newLogger(buildinfo.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	log.Debug("starting",
		zap.String("version", buildinfo.Summary()),
		zap.Strings("ignored_args", args),
	)

	root := NewRootCmd(log)
	root.SetArgs([]string{})
	return root.Execute()
}

// writeGreeting emits the whole line in a single Write.
func writeGreeting(w io.Writer) error {
	_, err := io.WriteString(w, Greeting+"\n")
	return err
}
