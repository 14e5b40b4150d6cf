package main

import (
	"fmt"
	"os"

	"github.com/buildbarn/bb-pathname/pkg/filesystem/path"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCommand creates the command tree. Commands are created by
// functions instead of being stored in package variables, so that
// flags don't leak between invocations in tests.
func newRootCommand() *cobra.Command {
	var noColor bool
	rootCmd := &cobra.Command{
		Use:   "pathname",
		Short: "Inspect and normalize quoted POSIX pathname strings",
		Long: `pathname splits pathname strings into components, honoring single
quotes, double quotes and backslashes the way a shell does, and converts
them back to normalized pathname strings.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.AddCommand(newSplitCommand())
	rootCmd.AddCommand(newNormalizeCommand())
	return rootCmd
}

// getFormat converts the value of the --raw flag to a path.Format.
func getFormat(raw bool) path.Format {
	if raw {
		return path.RawFormat
	}
	return path.QuotedFormat
}
