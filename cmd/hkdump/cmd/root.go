// Package cmd implements the hkdump command line.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hkdump",
	Short: "Host-side companion for hkdebug firmware logs",
	Long: `hkdump renders and decodes the binary dumps found in hkdebug log
lines, and can run the logging facility on a Linux host from a config file.

Commands:
  dump     render a file the way PrintBinary does
  decode   turn a rendered dump back into raw bytes
  demo     emit sample records through a configured logger`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
