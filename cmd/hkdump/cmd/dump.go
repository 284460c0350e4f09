package cmd

import (
	"fmt"
	"os"

	"github.com/michcald/hkdebug"
	"github.com/spf13/cobra"
)

var dumpWidth int

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Render a binary file as hkdebug dump lines",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().IntVarP(&dumpWidth, "width", "w", 16, "bytes per output line")
}

func runDump(cmd *cobra.Command, args []string) error {
	if dumpWidth < 1 {
		return fmt.Errorf("width must be positive, got %d", dumpWidth)
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	out := cmd.OutOrStdout()
	for off := 0; off < len(data); off += dumpWidth {
		end := min(off+dumpWidth, len(data))
		fmt.Fprintf(out, "%08x  %s\n", off, hkdebug.BinaryToString(data[off:end]))
	}
	return nil
}
