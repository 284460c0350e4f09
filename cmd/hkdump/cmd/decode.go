package cmd

import (
	"strings"

	"github.com/michcald/hkdebug"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <text>...",
	Short: "Decode rendered dump text back into raw bytes",
	Long: `decode reverses the rendering used in hkdebug dump records and writes
the raw bytes to stdout. Several arguments are joined without separator.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	data, err := hkdebug.ParseBinaryString(strings.Join(args, ""))
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
