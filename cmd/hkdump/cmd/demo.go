package cmd

import (
	"time"

	"github.com/michcald/hkdebug"
	"github.com/michcald/hkdebug/config"
	"github.com/spf13/cobra"
)

var demoConfig string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Emit one record of every kind through a configured logger",
	Long: `demo builds a logger from the config file and emits a record at every
level, a timing record, a heap record and a binary dump. With the buffer
backend the ring contents are printed at the end.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().StringVarP(&demoConfig, "config", "c", "", "config file (toml, yaml or json5)")
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg := &config.Config{}
	if demoConfig != "" {
		var err error
		if cfg, err = config.Load(demoConfig); err != nil {
			return err
		}
	} else if err := cfg.Validate(); err != nil {
		return err
	}

	f, err := cfg.Build(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer f.Close()

	emitSamples(f.Logger)

	if f.Ring != nil {
		_, err = f.Ring.WriteTo(cmd.OutOrStdout())
	}
	return err
}

func emitSamples(l *hkdebug.Logger) {
	tag := l.Tag()
	l.Errorf(tag, "pair-setup failed: %d", -6754)
	l.Warnf(tag, "retrying in %d ms", 250)
	l.Infof(tag, "accessory ready on port %d", 5556)
	l.Debugf(tag, "session key length %d", 32)
	l.Verbosef(tag, "tlv item type=%d len=%d", 6, 1)

	l.DebugTimeBegin()
	time.Sleep(5 * time.Millisecond)
	l.DebugTimeEnd("emitSamples")

	l.InfoHeap()
	l.PrintBinary("tlv", []byte{0x06, 0x01, 0x01, 0x00, 0xFF, 'A'})
}
