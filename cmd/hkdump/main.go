package main

import (
	"os"

	"github.com/michcald/hkdebug/cmd/hkdump/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
