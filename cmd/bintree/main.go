// Command bintree builds, prints, inspects and generates binary trees.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	cobra.EnableCommandSorting = false
	c := newCLI()
	if err := c.Root.Execute(); err != nil {
		c.log.Errorw("command failed", "error", err)
		os.Exit(1)
	}
	_ = c.log.Sync()
}
