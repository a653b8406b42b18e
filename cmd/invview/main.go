//go:build cgo

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	flags := &rootFlags{}
	rootCmd := &cobra.Command{
		Use:   "invview",
		Short: "Two-panel inventory grid viewer",
		Long: `invview browses a player inventory and a loot container side by side,
in a raylib window or in the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags.register(rootCmd)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGUICmd(flags))
	rootCmd.AddCommand(newTUICmd(flags))
	rootCmd.AddCommand(newDumpCmd(flags))
	rootCmd.AddCommand(newConfigCmd(flags))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
