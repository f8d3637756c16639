// Command pavectl inspects and manipulates the flat, header-free tree
// dumps produced by paving.ExportToFile / paving.ImportFromFile.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pavectl",
	Short: "Inspect and manipulate gridpave tree dumps",
	Long: `pavectl operates on the flat, header-free pre-order tree dumps that
paving.ExportToFile writes and paving.ImportFromFile consumes. Because
import is destructive (the source file is removed on success), every
subcommand that reads a dump makes a scratch copy first.`,
}
