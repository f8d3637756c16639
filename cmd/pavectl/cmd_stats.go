package main

import (
	"fmt"
	"os"

	"github.com/elidrake/gridpave/grid"
	"github.com/elidrake/gridpave/paving"
	"github.com/spf13/cobra"
)

var (
	statsDim    int
	statsHeight int
)

var statsCmd = &cobra.Command{
	Use:   "stats <file>",
	Short: "Print cell count, depth, measure and bounding box for a dump",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&statsDim, "dim", 1, "grid dimension")
	statsCmd.Flags().IntVar(&statsHeight, "height", 0, "primary cell height the dump is rooted at")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	scratch, err := scratchCopy(args[0])
	if err != nil {
		return err
	}
	defer os.Remove(scratch)

	g, err := grid.New(statsDim)
	if err != nil {
		return err
	}
	set, err := paving.ImportFromFile(g, statsHeight, scratch)
	if err != nil {
		return err
	}
	measure, err := set.Measure()
	if err != nil {
		return err
	}
	box, err := set.BoundingBox()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "cells=%d depth=%d measure=%g bbox=%v\n", set.Size(), set.Depth(), measure, box)
	return nil
}
