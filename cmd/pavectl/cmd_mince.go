package main

import (
	"fmt"
	"os"

	"github.com/elidrake/gridpave/grid"
	"github.com/elidrake/gridpave/paving"
	"github.com/spf13/cobra"
)

var (
	minceDim      int
	minceHeight   int
	minceMaxWidth float64
	minceOut      string
)

var minceCmd = &cobra.Command{
	Use:   "mince <file>",
	Short: "Subdivide every enabled cell in a dump down to a maximum width",
	Long: `mince reads a dump, calls GridTreeSubset.Subdivide so no enabled
cell's box exceeds --max-width on any axis, and writes the result back
out. Reading is done on a scratch copy; without --out the result then
overwrites the input file.`,
	Args: cobra.ExactArgs(1),
	RunE: runMince,
}

func init() {
	minceCmd.Flags().IntVar(&minceDim, "dim", 1, "grid dimension")
	minceCmd.Flags().IntVar(&minceHeight, "height", 0, "primary cell height the dump is rooted at")
	minceCmd.Flags().Float64Var(&minceMaxWidth, "max-width", 0, "maximum cell box width on any axis (required, > 0)")
	minceCmd.Flags().StringVar(&minceOut, "out", "", "output path (default: overwrite the input file)")
	rootCmd.AddCommand(minceCmd)
}

func runMince(cmd *cobra.Command, args []string) error {
	if minceMaxWidth <= 0 {
		return fmt.Errorf("pavectl: --max-width must be positive, got %g", minceMaxWidth)
	}
	in := args[0]
	scratch, err := scratchCopy(in)
	if err != nil {
		return err
	}
	defer os.Remove(scratch)

	g, err := grid.New(minceDim)
	if err != nil {
		return err
	}
	set, err := paving.ImportFromFile(g, minceHeight, scratch)
	if err != nil {
		return err
	}
	if err := set.AsSubset().Subdivide(minceMaxWidth); err != nil {
		return err
	}

	out := minceOut
	if out == "" {
		out = in
	}
	if err := paving.ExportToFile(set, out); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "minced %s to max width %g, %d cells -> %s\n", in, minceMaxWidth, set.Size(), out)
	return nil
}
