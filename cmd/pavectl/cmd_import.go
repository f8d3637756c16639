package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/elidrake/gridpave/grid"
	"github.com/elidrake/gridpave/paving"
	"github.com/spf13/cobra"
)

var (
	importDim    int
	importHeight int
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Load a dump file and report its shape",
	Long: `import reads a dump through paving.ImportFromFile and prints the
cell count and measure of the resulting paving. It operates on a scratch
copy of the given file, since ImportFromFile removes its source on
success.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().IntVar(&importDim, "dim", 1, "grid dimension")
	importCmd.Flags().IntVar(&importHeight, "height", 0, "primary cell height the dump is rooted at")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	scratch, err := scratchCopy(args[0])
	if err != nil {
		return err
	}
	defer os.Remove(scratch)

	g, err := grid.New(importDim)
	if err != nil {
		return err
	}
	set, err := paving.ImportFromFile(g, importHeight, scratch)
	if err != nil {
		return err
	}
	measure, err := set.Measure()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "cells=%d measure=%g depth=%d\n", set.Size(), measure, set.Depth())
	return nil
}

// scratchCopy copies path into a sibling file so a destructive reader
// can consume the copy, leaving the caller's original file untouched.
func scratchCopy(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst := filepath.Join(filepath.Dir(path), ".pavectl-scratch-"+filepath.Base(path))
	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(dst)
		return "", err
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return "", err
	}
	return dst, nil
}
