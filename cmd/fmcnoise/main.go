// Package main provides the fmcnoise CLI: inspect the dispatch tier the
// library resolved on this machine and render noise expressions to PNG
// heightmaps.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "fmcnoise",
		Short:        "Evaluate procedural noise over grids",
		SilenceUsage: true,
	}
	root.AddCommand(newInfoCommand())
	root.AddCommand(newRenderCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
