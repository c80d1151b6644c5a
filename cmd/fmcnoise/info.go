package main

import (
	"github.com/spf13/cobra"

	"github.com/formulaicgame/fmc-noise/noise"
)

func newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the resolved vector tier and lane count",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Printf("tier:   %s\n", noise.CurrentName())
			cmd.Printf("width:  %d bytes\n", noise.CurrentWidth())
			cmd.Printf("lanes:  %d x float32\n", noise.LaneCount())
			return nil
		},
	}
}
