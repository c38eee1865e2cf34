package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"vxlmap"
)

var probeCmd = &cobra.Command{
	Use:   "probe <in.vxl>",
	Short: "Print the side length and depth of a VXL file without fully decoding it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := args[0]

		buf, err := os.ReadFile(in)
		if err != nil {
			return errors.Wrapf(err, "could not read %s", in)
		}

		side, depth := vxlmap.Probe(buf)

		log.Infow("probe finished", "side", side, "depth", depth)
		fmt.Printf("side=%d depth=%d\n", side, depth)
		return nil
	},
}
