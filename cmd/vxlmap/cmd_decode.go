package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"vxlmap"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <in.vxl> <out.vxl>",
	Short: "Decode a VXL file and re-encode it, as a round-trip sanity check",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, out := args[0], args[1]
		log.Infow("decode starting", "in", in, "out", out)

		buf, err := os.ReadFile(in)
		if err != nil {
			return errors.Wrapf(err, "could not read %s", in)
		}

		side, depth := vxlmap.Probe(buf)
		log.Infow("probed dimensions", "side", side, "depth", depth)

		m, err := vxlmap.Decode(side, side, depth, buf)
		if err != nil {
			return errors.Wrapf(err, "could not decode %s", in)
		}

		n, err := vxlmap.WriteFile(m, out)
		if err != nil {
			return errors.Wrapf(err, "could not write %s", out)
		}

		log.Infow("decode finished", "bytesWritten", n)
		return nil
	},
}
