package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"vxlmap"
	"vxlmap/kv6"
)

var kv6Cmd = &cobra.Command{
	Use:   "kv6 <in.vxl> <out.kv6>",
	Short: "Decode a VXL file and export it as a KV6 point sprite",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, out := args[0], args[1]
		log.Infow("kv6 export starting", "in", in, "out", out)

		buf, err := os.ReadFile(in)
		if err != nil {
			return errors.Wrapf(err, "could not read %s", in)
		}

		side, depth := vxlmap.Probe(buf)

		m, err := vxlmap.Decode(side, side, depth, buf)
		if err != nil {
			return errors.Wrapf(err, "could not decode %s", in)
		}

		if err := kv6.Write(m, out); err != nil {
			return errors.Wrapf(err, "could not write %s", out)
		}

		log.Infow("kv6 export finished", "out", out)
		return nil
	},
}
