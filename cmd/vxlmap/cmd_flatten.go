package main

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"vxlmap"
)

var flattenCmd = &cobra.Command{
	Use:   "flatten <W> <H> <D> <out.vxl>",
	Short: "Write a flat-floor map of the given dimensions",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := strconv.Atoi(args[0])
		if err != nil {
			return errors.Wrap(err, "invalid width")
		}
		h, err := strconv.Atoi(args[1])
		if err != nil {
			return errors.Wrap(err, "invalid height")
		}
		d, err := strconv.Atoi(args[2])
		if err != nil {
			return errors.Wrap(err, "invalid depth")
		}
		out := args[3]

		log.Infow("flatten starting", "w", w, "h", h, "d", d, "out", out)

		m := vxlmap.NewFlat(w, h, d)
		n, err := vxlmap.WriteFile(m, out)
		if err != nil {
			return errors.Wrapf(err, "could not write %s", out)
		}

		log.Infow("flatten finished", "bytesWritten", n)
		return nil
	},
}
