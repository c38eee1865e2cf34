package main

import (
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"vxlmap"
)

var streamFrameSize int

var streamCopyCmd = &cobra.Command{
	Use:   "stream-copy <in.vxl> <out.vxl>",
	Short: "Copy a VXL file through the streaming encoder, frame by frame",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, out := args[0], args[1]
		streamID := uuid.New()
		log.Infow("stream-copy starting", "stream", streamID, "in", in, "out", out, "frame", streamFrameSize)

		buf, err := os.ReadFile(in)
		if err != nil {
			return errors.Wrapf(err, "could not read %s", in)
		}

		side, depth := vxlmap.Probe(buf)

		m, err := vxlmap.Decode(side, side, depth, buf)
		if err != nil {
			return errors.Wrapf(err, "could not decode %s", in)
		}

		outFile, err := os.Create(out)
		if err != nil {
			return errors.Wrapf(err, "could not create %s", out)
		}
		defer outFile.Close()

		enc := vxlmap.NewStreamEncoder(m)
		defer enc.Close()

		frame := make([]byte, streamFrameSize)
		total := 0
		for {
			n := enc.Read(frame)
			if n == 0 {
				break
			}
			if _, err := outFile.Write(frame[:n]); err != nil {
				return errors.Wrapf(err, "could not write %s", out)
			}
			total += n
		}

		log.Infow("stream-copy finished", "stream", streamID, "bytesWritten", total)
		return nil
	},
}

func init() {
	streamCopyCmd.Flags().IntVar(&streamFrameSize, "frame", 4096, "frame size in bytes")
}
