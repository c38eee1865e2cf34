package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"vxlmap"
)

var batchCmd = &cobra.Command{
	Use:   "batch <manifest.json>",
	Short: "Decode and re-encode every VXL file named in a manifest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		manifestPath := args[0]

		manifest, err := LoadManifest(manifestPath)
		if err != nil {
			return err
		}

		log.Infow("batch starting", "manifest", manifestPath, "entries", len(manifest.Entries))

		succeeded := 0
		for _, entry := range manifest.Entries {
			if err := runBatchEntry(entry); err != nil {
				log.Errorw("batch entry failed", "name", entry.Name, "error", err)
				continue
			}
			succeeded++
		}

		log.Infow("batch finished", "succeeded", succeeded, "total", len(manifest.Entries))
		return nil
	},
}

func runBatchEntry(entry ManifestEntry) error {
	log.Infow("batch entry starting", "name", entry.Name, "in", entry.In, "out", entry.Out)

	buf, err := os.ReadFile(entry.In)
	if err != nil {
		return errors.Wrapf(err, "could not read %s", entry.In)
	}

	side, depth := vxlmap.Probe(buf)

	m, err := vxlmap.Decode(side, side, depth, buf)
	if err != nil {
		return errors.Wrapf(err, "could not decode %s", entry.In)
	}

	if _, err := vxlmap.WriteFile(m, entry.Out); err != nil {
		return errors.Wrapf(err, "could not write %s", entry.Out)
	}

	return nil
}
