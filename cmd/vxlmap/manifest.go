package main

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// ManifestEntry names one VXL file a batch job should decode and
// write back out, mirroring the sprite metadata entries a space
// carving job reads for each view.
type ManifestEntry struct {
	Name string `json:"name"`
	In   string `json:"in"`
	Out  string `json:"out"`
}

// Manifest is the root JSON structure for `vxlmap batch`.
type Manifest struct {
	Entries []ManifestEntry `json:"entries"`
}

// LoadManifest reads and parses a batch manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read manifest %s", path)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, "could not parse manifest %s", path)
	}

	return &m, nil
}
