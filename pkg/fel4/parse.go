package fel4

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/thoreinstein/fel4cfg/pkg/fileutil"
)

// ParseManifest parses raw manifest TOML into a typed Manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotTOML, err)
	}
	return FromDocument(doc)
}

// LoadManifest reads and parses the manifest file at path.
// Errors are wrapped with the path for context.
func LoadManifest(path string) (*Manifest, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	manifest, err := ParseManifest(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return manifest, nil
}

// GetConfig loads the manifest at path and resolves it for the given
// profile in one call.
func GetConfig(path string, profile BuildProfile) (*ResolvedConfig, error) {
	manifest, err := LoadManifest(path)
	if err != nil {
		return nil, err
	}
	return Resolve(manifest, profile)
}
