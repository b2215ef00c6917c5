package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fragmentkit/fragmentkit/pkg/adapter"
)

// fileManifest mirrors the manifest file layout. Dependencies are decoded
// from the raw node to preserve the order they appear in the file, which Go
// maps would lose.
type fileManifest struct {
	SPABundle    string    `yaml:"spaBundle"`
	CSSBundle    string    `yaml:"cssBundle"`
	Dependencies yaml.Node `yaml:"dependencies"`
}

// Load reads and parses the asset manifest at path.
func Load(path string) (adapter.AppAssets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return adapter.AppAssets{}, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes manifest file contents into an AppAssets value.
func Parse(data []byte) (adapter.AppAssets, error) {
	var m fileManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return adapter.AppAssets{}, fmt.Errorf("manifest: parse: %w", err)
	}

	assets := adapter.AppAssets{
		SPABundle: m.SPABundle,
		CSSBundle: m.CSSBundle,
	}

	if m.Dependencies.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(m.Dependencies.Content); i += 2 {
			assets.Dependencies = append(assets.Dependencies, adapter.Dependency{
				Name: m.Dependencies.Content[i].Value,
				URL:  m.Dependencies.Content[i+1].Value,
			})
		}
	}

	return assets, nil
}
