package unpack

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/deploymenttheory/go-bootimg/internal/types"
)

// Manifest records the regions written by one unpack run
type Manifest struct {
	Image       string           `yaml:"image"`
	ImageID     string           `yaml:"image_id"`
	ProductName string           `yaml:"product_name,omitempty"`
	PageSize    uint32           `yaml:"page_size"`
	Regions     []ManifestRegion `yaml:"regions"`
}

// ManifestRegion describes one written region
type ManifestRegion struct {
	Kind   types.RegionKind `yaml:"kind"`
	Offset uint64           `yaml:"offset"`
	Size   int64            `yaml:"size"`
	Path   string           `yaml:"path"`
	SHA256 string           `yaml:"sha256"`
}

// newManifest builds a manifest from the successful results of a run
func newManifest(resp *Response, productName string) *Manifest {
	m := &Manifest{
		Image:       resp.ImagePath,
		ImageID:     resp.ImageID,
		ProductName: productName,
		PageSize:    resp.PageSize,
		Regions:     []ManifestRegion{},
	}
	for _, r := range resp.Succeeded() {
		m.Regions = append(m.Regions, ManifestRegion{
			Kind:   r.Kind,
			Offset: r.Offset,
			Size:   r.Size,
			Path:   r.Path,
			SHA256: r.SHA256,
		})
	}
	return m
}

// WriteManifest writes m as YAML to path, creating parent directories
func WriteManifest(path string, m *Manifest) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create manifest directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create manifest: %w", err)
	}
	defer f.Close()

	encoder := yaml.NewEncoder(f)
	encoder.SetIndent(2)
	if err := encoder.Encode(m); err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	return f.Close()
}

// ReadManifest loads a manifest written by WriteManifest
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}
	return &m, nil
}
