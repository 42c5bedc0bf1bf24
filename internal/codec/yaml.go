package codec

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"gedstore/internal/domain"
	"gedstore/internal/repository"
)

// yamlVersion is the envelope version written by Export
const yamlVersion = 1

// YAMLCodec handles YAML import/export
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// yamlDocument is the versioned envelope around a snapshot
type yamlDocument struct {
	Version  int             `yaml:"gedstore"`
	Snapshot domain.Snapshot `yaml:",inline"`
}

// Parse imports a snapshot from YAML. Unknown keys are rejected.
func (c *YAMLCodec) Parse(r io.Reader) (*domain.Snapshot, error) {
	var doc yamlDocument
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if doc.Version != yamlVersion {
		return nil, fmt.Errorf("unsupported YAML version %d (want %d)", doc.Version, yamlVersion)
	}
	if err := validate(&doc.Snapshot); err != nil {
		return nil, err
	}

	return &doc.Snapshot, nil
}

// Export exports a snapshot to YAML
func (c *YAMLCodec) Export(snap *domain.Snapshot, w io.Writer) error {
	if snap == nil {
		return fmt.Errorf("export: %w", repository.ErrInvalidArgument)
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	doc := yamlDocument{Version: yamlVersion, Snapshot: *snap}
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return encoder.Close()
}
