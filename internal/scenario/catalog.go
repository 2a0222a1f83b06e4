package scenario

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/osse101/CarloSlots_Go/internal/validation"
)

var (
	//go:embed catalog/default.yaml
	defaultCatalog []byte

	//go:embed catalog/schema.json
	catalogSchemaJSON []byte

	catalogSchema = validation.MustSchemaValidator(CatalogSchemaURL, catalogSchemaJSON)
)

// Catalog is a set of scenarios plus the sweep presets that reference them
type Catalog struct {
	Scenarios []Scenario `yaml:"scenarios" validate:"min=1,dive"`
	Sweeps    []Sweep    `yaml:"sweeps" validate:"dive"`
}

// DefaultCatalog parses the embedded catalog
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(bytes.NewReader(defaultCatalog))
}

// LoadFile loads a catalog from a YAML file on disk
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrContextOpenCatalog, path, err)
	}
	defer f.Close()
	return LoadCatalog(f)
}

// LoadCatalog parses and validates a YAML catalog. The raw document is
// checked against the catalog schema first so misspelled keys are reported
// instead of silently decoding to zero values.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextReadCatalog, err)
	}

	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: failed to parse YAML: %v", ErrInvalidScenario, err)
	}
	if err := catalogSchema.ValidateDocument(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: failed to parse YAML: %v", ErrInvalidScenario, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks ids are unique, every economy is well formed and every
// sweep references known scenarios.
func (c *Catalog) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}

	seen := make(map[string]bool, len(c.Scenarios))
	for _, s := range c.Scenarios {
		if seen[s.ID] {
			return fmt.Errorf("%w: duplicate scenario id %q", ErrInvalidScenario, s.ID)
		}
		seen[s.ID] = true
		if err := s.Economy.Validate(); err != nil {
			return fmt.Errorf("%w: scenario %q: %v", ErrInvalidScenario, s.ID, err)
		}
	}

	sweeps := make(map[string]bool, len(c.Sweeps))
	for _, sw := range c.Sweeps {
		if sweeps[sw.ID] {
			return fmt.Errorf("%w: duplicate sweep id %q", ErrInvalidScenario, sw.ID)
		}
		sweeps[sw.ID] = true
		for _, id := range sw.Scenarios {
			if !seen[id] {
				return fmt.Errorf("%w: sweep %q references unknown scenario %q", ErrInvalidScenario, sw.ID, id)
			}
		}
	}
	return nil
}

// Sweep returns the preset with the given id
func (c *Catalog) Sweep(id string) (Sweep, bool) {
	for _, sw := range c.Sweeps {
		if sw.ID == id {
			return sw, true
		}
	}
	return Sweep{}, false
}

// Registry builds a registry holding every catalog scenario
func (c *Catalog) Registry() *Registry {
	r := NewRegistry()
	for _, s := range c.Scenarios {
		r.Register(s)
	}
	return r
}
