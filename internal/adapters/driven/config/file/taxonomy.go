package file

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/edukit-labs/coursegen-cli/internal/core/domain"
)

// LoadTaxonomy reads a taxonomy override from a TOML file.
// An empty path returns the built-in taxonomy. Tables absent from the
// file keep their built-in entries, so a file can override just one
// table (say, stop_terms) without restating the rest.
func LoadTaxonomy(path string) (domain.Taxonomy, error) {
	taxonomy := domain.DefaultTaxonomy()
	if path == "" {
		return taxonomy, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Taxonomy{}, fmt.Errorf("read taxonomy file: %w", err)
	}

	if err := toml.Unmarshal(data, &taxonomy); err != nil {
		return domain.Taxonomy{}, fmt.Errorf("parse taxonomy file %s: %w", path, err)
	}

	if err := taxonomy.Validate(); err != nil {
		return domain.Taxonomy{}, fmt.Errorf("taxonomy file %s: %w", path, err)
	}
	return taxonomy, nil
}
