package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
)

//go:embed seed.json
var seedJSON []byte

// Load decodes, validates and indexes a catalog definition.
func Load(r io.Reader) (*Catalog, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return parse(raw)
}

// LoadFile loads a catalog definition from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// LoadOrEmpty loads path, or the built-in catalog when path is empty.
// A missing or malformed source is logged and yields an empty catalog.
func LoadOrEmpty(path string, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	var (
		c   *Catalog
		err error
	)
	if path == "" {
		c, err = parse(seedJSON)
	} else {
		c, err = LoadFile(path)
	}
	if err != nil {
		logger.Warn("catalog unavailable, continuing with empty catalog", "path", path, "error", err)
		return Empty()
	}
	return c
}

// Default returns the built-in catalog. It panics if the embedded seed is
// invalid, which the package tests guard against.
func Default() *Catalog {
	c, err := parse(seedJSON)
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid seed: %v", err))
	}
	return c
}

func parse(raw []byte) (*Catalog, error) {
	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := checkVersion(doc.Version); err != nil {
		return nil, err
	}
	if err := validateLessons(doc.Lessons); err != nil {
		return nil, err
	}
	return New(doc.Version, doc.Lessons), nil
}
