package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Load reads every JSON catalog file under dir whose relative path matches one
// of the given doublestar glob patterns, and returns an index over the merged
// snapshot. Files are read in sorted path order so ingestion order is stable.
func Load(dir string, patterns []string) (*Index, error) {
	if len(patterns) == 0 {
		patterns = []string{"products*.json"}
	}

	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		for _, pattern := range patterns {
			if matched, err := doublestar.PathMatch(pattern, rel); err == nil && matched {
				files = append(files, path)
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning catalog dir %s: %w", dir, err)
	}
	sort.Strings(files)

	var products []Product
	for _, f := range files {
		recs, err := readFile(f)
		if err != nil {
			return nil, err
		}
		products = append(products, recs...)
	}

	return NewIndex(products), nil
}

// readFile decodes a single catalog file. Both a bare array and an object
// with a "products" key are accepted.
func readFile(path string) ([]Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file %s: %w", path, err)
	}

	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") {
		var wrapper struct {
			Products []Product `json:"products"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return nil, fmt.Errorf("parsing catalog file %s: %w", path, err)
		}
		return wrapper.Products, nil
	}

	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parsing catalog file %s: %w", path, err)
	}
	return products, nil
}
