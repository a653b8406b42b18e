package inventory

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/appengine-ltd/invview/internal/item"
)

//go:embed categories.yaml
var defaultCategoriesYAML []byte

// CategoryTable classifies items by catalog instance name. It replaces a
// hardcoded list of instance names with data.
type CategoryTable struct {
	prefixes  map[string]item.Category
	instances map[string]item.Category
}

type categoryFile struct {
	FormatVersion int               `yaml:"format_version"`
	Prefixes      map[string]string `yaml:"prefixes"`
	Instances     map[string]string `yaml:"instances"`
}

// DefaultCategoryTable returns the table bundled with the binary.
func DefaultCategoryTable() *CategoryTable {
	t, err := ParseCategoryTable(defaultCategoriesYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded category table: %v", err))
	}
	return t
}

// LoadCategoryTable reads a table from path. A missing file yields the
// bundled default.
func LoadCategoryTable(path string) (*CategoryTable, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultCategoryTable(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultCategoryTable(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read category table: %w", err)
	}
	t, err := ParseCategoryTable(data)
	if err != nil {
		return nil, fmt.Errorf("category table %s: %w", path, err)
	}
	return t, nil
}

func ParseCategoryTable(data []byte) (*CategoryTable, error) {
	var f categoryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if f.FormatVersion > 1 {
		return nil, fmt.Errorf("unsupported format_version %d", f.FormatVersion)
	}
	t := &CategoryTable{
		prefixes:  make(map[string]item.Category, len(f.Prefixes)),
		instances: make(map[string]item.Category, len(f.Instances)),
	}
	for k, v := range f.Prefixes {
		key := normalizeInstance(k)
		if key == "" {
			return nil, fmt.Errorf("empty prefix for category %q", v)
		}
		t.prefixes[key] = item.Category(v).Normalize()
	}
	for k, v := range f.Instances {
		key := normalizeInstance(k)
		if key == "" {
			return nil, fmt.Errorf("empty instance name for category %q", v)
		}
		t.instances[key] = item.Category(v).Normalize()
	}
	return t, nil
}

// Lookup resolves an instance name: exact entries first, then the longest
// matching prefix. Unknown names report false.
func (t *CategoryTable) Lookup(instance string) (item.Category, bool) {
	if t == nil {
		return "", false
	}
	key := normalizeInstance(instance)
	if key == "" {
		return "", false
	}
	if c, ok := t.instances[key]; ok {
		return c, true
	}
	best := ""
	var cat item.Category
	for prefix, c := range t.prefixes {
		if len(prefix) <= len(best) || !strings.HasPrefix(key, prefix) {
			continue
		}
		best = prefix
		cat = c
	}
	return cat, best != ""
}

func (t *CategoryTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.prefixes) + len(t.instances)
}

func normalizeInstance(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
