package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// SiteConfig is the bundled site-content document (site-config.json): an
// arbitrary nested mapping addressed by dotted paths such as "owner.name".
// It is read-only for the lifetime of the process.
type SiteConfig struct {
	values map[string]any
}

// LoadSiteConfig reads the content configuration document from path.
func LoadSiteConfig(path string) (*SiteConfig, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), json.Parser()); err != nil {
		return nil, fmt.Errorf("reading site config %s: %w", path, err)
	}
	return &SiteConfig{values: k.Raw()}, nil
}

// EmptySiteConfig returns a SiteConfig with no values, used when the bundled
// document could not be loaded. Every lookup against it misses.
func EmptySiteConfig() *SiteConfig {
	return &SiteConfig{values: map[string]any{}}
}

// Lookup navigates the nested mapping along the dotted path. It fails closed:
// a missing key or a non-mapping intermediate at any level yields a miss,
// never an error.
func (c *SiteConfig) Lookup(path string) (string, bool) {
	if c == nil || path == "" {
		return "", false
	}

	var cur any = c.values
	for _, seg := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return "", false
		}
		cur, ok = m[seg]
		if !ok {
			return "", false
		}
	}

	return stringify(cur)
}

// stringify converts a leaf value to its string form. Nested mappings and
// lists are not values and count as a miss.
func stringify(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		if t == "" {
			return "", false
		}
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	default:
		return "", false
	}
}
