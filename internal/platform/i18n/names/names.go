// Package names resolves localized display names for species and moves.
// Catalogs are embedded YAML files, one per locale, matched against
// requested locales with language tags.
package names

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the canonical source locale for catalogs.
const BaseLocale = "en-US"

//go:embed locales/*.yaml
var embeddedCatalogFS embed.FS

type localeNames struct {
	Species map[int]string `yaml:"species"`
	Moves   map[int]string `yaml:"moves"`
}

// Catalog stores every locale's display names and matches requested
// locales against them.
type Catalog struct {
	locales map[string]localeNames
	tags    []language.Tag
	names   []string
	matcher language.Matcher
}

// Load loads the catalogs embedded in this package.
func Load() (*Catalog, error) {
	return LoadFromFS(embeddedCatalogFS)
}

// LoadFromFS loads locale catalogs from the provided filesystem.
func LoadFromFS(catalogFS fs.FS) (*Catalog, error) {
	paths, err := fs.Glob(catalogFS, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	catalog := &Catalog{locales: map[string]localeNames{}}
	for _, filePath := range paths {
		locale := strings.TrimSuffix(path.Base(filePath), ".yaml")
		data, err := fs.ReadFile(catalogFS, filePath)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", filePath, err)
		}
		var parsed localeNames
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", filePath, err)
		}
		if _, err := language.Parse(locale); err != nil {
			return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
		}
		catalog.locales[locale] = parsed
	}
	if _, ok := catalog.locales[BaseLocale]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}

	// The base locale leads so the matcher falls back to it.
	catalog.names = append(catalog.names, BaseLocale)
	for locale := range catalog.locales {
		if locale != BaseLocale {
			catalog.names = append(catalog.names, locale)
		}
	}
	sort.Strings(catalog.names[1:])
	for _, locale := range catalog.names {
		catalog.tags = append(catalog.tags, language.MustParse(locale))
	}
	catalog.matcher = language.NewMatcher(catalog.tags)
	return catalog, nil
}

// Match resolves a requested locale to the closest supported one.
func (c *Catalog) Match(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return BaseLocale
	}
	_, index, _ := c.matcher.Match(tag)
	return c.names[index]
}

// SpeciesName returns the display name for a species in the requested
// locale, falling back to the base locale and then a numeric placeholder.
func (c *Catalog) SpeciesName(locale string, id int) string {
	if name, ok := c.lookup(locale, id, func(n localeNames) map[int]string { return n.Species }); ok {
		return name
	}
	return fmt.Sprintf("species #%d", id)
}

// MoveName returns the display name for a move in the requested locale,
// falling back to the base locale and then a numeric placeholder.
func (c *Catalog) MoveName(locale string, id int) string {
	if name, ok := c.lookup(locale, id, func(n localeNames) map[int]string { return n.Moves }); ok {
		return name
	}
	return fmt.Sprintf("move #%d", id)
}

func (c *Catalog) lookup(locale string, id int, table func(localeNames) map[int]string) (string, bool) {
	matched := c.Match(locale)
	if name, ok := table(c.locales[matched])[id]; ok {
		return name, true
	}
	if name, ok := table(c.locales[BaseLocale])[id]; ok {
		return name, true
	}
	return "", false
}
