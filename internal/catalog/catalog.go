// Package catalog holds the static description of the form fields:
// labels, input kinds, numeric bounds and the allowed choices.
package catalog

import (
	_ "embed"
	"fmt"
	"strconv"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// CurrentYear is a max placeholder resolved at render time.
const CurrentYear = "current_year"

type Kind string

const (
	KindText   Kind = "text"
	KindNumber Kind = "number"
	KindSelect Kind = "select"
)

type Field struct {
	Name        string   `yaml:"name"`
	Label       string   `yaml:"label"`
	Kind        Kind     `yaml:"kind"`
	Required    bool     `yaml:"required"`
	Min         string   `yaml:"min"`
	Max         string   `yaml:"max"`
	Step        string   `yaml:"step"`
	Placeholder string   `yaml:"placeholder"`
	Prompt      string   `yaml:"prompt"`
	Help        string   `yaml:"help"`
	Choices     []string `yaml:"choices"`
}

// MaxAt returns the max bound with CurrentYear resolved against now.
func (f Field) MaxAt(now time.Time) string {
	if f.Max == CurrentYear {
		return strconv.Itoa(now.Year())
	}
	return f.Max
}

type Catalog struct {
	fields []Field
	byName map[string]int
}

//go:embed fields.yaml
var defaultFields []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog embedded in the binary. It panics if the
// embedded file is malformed, which a test guards against.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(defaultFields)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded fields: %s", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

func Parse(data []byte) (*Catalog, error) {
	var doc struct {
		Fields []Field `yaml:"fields"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal fields: %w", err)
	}

	c := &Catalog{
		fields: doc.Fields,
		byName: make(map[string]int, len(doc.Fields)),
	}
	for i, f := range doc.Fields {
		if f.Name == "" {
			return nil, fmt.Errorf("field %d has no name", i)
		}
		if _, dup := c.byName[f.Name]; dup {
			return nil, fmt.Errorf("duplicate field %q", f.Name)
		}
		if f.Kind == KindSelect && len(f.Choices) == 0 {
			return nil, fmt.Errorf("select field %q has no choices", f.Name)
		}
		c.byName[f.Name] = i
	}

	return c, nil
}

// Fields returns the fields in form order.
func (c *Catalog) Fields() []Field {
	out := make([]Field, len(c.fields))
	copy(out, c.fields)
	return out
}

func (c *Catalog) Field(name string) (Field, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Field{}, false
	}
	return c.fields[i], true
}

func (c *Catalog) Choices(name string) []string {
	f, ok := c.Field(name)
	if !ok {
		return nil
	}
	return f.Choices
}

// Allows reports whether value is one of the field's choices. Fields
// without a choice list allow anything.
func (c *Catalog) Allows(name, value string) bool {
	choices := c.Choices(name)
	if len(choices) == 0 {
		return true
	}
	for _, choice := range choices {
		if choice == value {
			return true
		}
	}
	return false
}
