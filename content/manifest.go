package content

import (
	"errors"
	"fmt"
)

// Kind says how a tagged field is exposed in the markup.
type Kind string

const (
	// KindText is element text, tagged with data-editable.
	KindText Kind = "text"
	// KindHref is a link target, tagged with data-editable-href.
	KindHref Kind = "href"
	// KindAttr is another attribute, such as an input placeholder, tagged
	// with data-editable-attr.
	KindAttr Kind = "attr"
)

// Attribute returns the markup attribute carrying the tag for k.
func (k Kind) Attribute() string {
	switch k {
	case KindHref:
		return "data-editable-href"
	case KindAttr:
		return "data-editable-attr"
	default:
		return "data-editable"
	}
}

// Field is one rendered value and the content key it came from.
type Field struct {
	Section string `json:"section" yaml:"section"`
	Key     string `json:"key" yaml:"key"`
	Kind    Kind   `json:"kind" yaml:"kind"`
	Value   string `json:"value" yaml:"value"`
}

// Manifest is the side-channel produced next to rendered markup. It lists
// every editable field in the order its section built it so tooling can map
// markup back to the key it must patch.
type Manifest struct {
	Fields []Field `json:"fields" yaml:"fields"`
}

// Add appends a field.
func (m *Manifest) Add(section, key string, kind Kind, value string) {
	m.Fields = append(m.Fields, Field{Section: section, Key: key, Kind: kind, Value: value})
}

// Section returns the fields of one section, in recorded order.
func (m *Manifest) Section(name string) []Field {
	var fields []Field
	for _, f := range m.Fields {
		if f.Section == name {
			fields = append(fields, f)
		}
	}
	return fields
}

// Override collects the manifest values of one section into an override.
func (m *Manifest) Override(section string) Override {
	o := make(Override)
	for _, f := range m.Section(section) {
		o[f.Key] = f.Value
	}
	return o
}

var (
	// ErrDuplicateTag reports a tag that appears more than once in a section.
	ErrDuplicateTag = errors.New("duplicate editable tag")
	// ErrUnknownTag reports a tag that names no key of the section table.
	ErrUnknownTag = errors.New("editable tag has no content key")
)

// Validate checks the fields of section against t: every tag must name a key
// of t and appear at most once. All problems are returned joined.
func (m *Manifest) Validate(section string, t Table) error {
	var errs []error
	seen := make(map[string]bool)
	for _, f := range m.Section(section) {
		if seen[f.Key] {
			errs = append(errs, fmt.Errorf("%s.%s: %w", section, f.Key, ErrDuplicateTag))
		}
		seen[f.Key] = true
		if !t.Has(f.Key) {
			errs = append(errs, fmt.Errorf("%s.%s: %w", section, f.Key, ErrUnknownTag))
		}
	}
	return errors.Join(errs...)
}
