// Package audit checks rendered markup against the content tables: every
// editable tag must name a key of its section, appear once, and show the
// value the manifest recorded for it.
package audit

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/maestrohq/landing/content"
)

// Problem classifies a finding.
type Problem string

const (
	UnknownKey     Problem = "unknown key"
	DuplicateTag   Problem = "duplicate tag"
	ValueMismatch  Problem = "value differs from manifest"
	MissingSection Problem = "section not rendered"
	OrphanTag      Problem = "tag outside any section"
)

// Finding is one problem in the markup.
type Finding struct {
	Section string  `json:"section" yaml:"section"`
	Attr    string  `json:"attr,omitempty" yaml:"attr,omitempty"`
	Key     string  `json:"key,omitempty" yaml:"key,omitempty"`
	Problem Problem `json:"problem" yaml:"problem"`
}

func (f Finding) String() string {
	if f.Key == "" {
		return fmt.Sprintf("%s: %s", f.Section, f.Problem)
	}
	return fmt.Sprintf("%s: %s=%q: %s", f.Section, f.Attr, f.Key, f.Problem)
}

// Report is the outcome of an audit.
type Report struct {
	Sections int       `json:"sections" yaml:"sections"`
	Tags     int       `json:"tags" yaml:"tags"`
	Findings []Finding `json:"findings" yaml:"findings"`
}

// OK reports whether the audit found nothing.
func (r Report) OK() bool { return len(r.Findings) == 0 }

var attrs = []string{
	content.KindText.Attribute(),
	content.KindHref.Attribute(),
	content.KindAttr.Attribute(),
}

// Audit reads a rendered page. Sections are the elements whose id names a
// table in tables. When m is not nil, text tags are compared with the values
// it recorded.
func Audit(html io.Reader, tables map[string]content.Table, m *content.Manifest) (Report, error) {
	doc, err := goquery.NewDocumentFromReader(html)
	if err != nil {
		return Report{}, fmt.Errorf("failed to parse page: %w", err)
	}
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	slices.Sort(names)

	var report Report
	for _, name := range names {
		container := doc.Find("#" + name).First()
		if container.Length() == 0 {
			report.Findings = append(report.Findings, Finding{Section: name, Problem: MissingSection})
			continue
		}
		report.Sections++
		var recorded map[string]string
		if m != nil {
			recorded = make(map[string]string)
			for _, f := range m.Section(name) {
				if f.Kind == content.KindText {
					recorded[f.Key] = f.Value
				}
			}
		}
		seen := make(map[string]bool)
		for _, attr := range attrs {
			container.Find("[" + attr + "]").Each(func(_ int, s *goquery.Selection) {
				key, _ := s.Attr(attr)
				report.Tags++
				finding := Finding{Section: name, Attr: attr, Key: key}
				switch {
				case !tables[name].Has(key):
					finding.Problem = UnknownKey
				case seen[attr+"\x00"+key]:
					finding.Problem = DuplicateTag
				case recorded != nil && attr == content.KindText.Attribute() && recorded[key] != s.Text():
					finding.Problem = ValueMismatch
				}
				seen[attr+"\x00"+key] = true
				if finding.Problem != "" {
					report.Findings = append(report.Findings, finding)
				}
			})
		}
	}

	containers := make([]string, len(names))
	for i, name := range names {
		containers[i] = "#" + name
	}
	selector := strings.Join(containers, ", ")
	for _, attr := range attrs {
		doc.Find("[" + attr + "]").Each(func(_ int, s *goquery.Selection) {
			if len(names) > 0 && s.ParentsFiltered(selector).Length() > 0 {
				return
			}
			key, _ := s.Attr(attr)
			report.Findings = append(report.Findings, Finding{Attr: attr, Key: key, Problem: OrphanTag})
		})
	}
	return report, nil
}
