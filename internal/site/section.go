package site

import (
	"fmt"
	"net/http"

	"github.com/a-h/templ"

	"github.com/maestrohq/landing/internal/config"
	"github.com/maestrohq/landing/internal/overrides"
	"github.com/maestrohq/landing/sections"
)

// sectionPage renders one section alone, for editors previewing overrides
// and for htmx swaps of a single section.
type sectionPage struct{}

type sectionView struct {
	view
	section *sections.Section
}

func (sectionPage) Props(r *http.Request, cfg *config.Config, store *overrides.Store) (sectionView, error) {
	name := r.PathValue("name")
	s, ok := sections.Lookup(name)
	if !ok {
		return sectionView{}, NewHTTPError(http.StatusNotFound, fmt.Sprintf("unknown section %q", name))
	}
	v, err := newView(r, cfg, store)
	if err != nil {
		return sectionView{}, err
	}
	return sectionView{view: v, section: s}, nil
}

func (sectionPage) Page(v sectionView) templ.Component {
	return sections.Markup(sections.Fragment(v.section, v.ov, v.state))
}
