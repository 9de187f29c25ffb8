package site

import (
	"encoding/json"
	"net/http"

	"github.com/maestrohq/landing/content"
	"github.com/maestrohq/landing/internal/config"
	"github.com/maestrohq/landing/internal/overrides"
	"github.com/maestrohq/landing/sections"
)

// manifestPage lists every editable field of the rendered page with its
// effective value, for editing tools.
type manifestPage struct {
	cfg   *config.Config
	store *overrides.Store
}

// ManifestResponse is the body of /manifest.json.
type ManifestResponse struct {
	Version uint64          `json:"version"`
	Fields  []content.Field `json:"fields"`
}

func (p *manifestPage) Init(cfg *config.Config, store *overrides.Store) {
	p.cfg, p.store = cfg, store
}

func (p *manifestPage) ServeHTTP(w http.ResponseWriter, r *http.Request) error {
	v, err := newView(r, p.cfg, p.store)
	if err != nil {
		return err
	}
	_, m := sections.Page(v.meta, v.ov, v.state)
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ManifestResponse{Version: v.version, Fields: m.Fields})
}
