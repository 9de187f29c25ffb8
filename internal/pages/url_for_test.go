package pages

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type linkPage struct{}

func (linkPage) Props(r *http.Request) context.Context { return r.Context() }

func (linkPage) Page(ctx context.Context) component {
	home, err := URLFor(ctx, homePage{})
	if err != nil {
		return testComponent{content: err.Error()}
	}
	section, err := URLFor(ctx, &sectionPage{}, "pricing")
	if err != nil {
		return testComponent{content: err.Error()}
	}
	return testComponent{content: home + " " + section}
}

type linkSite struct {
	home    homePage    `route:"GET /{$} Home"`
	section sectionPage `route:"GET /sections/{name} Section"`
	links   linkPage    `route:"/links Links"`
}

func TestURLForInHandler(t *testing.T) {
	r := NewRouter(http.NewServeMux())
	p := New()
	if _, err := p.Mount(r, linkSite{}, "/", "", &greeter{}); err != nil {
		t.Fatalf("Mount failed: %v", err)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/links", http.NoBody))
	if diff := cmp.Diff(rec.Body.String(), "/ /sections/pricing"); diff != "" {
		t.Errorf("URLFor mismatch (-got +want):\n%s", diff)
	}
}

func TestURLForWithoutTree(t *testing.T) {
	if _, err := URLFor(context.Background(), homePage{}); err == nil {
		t.Error("expected error without a mounted tree")
	}
}

func TestFormatPath(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		args    []any
		want    string
		wantErr bool
	}{
		{"no params", "/about", nil, "/about", false},
		{"positional", "/sections/{name}", []any{"hero"}, "/sections/hero", false},
		{"pairs", "/a/{x}/b/{y}", []any{"y", 2, "x", 1}, "/a/1/b/2", false},
		{"wildcard", "/static/{path...}", []any{"css/site.css"}, "/static/css/site.css", false},
		{"exact", "/{$}", nil, "/{$}", false},
		{"too few", "/sections/{name}", nil, "", true},
		{"missing pair", "/a/{x}/b/{y}", []any{"x", 1, "z", 2}, "", true},
		{"unmatched brace", "/a/{x", []any{1}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatPath(tt.pattern, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("formatPath() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("formatPath() = %q, want %q", got, tt.want)
			}
		})
	}
}
