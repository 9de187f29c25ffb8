package navigate

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		href string
		want Kind
	}{
		{"/", Internal},
		{"/blog/our-story", Internal},
		{"#pricing", Anchor},
		{"https://twitter.com/warehousemaestro", External},
		{"//cdn.example.com/x", External},
		{"mailto:support@warehousemaestro.com", Contact},
		{"TEL:+15557890123", Contact},
		{"not a url at all", Internal},
		{"", Internal},
	}
	for _, tt := range tests {
		t.Run(tt.href, func(t *testing.T) {
			if got := Classify(tt.href); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.href, got, tt.want)
			}
		})
	}
}

func TestAttrs(t *testing.T) {
	tests := []struct {
		name string
		href string
		key  string
		want string
	}{
		{
			name: "internal boosted",
			href: "/team",
			key:  "teamCTAHref",
			want: ` href="/team" data-href="/team" data-editable-href="teamCTAHref" hx-boost="true"`,
		},
		{
			name: "external opens new tab",
			href: "https://github.com/warehousemaestro",
			key:  "social5Href",
			want: ` href="https://github.com/warehousemaestro" data-href="https://github.com/warehousemaestro" data-editable-href="social5Href" target="_blank" rel="noopener noreferrer"`,
		},
		{
			name: "anchor without key",
			href: "#contact",
			want: ` href="#contact" data-href="#contact"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			if err := Attrs(tt.href, tt.key).Render(&sb); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(sb.String(), tt.want); diff != "" {
				t.Errorf("Attrs() mismatch (-got +want):\n%s", diff)
			}
		})
	}
}
