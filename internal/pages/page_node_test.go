package pages

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPageNodeAll(t *testing.T) {
	root := &PageNode{
		Name: "Top",
		Children: []*PageNode{
			{Name: "Child1", Children: []*PageNode{{Name: "GrandChild1"}, {Name: "GrandChild2"}}},
			{Name: "Child2", Children: []*PageNode{{Name: "GrandChild3"}}},
		},
	}
	var got []string
	for n := range root.All() {
		got = append(got, n.Name)
	}
	want := []string{"Top", "Child1", "GrandChild1", "GrandChild2", "Child2", "GrandChild3"}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("All() mismatch (-got +want):\n%s", diff)
	}

	got = got[:0]
	for n := range root.All() {
		if n.Name == "GrandChild1" {
			break
		}
		got = append(got, n.Name)
	}
	if diff := cmp.Diff(got, []string{"Top", "Child1"}); diff != "" {
		t.Errorf("All() with break mismatch (-got +want):\n%s", diff)
	}
}

func TestFullRoute(t *testing.T) {
	root := &PageNode{Route: "/"}
	admin := &PageNode{Route: "/admin/", Parent: root}
	home := &PageNode{Route: "/{$}", Parent: root}
	section := &PageNode{Route: "/sections/{name}", Parent: admin}

	tests := []struct {
		node *PageNode
		want string
	}{
		{root, "/"},
		{admin, "/admin/"},
		{home, "/{$}"},
		{section, "/admin/sections/{name}"},
	}
	for _, tt := range tests {
		if got := tt.node.FullRoute(); got != tt.want {
			t.Errorf("FullRoute() = %q, want %q", got, tt.want)
		}
	}
}
