package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/maestrohq/landing/sections"
)

func newDefaultsCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "defaults [section...]",
		Short: "Print the default content as an override file template",
		Long: `Print the default content of every section, or of the named sections,
as YAML in the shape the override file expects. Keys appear in page order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var selected []*sections.Section
			for _, name := range args {
				s, ok := sections.Lookup(name)
				if !ok {
					return fmt.Errorf("unknown section %q", name)
				}
				selected = append(selected, s)
			}
			if len(selected) == 0 {
				selected = sections.All
			}
			return writeDefaults(cmd.OutOrStdout(), selected)
		},
	}
}

func writeDefaults(w io.Writer, selected []*sections.Section) error {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, s := range selected {
		table := &yaml.Node{Kind: yaml.MappingNode}
		for _, e := range s.Defaults.Entries() {
			table.Content = append(table.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: e.Key},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Value})
		}
		doc.Content = append(doc.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: s.Name}, table)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to write defaults: %w", err)
	}
	return enc.Close()
}
