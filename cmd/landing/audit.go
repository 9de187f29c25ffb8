package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maestrohq/landing/internal/audit"
	"github.com/maestrohq/landing/sections"
)

func newAuditCmd(a *app) *cobra.Command {
	var asJSON bool
	var billing string
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Check that every editable tag of the page resolves to a content key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			html, m, err := a.render(cmd.Context(), billing)
			if err != nil {
				return err
			}
			report, err := audit.Audit(bytes.NewReader(html), sections.Tables(), m)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				for _, f := range report.Findings {
					fmt.Fprintln(out, f)
				}
				fmt.Fprintf(out, "%d sections, %d tags, %d findings\n", report.Sections, report.Tags, len(report.Findings))
			}
			if !report.OK() {
				return fmt.Errorf("audit failed with %d findings", len(report.Findings))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	cmd.Flags().StringVar(&billing, "billing", "monthly", "billing cycle to render: monthly or annual")
	return cmd
}
