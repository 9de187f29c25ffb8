package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/maestrohq/landing/internal/export"
)

func newExportCmd(a *app) *cobra.Command {
	var opts export.Options
	var out string
	var html bool
	cmd := &cobra.Command{
		Use:   "export [section...]",
		Short: "Render the page and write it as Markdown or HTML",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, _, err := a.render(cmd.Context(), "")
			if err != nil {
				return err
			}
			var w io.Writer = cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}
			if html {
				_, err := w.Write(page)
				return err
			}
			opts.Sections = args
			text, err := export.Markdown(bytes.NewReader(page), opts)
			if err != nil {
				return err
			}
			_, err = io.WriteString(w, text)
			return err
		},
	}
	cmd.Flags().StringVar(&out, "out", "-", "output file, - for stdout")
	cmd.Flags().StringVar(&opts.Domain, "domain", "", "make relative links absolute against this domain")
	cmd.Flags().BoolVar(&html, "html", false, "write the rendered HTML instead of Markdown")
	return cmd
}
