package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maestrohq/landing/internal/server"
)

func newRoutesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the page routes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}
			srv, err := server.New(a.cfg, store, a.log)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for n := range srv.Routes().All() {
				if n.Parent == nil {
					continue
				}
				fmt.Fprintf(out, "%-5s %-20s %s\n", n.Method, n.FullRoute(), n.Title)
			}
			return nil
		},
	}
}
