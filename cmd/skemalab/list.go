package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reoring/skemalab/lessons"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the lessons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, l := range lessons.All() {
				kind := "input"
				if l.Network {
					kind = "swapi"
				}
				fmt.Fprintf(a.out, "%-16s %-22s %-6s %s\n", l.ID, l.Title, kind, strings.Join(l.TargetNames(), ","))
			}
			return nil
		},
	}
}
