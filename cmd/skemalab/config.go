package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := a.cfg.YAML()
			if err != nil {
				return err
			}
			if p := a.cfg.Path(); p != "" {
				fmt.Fprintf(a.out, "# %s\n", p)
			}
			_, err = a.out.Write(b)
			return err
		},
	}
}
