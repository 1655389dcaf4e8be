package main

import (
	"fmt"

	"github.com/spf13/cobra"

	js "github.com/reoring/skemalab/jsonschema"
	"github.com/reoring/skemalab/lessons"
)

func newSchemaCmd(a *app) *cobra.Command {
	var target string
	cmd := &cobra.Command{
		Use:   "schema <lesson>",
		Short: "Print a lesson's JSON Schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := lessons.Lookup(args[0])
			if err != nil {
				return err
			}
			tg, err := l.Target(target)
			if err != nil {
				return err
			}
			s, err := tg.JSONSchema()
			if err != nil {
				return fmt.Errorf("schema %s/%s: %w", l.ID, tg.Name, err)
			}
			doc, err := js.Document(s, l.ID+"/"+tg.Name)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.out, "%s\n", doc)
			return err
		},
	}
	cmd.Flags().StringVar(&target, "target", "", "lesson target when a lesson has several schemas")
	return cmd
}
