package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/skemalab/internal/logger"
	"github.com/reoring/skemalab/lessons/array"
	"github.com/reoring/skemalab/lessons/object"
	"github.com/reoring/skemalab/lessons/transform"
	"github.com/reoring/skemalab/swapi"
)

func newSWAPICmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swapi",
		Short: "Run the network lessons against SWAPI",
	}
	cmd.AddCommand(newSWAPIPersonCmd(a), newSWAPIPeopleCmd(a))
	return cmd
}

func (a *app) swapiClient() *swapi.Client {
	return swapi.New(a.cfg.SWAPIConfig(), swapi.WithLogger(logger.L()))
}

func newSWAPIPersonCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "person <id>",
		Short: "Fetch one person's name (lesson 02)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := object.FetchStarWarsPersonName(cmd.Context(), a.swapiClient(), args[0])
			if err != nil {
				return reportErr(a.out, err)
			}
			_, err = fmt.Fprintln(a.out, name)
			return err
		},
	}
}

func newSWAPIPeopleCmd(a *app) *cobra.Command {
	var withTransform bool
	cmd := &cobra.Command{
		Use:   "people",
		Short: "Fetch the first page of people (lesson 03, or 10 with --transform)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				res any
				err error
			)
			if withTransform {
				res, err = transform.FetchStarWarsPeople(cmd.Context(), a.swapiClient())
			} else {
				res, err = array.FetchStarWarsPeople(cmd.Context(), a.swapiClient())
			}
			if err != nil {
				return reportErr(a.out, err)
			}
			return printJSON(a.out, res)
		},
	}
	cmd.Flags().BoolVar(&withTransform, "transform", false, "add nameAsArray to each person")
	return cmd
}
