package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/reoring/skemalab/lessons"
)

func newExplainCmd(a *app) *cobra.Command {
	var (
		raw   bool
		width int
	)
	cmd := &cobra.Command{
		Use:   "explain <lesson>",
		Short: "Show a lesson's notes",
		Long: `Show a lesson's notes. Terminal output is rendered as markdown and
wrapped to the terminal width; pipes get the raw markdown unless --width is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := lessons.Lookup(args[0])
			if err != nil {
				return err
			}
			notes, err := l.Notes()
			if err != nil {
				return err
			}

			style := "notty"
			if f, ok := a.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
				style = "dark"
				if width == 0 {
					if w, _, err := term.GetSize(int(f.Fd())); err == nil {
						width = w
					}
				}
			} else if width == 0 {
				raw = true
			}
			if raw {
				_, err = fmt.Fprint(a.out, notes)
				return err
			}

			r, err := glamour.NewTermRenderer(glamour.WithStandardStyle(style), glamour.WithWordWrap(width))
			if err != nil {
				return fmt.Errorf("markdown renderer: %w", err)
			}
			rendered, err := r.Render(notes)
			if err != nil {
				return fmt.Errorf("render notes: %w", err)
			}
			_, err = fmt.Fprint(a.out, rendered)
			return err
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the markdown source")
	cmd.Flags().IntVar(&width, "width", 0, "wrap width (default terminal width)")
	return cmd
}
