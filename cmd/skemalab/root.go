package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/reoring/skemalab/i18n"
	"github.com/reoring/skemalab/internal/config"
	"github.com/reoring/skemalab/internal/logger"
)

// errIssues marks a run that printed validation issues; it maps to exit code 1
// without an extra error line.
var errIssues = errors.New("validation failed")

// app holds global flag values and I/O for one invocation.
type app struct {
	configPath string
	lang       string
	debug      bool
	noColor    bool

	cfg *config.Config

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "skemalab",
		Short:         "Schema validation lessons",
		Long:          "Run, inspect and explain the skemalab schema lessons.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Context())
		},
	}
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default $SKEMALAB_CONFIG or the user config dir)")
	pf.StringVar(&a.lang, "lang", "", "message language: en, ja or zh")
	pf.BoolVar(&a.debug, "debug", false, "enable debug logging")
	pf.BoolVar(&a.noColor, "no-color", false, "disable coloured output")

	root.AddCommand(
		newListCmd(a),
		newCheckCmd(a),
		newSchemaCmd(a),
		newExplainCmd(a),
		newSWAPICmd(a),
		newConfigCmd(a),
	)
	return root
}

// setup loads config and applies language, logging and colour settings.
func (a *app) setup(ctx context.Context) error {
	cfg, err := config.Load(ctx, a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	lang := cfg.Language
	if a.lang != "" {
		lang = a.lang
	}
	i18n.SetLanguage(lang)

	if _, err := logger.Setup(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Debug:  a.debug,
		Output: a.errOut,
	}); err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	logger.L().Debug("config.loaded", "path", cfg.Path(), "lang", lang)

	if a.noColor {
		color.NoColor = true
	}
	return nil
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	a := &app{in: in, out: out, errOut: errOut}
	root := newRootCmd(a)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	i18n.SetLanguage("en")
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errIssues):
		return 1
	default:
		fmt.Fprintf(errOut, "error: %v\n", err)
		return 1
	}
}
