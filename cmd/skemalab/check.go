package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reoring/skemalab"
	"github.com/reoring/skemalab/lessons"
)

func newCheckCmd(a *app) *cobra.Command {
	var (
		format   string
		target   string
		failFast bool
		dupKeys  string
		driver   string
		maxBytes int64
	)
	cmd := &cobra.Command{
		Use:   "check <lesson> [file|-]",
		Short: "Validate a JSON or YAML document with a lesson",
		Long: `Validate a document with a lesson's function and print the result.

  skemalab check 08 form.json
  echo '{"name":"Matt"}' | skemalab check optional
  skemalab check composing post.yaml --target post

Network lessons validate a saved SWAPI response body.
--max-bytes caps the document size and does not read swapi.max_bytes.
With --duplicate-keys warn, repeated keys are reported on stderr.
Exit status is 1 when the document has issues.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := lessons.Lookup(args[0])
			if err != nil {
				return err
			}
			tg, err := l.Target(target)
			if err != nil {
				return err
			}
			name := "-"
			if len(args) == 2 {
				name = args[1]
			}
			data, err := readInput(a.in, name)
			if err != nil {
				return err
			}

			sev, err := parseSeverity(dupKeys)
			if err != nil {
				return err
			}
			drv, err := jsonDriver(driver)
			if err != nil {
				return err
			}
			opt := skemalab.ParseOpt{
				Strictness: skemalab.Strictness{OnDuplicateKey: sev},
				MaxDepth:   64,
				MaxBytes:   maxBytes,
				FailFast:   failFast,
				OnWarning: func(it skemalab.Issue) {
					fmt.Fprintf(a.errOut, "%s %s: %s %s\n", warnColor("!"), pathColor(it.Path), it.Message, codeColor("["+it.Code+"]"))
				},
			}
			v, err := skemalab.DecodeAny(sourceFor(drv, format, name, data), opt)
			if err != nil {
				return reportErr(a.out, err)
			}

			ctx := skemalab.WithFailFast(cmd.Context(), failFast)
			res, err := tg.Check(ctx, v)
			if err != nil {
				return reportErr(a.out, err)
			}
			fmt.Fprintf(a.errOut, "%s %s/%s\n", okColor("✓"), l.ID, tg.Name)
			return printJSON(a.out, res)
		},
	}
	f := cmd.Flags()
	f.StringVar(&format, "format", "", "input format: json or yaml (default from file extension, else json)")
	f.StringVar(&target, "target", "", "lesson target when a lesson has several schemas")
	f.BoolVar(&failFast, "fail-fast", false, "stop at the first issue")
	f.StringVar(&dupKeys, "duplicate-keys", "error", "duplicate object keys: ignore, warn or error")
	f.StringVar(&driver, "json-driver", "go-json", "JSON decoder: go-json or std")
	f.Int64Var(&maxBytes, "max-bytes", defaultCheckMaxBytes, "reject documents larger than this many bytes (0 disables)")
	return cmd
}

const defaultCheckMaxBytes = 16 << 20

func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

func sourceFor(drv skemalab.JSONDriver, format, name string, data []byte) skemalab.Source {
	if format == "" {
		switch strings.ToLower(filepath.Ext(name)) {
		case ".yaml", ".yml":
			format = "yaml"
		}
	}
	if strings.EqualFold(format, "yaml") {
		return skemalab.YAMLBytes(data)
	}
	return drv.NewBytes(data)
}

func jsonDriver(name string) (skemalab.JSONDriver, error) {
	switch strings.ToLower(name) {
	case "", "go-json":
		return skemalab.CurrentJSONDriver(), nil
	case "std", "encoding/json":
		return skemalab.StdJSONDriver(), nil
	}
	return nil, fmt.Errorf("invalid --json-driver %q (valid: go-json, std)", name)
}

func parseSeverity(s string) (skemalab.Severity, error) {
	switch strings.ToLower(s) {
	case "ignore":
		return skemalab.Ignore, nil
	case "warn":
		return skemalab.Warn, nil
	case "", "error":
		return skemalab.Error, nil
	}
	return skemalab.Ignore, fmt.Errorf("invalid --duplicate-keys %q (valid: ignore, warn, error)", s)
}
