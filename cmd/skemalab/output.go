package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/goccy/go-json"

	"github.com/reoring/skemalab"
)

var (
	pathColor = color.New(color.FgCyan).SprintFunc()
	codeColor = color.New(color.Faint).SprintFunc()
	failColor = color.New(color.FgRed, color.Bold).SprintFunc()
	okColor   = color.New(color.FgGreen, color.Bold).SprintFunc()
	warnColor = color.New(color.FgYellow, color.Bold).SprintFunc()
)

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

// printIssues writes one line per issue: path, message and code.
func printIssues(w io.Writer, iss skemalab.Issues) {
	fmt.Fprintf(w, "%s %d issue(s)\n", failColor("✗"), len(iss))
	for _, it := range iss {
		path := it.Path
		if path == "" {
			path = "/"
		}
		fmt.Fprintf(w, "  %s: %s %s\n", pathColor(path), it.Message, codeColor("["+it.Code+"]"))
		if it.Hint != "" {
			fmt.Fprintf(w, "    hint: %s\n", it.Hint)
		}
	}
}

// reportErr prints Issues and converts them to errIssues; other errors pass through.
func reportErr(w io.Writer, err error) error {
	if iss, ok := skemalab.AsIssues(err); ok {
		printIssues(w, iss)
		return errIssues
	}
	return err
}
