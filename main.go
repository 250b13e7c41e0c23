package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/taimoormohiuddin/jatsverify/pkg/report"
	"github.com/taimoormohiuddin/jatsverify/pkg/validate"
)

const version = "0.1.0"

func main() {
	args := os.Args[1:]

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: jatsverify <file.xml> [--json <output.json | ->] [--version]")
		os.Exit(2)
	}

	for _, arg := range args {
		if arg == "--version" {
			fmt.Printf("jatsverify %s\n", version)
			os.Exit(0)
		}
	}

	xmlPath := args[0]
	var jsonOutput string

	for i := 1; i < len(args); i++ {
		if args[i] == "--json" && i+1 < len(args) {
			jsonOutput = args[i+1]
			i++
		}
	}

	content, err := os.ReadFile(xmlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: %v\n", err)
		os.Exit(2)
	}

	r := validate.Validate(content, filepath.Base(xmlPath))

	// Text output to stderr, JSON to stdout for tool interop.
	r.WriteText(os.Stderr)

	if jsonOutput == "" || jsonOutput == "-" {
		if err := r.WriteJSON(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing JSON: %v\n", err)
			os.Exit(2)
		}
	} else {
		if err := r.WriteJSON(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing JSON: %v\n", err)
			os.Exit(2)
		}
		if err := writeJSONFile(r, jsonOutput); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing JSON: %v\n", err)
			os.Exit(2)
		}
	}

	// Exit codes: 0=consistent, 1=issues found, 2=could not process
	if r.Failed() {
		os.Exit(2)
	}
	if !r.Success {
		os.Exit(1)
	}
	os.Exit(0)
}

func writeJSONFile(r *report.Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return r.WriteJSON(f)
}
