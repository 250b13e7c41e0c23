// jatsbatch validates every XML document under the given paths and prints a
// plain-text batch summary.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/taimoormohiuddin/jatsverify/pkg/report"
	"github.com/taimoormohiuddin/jatsverify/pkg/validate"
)

func main() {
	var paths []string
	quiet := false
	for _, arg := range os.Args[1:] {
		if arg == "--quiet" {
			quiet = true
			continue
		}
		paths = append(paths, arg)
	}
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: jatsbatch [--quiet] <file-or-dir> ...")
		os.Exit(2)
	}

	files, err := collectXML(paths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: %v\n", err)
		os.Exit(2)
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "No XML documents found.")
		os.Exit(2)
	}

	pass := color.New(color.FgGreen)
	fail := color.New(color.FgRed)

	var reports []*report.Report
	anyFailed := false
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Fatal: %v\n", err)
			os.Exit(2)
		}
		r := validate.Validate(content, filepath.Base(file))
		reports = append(reports, r)

		if !quiet {
			switch {
			case r.Failed():
				fail.Fprint(os.Stdout, "UNPARSED ")
				fmt.Printf("%s: %s\n", file, r.Message)
			case r.Success:
				pass.Fprint(os.Stdout, "PASS     ")
				fmt.Println(file)
			default:
				fail.Fprint(os.Stdout, "FAIL     ")
				fmt.Printf("%s: %d issues\n", file, r.Issues.Total())
			}
		}
		if !r.Success {
			anyFailed = true
		}
	}

	fmt.Println()
	report.WriteBatchSummary(os.Stdout, reports)

	if anyFailed {
		os.Exit(1)
	}
}

// collectXML expands files and directories into the list of .xml documents
// to validate, in lexical order within each directory.
func collectXML(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".xml") {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}
