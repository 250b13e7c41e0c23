// generate-test-docs.go creates JATS test documents of various sizes for
// benchmarking and ad-hoc batch runs.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	dir := "benchmarks/corpus"
	os.MkdirAll(dir, 0755)

	sizes := []struct {
		name    string
		tables  int
		figures int
	}{
		{"tiny-1t2f", 1, 2},
		{"small-5t10f", 5, 10},
		{"medium-20t40f", 20, 40},
		{"large-100t200f", 100, 200},
	}

	for _, s := range sizes {
		path := filepath.Join(dir, fmt.Sprintf("JCS-41-4-694-%s.xml", s.name))
		if err := os.WriteFile(path, []byte(generateArticle("JCS-41-4-694", s.tables, s.figures)), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating %s: %v\n", path, err)
			os.Exit(1)
		}
		fi, _ := os.Stat(path)
		fmt.Printf("Generated %s (%d KB)\n", path, fi.Size()/1024)
	}
}

// generateArticle builds a conforming article: every image carries the
// pattern prefix and numbering is contiguous, so a validation run over the
// corpus should produce all-pass reports.
func generateArticle(pattern string, tables, figures int) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<article xmlns:xlink="http://www.w3.org/1999/xlink">` + "\n<body>\n")

	for t := 1; t <= tables; t++ {
		fmt.Fprintf(&b, `<table-wrap id="T%d"><label>Table %d</label><table><tbody>`+"\n", t, t)
		for f := 1; f <= 3; f++ {
			fmt.Fprintf(&b, `<tr><td><graphic xlink:href="%s_T%d-F%d.tif"/></td></tr>`+"\n", pattern, t, f)
		}
		b.WriteString("</tbody></table></table-wrap>\n")
	}
	for f := 1; f <= figures; f++ {
		fmt.Fprintf(&b, `<fig id="F%d"><caption><p>Figure %d</p></caption><graphic xlink:href="%s_F%d.tif"/></fig>`+"\n", f, f, pattern, f)
	}

	b.WriteString("</body>\n</article>\n")
	return b.String()
}
