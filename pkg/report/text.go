package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	passColor = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
	catColor  = color.New(color.FgYellow)
)

// WriteText writes a human-readable rendering of the report to w. Color is
// applied when w is a terminal and suppressed otherwise (fatih/color handles
// the detection).
func (r *Report) WriteText(w io.Writer) {
	if r.Failed() {
		failColor.Fprint(w, "FAIL ")
		fmt.Fprintln(w, r.Message)
		return
	}

	fmt.Fprintf(w, "%s: expected pattern %q\n", r.Filename, r.ExpectedPattern)
	fmt.Fprintf(w, "tables: %d (%d images), figures: %d (%d images)\n",
		r.TablesFound, r.TotalTableImages, r.FiguresFound, r.TotalFigureImages)

	for _, c := range Categories {
		for _, issue := range r.Issues.Get(c) {
			catColor.Fprintf(w, "%s", string(c))
			fmt.Fprintf(w, ": %s\n", describe(c, issue))
		}
	}

	if r.Success {
		passColor.Fprint(w, "PASS ")
		fmt.Fprintln(w, "No consistency issues detected.")
	} else {
		failColor.Fprint(w, "FAIL ")
		fmt.Fprintf(w, "Check finished. Issues: %d\n", r.Issues.Total())
	}
}

// describe renders one issue as a sentence fragment for text output.
func describe(c Category, i Issue) string {
	switch c {
	case TableDuplicates:
		return fmt.Sprintf("[%s] image %q appears %d times", i.ElementID, i.ImageID, i.Count)
	case FigureDuplicates:
		return fmt.Sprintf("image %q appears %d times across figures %s",
			i.ImageID, i.Count, strings.Join(i.Figures, ", "))
	case TableRefs:
		return fmt.Sprintf("[%s] image %q refers to table %s", i.ElementID, i.ImageID, i.ReferencedTable)
	case FigureRefs:
		return fmt.Sprintf("[%s] image %q refers to %s but the figure is %s",
			i.ElementID, i.ImageID, i.ReferencedFig, i.ActualFig)
	case Naming:
		return fmt.Sprintf("[%s] image %q uses pattern %q, expected %q",
			i.ElementID, i.ImageID, i.ActualPattern, i.ExpectedPattern)
	case TableSequence:
		return fmt.Sprintf("[%s] missing numbers %v (have %v)", i.ElementID, i.MissingNumbers, i.ActualNumbers)
	case FigureSequence:
		return fmt.Sprintf("missing figure numbers %v (have %v)", i.MissingNumbers, i.ActualNumbers)
	case FigIDDuplicates:
		return fmt.Sprintf("figure id %q occurs %d times", i.ID, i.Count)
	case TableIDDuplicates:
		return fmt.Sprintf("table id %q occurs %d times", i.ID, i.Count)
	}
	return ""
}
