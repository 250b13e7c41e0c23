package report

import (
	"fmt"
	"io"
)

// WriteBatchSummary writes a plain-text summary of a batch of reports to w.
// The layout is presentation-only; callers wanting structured batch data
// should aggregate the reports themselves.
func WriteBatchSummary(w io.Writer, reports []*Report) {
	passed, failed, unparsed := 0, 0, 0
	totals := map[Category]int{}
	for _, r := range reports {
		switch {
		case r.Failed():
			unparsed++
		case r.Success:
			passed++
		default:
			failed++
		}
		for _, c := range Categories {
			totals[c] += len(r.Issues.Get(c))
		}
	}

	fmt.Fprintf(w, "Documents checked: %d\n", len(reports))
	fmt.Fprintf(w, "  passed:         %d\n", passed)
	fmt.Fprintf(w, "  with issues:    %d\n", failed)
	fmt.Fprintf(w, "  parse failures: %d\n", unparsed)
	for _, c := range Categories {
		if totals[c] > 0 {
			fmt.Fprintf(w, "  %-20s %d\n", string(c)+":", totals[c])
		}
	}
}
