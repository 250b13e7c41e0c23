// Package validate checks the structural and naming consistency of table and
// figure elements in a JATS article against the naming pattern derived from
// the document's filename.
package validate

import (
	"errors"
	"fmt"

	"github.com/taimoormohiuddin/jatsverify/pkg/jats"
	"github.com/taimoormohiuddin/jatsverify/pkg/report"
)

// Options configures validation behavior.
type Options struct {
	// Limits bounds XML parsing of untrusted input. Zero value = defaults.
	Limits jats.Limits
}

// Validate parses the XML content and runs every consistency check,
// returning a fully populated report. The filename is used only to derive
// the expected naming pattern; no file-system access occurs here.
//
// A report is always returned. Documents that cannot be parsed yield the
// degraded message-only shape with Success=false.
func Validate(content []byte, filename string) *report.Report {
	return ValidateWithOptions(content, filename, Options{})
}

// ValidateWithOptions is Validate with explicit options.
func ValidateWithOptions(content []byte, filename string, opts Options) (rpt *report.Report) {
	// A malformed document must never take down a batch; anything the
	// walker panics on degrades to the generic error shape.
	defer func() {
		if rec := recover(); rec != nil {
			ge := &GenericError{Err: fmt.Errorf("%v", rec)}
			rpt = report.Degraded(ge.Error())
		}
	}()

	doc, err := jats.ParseWithLimits(content, opts.Limits)
	if err != nil {
		var syntax *jats.SyntaxError
		if errors.As(err, &syntax) {
			pe := &ParseError{Err: syntax.Err}
			return report.Degraded(pe.Error())
		}
		ge := &GenericError{Err: err}
		return report.Degraded(ge.Error())
	}

	rpt = report.New(filename, ExpectedPattern(filename))
	v := &run{doc: doc, rpt: rpt}

	v.tables()
	v.figures()
	v.figureDuplicates()
	v.tableNaming()
	v.figIDDuplicates()
	v.tableIDDuplicates()
	v.figureSequence()

	rpt.Success = rpt.Issues.Empty()
	return rpt
}

// run carries the state of one validation pass. tableOrder and figOrder
// record detail-map keys in first-occurrence order so that lookups and
// duplicate reporting stay deterministic across runs.
type run struct {
	doc *jats.Document
	rpt *report.Report

	tableOrder []string
	figOrder   []string
}
