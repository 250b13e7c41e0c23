package validate

import "regexp"

// The checks share a handful of small patterns. They are compiled once and
// named here so the table and figure code paths cannot drift apart.
var (
	// filenamePrefixRE captures the leading journal-volume-issue-page run of
	// a filename, e.g. "JCS-41-4-694". Group 1: the full prefix.
	filenamePrefixRE = regexp.MustCompile(`^([A-Za-z]+-\d+-\d+-\d+)`)

	// tableImageRefRE finds an embedded table reference in a table image id,
	// e.g. "_T2-F1". Group 1: the referenced table number.
	tableImageRefRE = regexp.MustCompile(`_T(\d+)-F`)

	// tableIDNumRE finds the numeric part of a table id, matching the first
	// "T<digits>" run anywhere in the id. Group 1: the digits.
	tableIDNumRE = regexp.MustCompile(`T(\d+)`)

	// trailingFigNumRE matches the trailing "F<digits>" of a table image id,
	// used for sequence checking. Group 1: the digits.
	trailingFigNumRE = regexp.MustCompile(`F(\d+)$`)

	// figureImageRE matches a pattern-prefixed figure image id from the
	// start. Group 1: the naming prefix, group 2: the figure number.
	figureImageRE = regexp.MustCompile(`^([A-Za-z]+-\d+-\d+-\d+)_F(\d+)`)

	// figIDNumRE finds the numeric part of a figure id, matching the first
	// "F<digits>" run anywhere in the id. Group 1: the digits.
	figIDNumRE = regexp.MustCompile(`F(\d+)`)

	// tableImagePrefixRE matches a pattern-prefixed table image id from the
	// start. Group 1: the naming prefix.
	tableImagePrefixRE = regexp.MustCompile(`^([A-Za-z]+-\d+-\d+-\d+)_`)
)
