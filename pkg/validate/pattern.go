package validate

import (
	"path"
	"strings"
)

// ExpectedPattern derives the naming prefix every embedded image filename in
// the document is expected to carry, from the document's own filename. The
// extension is stripped, then a leading "<letters>-<digits>-<digits>-<digits>"
// run is extracted. Filenames without such a prefix fall back to the
// extension-stripped name unchanged; naming checks against differently named
// images will then fail deterministically, which is the intended behavior,
// not an error condition.
func ExpectedPattern(filename string) string {
	base := strings.TrimSuffix(filename, path.Ext(filename))
	if m := filenamePrefixRE.FindStringSubmatch(base); m != nil {
		return m[1]
	}
	return base
}
