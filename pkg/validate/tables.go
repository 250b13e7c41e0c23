package validate

import (
	"sort"
	"strconv"

	"github.com/taimoormohiuddin/jatsverify/pkg/jats"
	"github.com/taimoormohiuddin/jatsverify/pkg/report"
)

// tables records every table wrapper and runs the per-table checks.
// Wrappers without a nested table element are counted and id-tracked but
// contribute no images and no issues.
func (v *run) tables() {
	v.rpt.TablesFound = len(v.doc.Tables)

	for _, t := range v.doc.Tables {
		if t.ID != jats.UnknownID {
			v.rpt.AllTableIDs = append(v.rpt.AllTableIDs, t.ID)
		}
		if !t.HasTable {
			continue
		}

		if _, seen := v.rpt.TableDetails[t.ID]; !seen {
			v.tableOrder = append(v.tableOrder, t.ID)
		}
		images := t.Images
		if images == nil {
			images = []string{}
		}
		v.rpt.TableDetails[t.ID] = report.ElementDetail{
			ImageCount: len(images),
			Images:     images,
			Type:       "table",
		}
		v.rpt.TotalTableImages += len(t.Images)
		v.rpt.AllTableImageIDs = append(v.rpt.AllTableImageIDs, t.Images...)

		v.checkTableDuplicates(t)
		v.checkTableRefs(t)
		v.checkTableSequence(t)
	}
}

// checkTableDuplicates flags image ids repeated within a single table, one
// entry per distinct id with the total occurrence count.
func (v *run) checkTableDuplicates(t jats.Table) {
	counts, order := countInOrder(t.Images)
	for _, img := range order {
		if counts[img] > 1 {
			v.rpt.Issues.Add(report.TableDuplicates, report.Issue{
				ElementType: "table",
				ElementID:   t.ID,
				ImageID:     img,
				Count:       counts[img],
			})
		}
	}
}

// checkTableRefs flags table images whose embedded "_T<n>-F" reference
// points at a different table than the one containing them.
func (v *run) checkTableRefs(t jats.Table) {
	for _, img := range t.Images {
		ref := tableImageRefRE.FindStringSubmatch(img)
		if ref == nil {
			continue
		}
		own := tableIDNumRE.FindStringSubmatch(t.ID)
		if own == nil {
			continue
		}
		if ref[1] != own[1] {
			v.rpt.Issues.Add(report.TableRefs, report.Issue{
				ElementType:     "table",
				ElementID:       t.ID,
				ImageID:         img,
				ReferencedTable: "T" + ref[1],
			})
		}
	}
}

// checkTableSequence verifies that the trailing F-numbers of a table's
// images form a contiguous run from their minimum to their maximum.
func (v *run) checkTableSequence(t jats.Table) {
	var nums []int
	for _, img := range t.Images {
		if m := trailingFigNumRE.FindStringSubmatch(img); m != nil {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			nums = append(nums, n)
		}
	}
	if len(nums) == 0 {
		return
	}
	sort.Ints(nums)
	if missing, broken := sequenceGaps(nums); broken {
		v.rpt.Issues.Add(report.TableSequence, report.Issue{
			ElementType:    "table",
			ElementID:      t.ID,
			MissingNumbers: missing,
			ActualNumbers:  nums,
		})
	}
}

// tableNaming checks every pattern-prefixed table image id against the
// expected pattern. The owning table is the first one whose image list
// contains the id, or "unknown" when none does. Duplicated image ids are
// checked once per occurrence, matching the flat sequence.
func (v *run) tableNaming() {
	for _, img := range v.rpt.AllTableImageIDs {
		m := tableImagePrefixRE.FindStringSubmatch(img)
		if m == nil || m[1] == v.rpt.ExpectedPattern {
			continue
		}
		owner := jats.UnknownID
		for _, id := range v.tableOrder {
			if containsString(v.rpt.TableDetails[id].Images, img) {
				owner = id
				break
			}
		}
		v.rpt.Issues.Add(report.Naming, report.Issue{
			ElementType:     "table",
			ElementID:       owner,
			ImageID:         img,
			ActualPattern:   m[1],
			ExpectedPattern: v.rpt.ExpectedPattern,
		})
	}
}

// tableIDDuplicates flags table ids used by more than one wrapper.
func (v *run) tableIDDuplicates() {
	counts, order := countInOrder(v.rpt.AllTableIDs)
	for _, id := range order {
		if counts[id] > 1 {
			v.rpt.Issues.Add(report.TableIDDuplicates, report.Issue{
				ID:    id,
				Count: counts[id],
			})
		}
	}
}

// countInOrder counts occurrences and returns distinct values in
// first-occurrence order.
func countInOrder(values []string) (map[string]int, []string) {
	counts := make(map[string]int, len(values))
	var order []string
	for _, val := range values {
		counts[val]++
		if counts[val] == 1 {
			order = append(order, val)
		}
	}
	return counts, order
}

// sequenceGaps reports whether the sorted numbers fail to form a contiguous
// run from min to max, and which numbers in that span are absent. Duplicate
// numbers break the run even when no number is missing.
func sequenceGaps(sorted []int) (missing []int, broken bool) {
	lo, hi := sorted[0], sorted[len(sorted)-1]
	have := make(map[int]bool, len(sorted))
	for _, n := range sorted {
		have[n] = true
	}
	for n := lo; n <= hi; n++ {
		if !have[n] {
			missing = append(missing, n)
		}
	}
	return missing, len(missing) > 0 || len(sorted) != hi-lo+1
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
