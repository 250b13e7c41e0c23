package validate

import (
	"sort"
	"strconv"

	"github.com/taimoormohiuddin/jatsverify/pkg/jats"
	"github.com/taimoormohiuddin/jatsverify/pkg/report"
)

// figures records every fig element and runs the per-figure checks.
// Figures without an image reference are counted and id-tracked but get no
// detail entry.
func (v *run) figures() {
	v.rpt.FiguresFound = len(v.doc.Figures)

	for _, f := range v.doc.Figures {
		if f.ID != jats.UnknownID {
			v.rpt.AllFigIDs = append(v.rpt.AllFigIDs, f.ID)
		}
		if f.Image == "" {
			continue
		}

		if _, seen := v.rpt.FigureDetails[f.ID]; !seen {
			v.figOrder = append(v.figOrder, f.ID)
		}
		v.rpt.FigureDetails[f.ID] = report.ElementDetail{
			ImageCount: 1,
			Images:     []string{f.Image},
			Type:       "figure",
		}
		v.rpt.TotalFigureImages++
		v.rpt.AllFigureImageIDs = append(v.rpt.AllFigureImageIDs, f.Image)

		v.checkFigureImage(f)
	}
}

// checkFigureImage runs the naming and reference checks for one figure
// image. Both only apply to images whose name starts with a structured
// pattern prefix; other names are skipped entirely.
func (v *run) checkFigureImage(f jats.Figure) {
	m := figureImageRE.FindStringSubmatch(f.Image)
	if m == nil {
		return
	}
	imgPattern, imgNum := m[1], m[2]

	if imgPattern != v.rpt.ExpectedPattern {
		v.rpt.Issues.Add(report.Naming, report.Issue{
			ElementType:     "figure",
			ElementID:       f.ID,
			ImageID:         f.Image,
			ActualPattern:   imgPattern,
			ExpectedPattern: v.rpt.ExpectedPattern,
		})
	}

	// The figure number in the image name must equal the numeric part of
	// the figure's own id. Compared as strings: "01" and "1" differ.
	own := figIDNumRE.FindStringSubmatch(f.ID)
	if own != nil && own[1] != imgNum {
		v.rpt.Issues.Add(report.FigureRefs, report.Issue{
			ElementType:   "figure",
			ElementID:     f.ID,
			ImageID:       f.Image,
			ReferencedFig: "F" + imgNum,
			ActualFig:     "F" + own[1],
		})
	}
}

// figureDuplicates flags image ids used by more than one figure (or twice
// by the same figure id), one entry per distinct id, listing the figures
// whose detail entry contains the image.
func (v *run) figureDuplicates() {
	counts, order := countInOrder(v.rpt.AllFigureImageIDs)
	for _, img := range order {
		if counts[img] <= 1 {
			continue
		}
		var figs []string
		for _, id := range v.figOrder {
			if containsString(v.rpt.FigureDetails[id].Images, img) {
				figs = append(figs, id)
			}
		}
		v.rpt.Issues.Add(report.FigureDuplicates, report.Issue{
			ElementType: "figure",
			ImageID:     img,
			Count:       counts[img],
			Figures:     figs,
		})
	}
}

// figIDDuplicates flags figure ids used by more than one fig element.
func (v *run) figIDDuplicates() {
	counts, order := countInOrder(v.rpt.AllFigIDs)
	for _, id := range order {
		if counts[id] > 1 {
			v.rpt.Issues.Add(report.FigIDDuplicates, report.Issue{
				ID:    id,
				Count: counts[id],
			})
		}
	}
}

// figureSequence verifies that the numeric parts of all figure ids form a
// contiguous run from their minimum to their maximum.
func (v *run) figureSequence() {
	var nums []int
	for _, id := range v.rpt.AllFigIDs {
		if m := figIDNumRE.FindStringSubmatch(id); m != nil {
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
		v.rpt.Issues.Add(report.FigureSequence, report.Issue{
			ElementType:    "figures",
			MissingNumbers: missing,
			ActualNumbers:  nums,
		})
	}
}
