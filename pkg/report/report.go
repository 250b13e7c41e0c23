package report

// Category names one of the fixed issue lists in a validation report.
type Category string

const (
	TableDuplicates   Category = "table_duplicates"
	FigureDuplicates  Category = "figure_duplicates"
	TableRefs         Category = "table_refs"
	FigureRefs        Category = "figure_refs"
	Naming            Category = "naming"
	TableSequence     Category = "table_sequence"
	FigureSequence    Category = "figure_sequence"
	FigIDDuplicates   Category = "fig_id_duplicates"
	TableIDDuplicates Category = "table_id_duplicates"
)

// Categories lists every category in rendering order.
var Categories = []Category{
	TableDuplicates,
	FigureDuplicates,
	TableRefs,
	FigureRefs,
	Naming,
	TableSequence,
	FigureSequence,
	FigIDDuplicates,
	TableIDDuplicates,
}

// ParseCategory maps a category name to its Category value.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Issue is a single validation finding. Which fields are populated depends on
// the category the issue belongs to; unset fields are omitted from JSON.
type Issue struct {
	ElementType     string   `json:"element_type,omitempty"`
	ElementID       string   `json:"element_id,omitempty"`
	ID              string   `json:"id,omitempty"`
	ImageID         string   `json:"image_id,omitempty"`
	Count           int      `json:"count,omitempty"`
	ReferencedTable string   `json:"referenced_table,omitempty"`
	ReferencedFig   string   `json:"referenced_fig,omitempty"`
	ActualFig       string   `json:"actual_fig,omitempty"`
	ActualPattern   string   `json:"actual_pattern,omitempty"`
	ExpectedPattern string   `json:"expected_pattern,omitempty"`
	MissingNumbers  []int    `json:"missing_numbers,omitempty"`
	ActualNumbers   []int    `json:"actual_numbers,omitempty"`
	Figures         []string `json:"figures,omitempty"`
}

// Issues holds the nine fixed issue categories. Every list is present in JSON
// even when empty, so consumers see a stable shape.
type Issues struct {
	TableDuplicates   []Issue `json:"table_duplicates"`
	FigureDuplicates  []Issue `json:"figure_duplicates"`
	TableRefs         []Issue `json:"table_refs"`
	FigureRefs        []Issue `json:"figure_refs"`
	Naming            []Issue `json:"naming"`
	TableSequence     []Issue `json:"table_sequence"`
	FigureSequence    []Issue `json:"figure_sequence"`
	FigIDDuplicates   []Issue `json:"fig_id_duplicates"`
	TableIDDuplicates []Issue `json:"table_id_duplicates"`
}

func (i *Issues) slot(c Category) *[]Issue {
	switch c {
	case TableDuplicates:
		return &i.TableDuplicates
	case FigureDuplicates:
		return &i.FigureDuplicates
	case TableRefs:
		return &i.TableRefs
	case FigureRefs:
		return &i.FigureRefs
	case Naming:
		return &i.Naming
	case TableSequence:
		return &i.TableSequence
	case FigureSequence:
		return &i.FigureSequence
	case FigIDDuplicates:
		return &i.FigIDDuplicates
	case TableIDDuplicates:
		return &i.TableIDDuplicates
	}
	return nil
}

// Add appends an issue to the named category.
func (i *Issues) Add(c Category, issue Issue) {
	if s := i.slot(c); s != nil {
		*s = append(*s, issue)
	}
}

// Get returns the issues recorded under the named category.
func (i *Issues) Get(c Category) []Issue {
	if s := i.slot(c); s != nil {
		return *s
	}
	return nil
}

// Empty reports whether every category is empty.
func (i *Issues) Empty() bool {
	for _, c := range Categories {
		if len(i.Get(c)) > 0 {
			return false
		}
	}
	return true
}

// Total returns the number of issues across all categories.
func (i *Issues) Total() int {
	n := 0
	for _, c := range Categories {
		n += len(i.Get(c))
	}
	return n
}

// ElementDetail describes the images extracted from one table or figure.
type ElementDetail struct {
	ImageCount int      `json:"image_count"`
	Images     []string `json:"images"`
	Type       string   `json:"type"`
}

// Report is the full result of validating one JATS document.
//
// On a parse or traversal failure the report degrades to Success=false plus
// Message; no other field is populated and the JSON output carries only those
// two fields.
type Report struct {
	Filename        string `json:"filename"`
	ExpectedPattern string `json:"expected_pattern"`

	TablesFound  int `json:"tables_found"`
	FiguresFound int `json:"figures_found"`

	TotalTableImages  int `json:"total_table_images"`
	TotalFigureImages int `json:"total_figure_images"`

	TableDetails  map[string]ElementDetail `json:"table_details"`
	FigureDetails map[string]ElementDetail `json:"figure_details"`

	// Flat document-order sequences. Image id lists preserve duplicates;
	// element id lists exclude elements whose id attribute was absent.
	AllTableImageIDs  []string `json:"all_table_image_ids"`
	AllFigureImageIDs []string `json:"all_figure_image_ids"`
	AllFigIDs         []string `json:"all_fig_ids"`
	AllTableIDs       []string `json:"all_table_ids"`

	Issues  Issues `json:"issues"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// New creates an empty report for the given document.
func New(filename, expectedPattern string) *Report {
	return &Report{
		Filename:          filename,
		ExpectedPattern:   expectedPattern,
		TableDetails:      map[string]ElementDetail{},
		FigureDetails:     map[string]ElementDetail{},
		AllTableImageIDs:  []string{},
		AllFigureImageIDs: []string{},
		AllFigIDs:         []string{},
		AllTableIDs:       []string{},
		Issues: Issues{
			TableDuplicates:   []Issue{},
			FigureDuplicates:  []Issue{},
			TableRefs:         []Issue{},
			FigureRefs:        []Issue{},
			Naming:            []Issue{},
			TableSequence:     []Issue{},
			FigureSequence:    []Issue{},
			FigIDDuplicates:   []Issue{},
			TableIDDuplicates: []Issue{},
		},
	}
}

// Degraded creates the message-only report shape used when the document
// could not be processed.
func Degraded(message string) *Report {
	return &Report{Success: false, Message: message}
}

// Failed reports whether the document could not be processed at all.
func (r *Report) Failed() bool {
	return r.Message != ""
}

// FilteredIssues returns a copy of the issue lists containing only the given
// categories. The report itself is unchanged; every check always runs, this
// only narrows what a caller chooses to display.
func (r *Report) FilteredIssues(cats []Category) Issues {
	keep := make(map[Category]bool, len(cats))
	for _, c := range cats {
		keep[c] = true
	}
	out := Issues{
		TableDuplicates:   []Issue{},
		FigureDuplicates:  []Issue{},
		TableRefs:         []Issue{},
		FigureRefs:        []Issue{},
		Naming:            []Issue{},
		TableSequence:     []Issue{},
		FigureSequence:    []Issue{},
		FigIDDuplicates:   []Issue{},
		TableIDDuplicates: []Issue{},
	}
	for _, c := range Categories {
		if keep[c] {
			*out.slot(c) = append(*out.slot(c), r.Issues.Get(c)...)
		}
	}
	return out
}
