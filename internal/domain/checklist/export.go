package checklist

// Scope selects which sections an export covers.
type Scope string

const (
	ScopeActive Scope = "active"
	ScopeAll    Scope = "all"
)

// Valid reports whether s is a known export scope.
func (s Scope) Valid() bool {
	return s == ScopeActive || s == ScopeAll
}

// Export is the read-only view handed to report generators.
type Export struct {
	ProjectName string          `json:"projectName" yaml:"projectName"`
	FileName    string          `json:"fileName" yaml:"fileName"`
	Sections    []ExportSection `json:"sections" yaml:"sections"`
}

// ExportSection is one section of an export with its progress percentage.
type ExportSection struct {
	SectionTitle    string           `json:"sectionTitle" yaml:"sectionTitle"`
	ProgressPercent int              `json:"progressPercent" yaml:"progressPercent"`
	Categories      []ExportCategory `json:"categories" yaml:"categories"`
}

// ExportCategory lists the items of one category.
type ExportCategory struct {
	CategoryTitle string       `json:"categoryTitle" yaml:"categoryTitle"`
	Items         []ExportItem `json:"items" yaml:"items"`
}

// ExportItem carries an item label and its display status (OK, N/A or Pending).
type ExportItem struct {
	Label  string `json:"label" yaml:"label"`
	Status string `json:"status" yaml:"status"`
}

// BuildExport flattens the project into an export. ScopeActive covers only
// the active section; any other scope covers every section in order.
func BuildExport(p Project, scope Scope) Export {
	var sections []Section
	if scope == ScopeActive {
		if s, ok := p.ActiveSection(); ok {
			sections = []Section{s}
		}
	} else {
		sections = p.Sections
	}

	out := Export{
		ProjectName: p.ProjectName,
		FileName:    ExportFileName(p.ProjectName),
		Sections:    make([]ExportSection, 0, len(sections)),
	}
	for _, s := range sections {
		es := ExportSection{
			SectionTitle:    s.Title,
			ProgressPercent: s.Progress(),
			Categories:      make([]ExportCategory, 0, len(s.Categories)),
		}
		for _, c := range s.Categories {
			ec := ExportCategory{
				CategoryTitle: c.Title,
				Items:         make([]ExportItem, 0, len(c.Items)),
			}
			for _, it := range c.Items {
				ec.Items = append(ec.Items, ExportItem{Label: it.Label, Status: it.Status.Label()})
			}
			es.Categories = append(es.Categories, ec)
		}
		out.Sections = append(out.Sections, es)
	}
	return out
}

// ExportFileName derives a report file name from the project name.
func ExportFileName(projectName string) string {
	return whitespaceRun.ReplaceAllString(projectName, "_") + ".pdf"
}
