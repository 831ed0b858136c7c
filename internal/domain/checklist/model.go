package checklist

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Status represents the verification state of a checklist item
type Status string

const (
	StatusPending Status = "PENDING"
	StatusOK      Status = "OK"
	StatusNA      Status = "NA"
)

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusOK, StatusNA:
		return true
	}
	return false
}

// Label returns the display label used in exports.
func (s Status) Label() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusNA:
		return "N/A"
	default:
		return "Pending"
	}
}

// UnmarshalJSON rejects anything outside the three known statuses.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	st := Status(raw)
	if !st.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	*s = st
	return nil
}

// Item is a single verifiable checklist entry.
type Item struct {
	ID     string `json:"id" validate:"required"`
	Label  string `json:"label"`
	Status Status `json:"status" validate:"required,oneof=PENDING OK NA"`
}

// Category groups items inside a section. Item order is display order.
type Category struct {
	ID    string `json:"id" validate:"required"`
	Title string `json:"title"`
	Items []Item `json:"items" validate:"dive"`
}

// Section is a reorderable checklist module with optional free-text metadata.
type Section struct {
	ID          string     `json:"id" validate:"required"`
	Title       string     `json:"title"`
	Categories  []Category `json:"categories" validate:"dive"`
	ProjectCode string     `json:"projectCode,omitempty"`
	Designer    string     `json:"designer,omitempty"`
	Reviewer    string     `json:"reviewer,omitempty"`
}

// Project is the root of the checklist tree.
type Project struct {
	Sections        []Section `json:"sections" validate:"required,min=1,dive"`
	ActiveSectionID string    `json:"activeSectionId"`
	ProjectName     string    `json:"projectName"`
}

// SectionField identifies a writable text field on a section.
type SectionField string

const (
	FieldTitle       SectionField = "title"
	FieldProjectCode SectionField = "projectCode"
	FieldDesigner    SectionField = "designer"
	FieldReviewer    SectionField = "reviewer"
)

// Valid reports whether f names a known section field.
func (f SectionField) Valid() bool {
	switch f {
	case FieldTitle, FieldProjectCode, FieldDesigner, FieldReviewer:
		return true
	}
	return false
}

// FindSection returns the section with the given id.
func (p Project) FindSection(id string) (Section, bool) {
	if i := p.SectionIndex(id); i >= 0 {
		return p.Sections[i], true
	}
	return Section{}, false
}

// SectionIndex returns the position of the section with the given id, or -1.
func (p Project) SectionIndex(id string) int {
	for i := range p.Sections {
		if p.Sections[i].ID == id {
			return i
		}
	}
	return -1
}

// ActiveSection returns the section the active pointer resolves to, falling
// back to the first section.
func (p Project) ActiveSection() (Section, bool) {
	if s, ok := p.FindSection(p.ActiveSectionID); ok {
		return s, true
	}
	if len(p.Sections) > 0 {
		return p.Sections[0], true
	}
	return Section{}, false
}

// SectionIDs returns section ids in display order.
func (p Project) SectionIDs() []string {
	ids := make([]string, len(p.Sections))
	for i, s := range p.Sections {
		ids[i] = s.ID
	}
	return ids
}

// Clone returns a deep copy that shares no slices with p.
func (p Project) Clone() Project {
	out := p
	if p.Sections != nil {
		out.Sections = make([]Section, len(p.Sections))
		for i, s := range p.Sections {
			out.Sections[i] = s.clone()
		}
	}
	return out
}

func (s Section) clone() Section {
	out := s
	if s.Categories != nil {
		out.Categories = make([]Category, len(s.Categories))
		for i, c := range s.Categories {
			out.Categories[i] = c.clone()
		}
	}
	return out
}

func (c Category) clone() Category {
	out := c
	out.Items = slices.Clone(c.Items)
	return out
}
