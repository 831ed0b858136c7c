package mcp

import (
	"time"

	"github.com/rpggio/checkmaster/internal/domain/checklist"
)

// GetChecklistParams is empty; get_checklist takes no arguments.
type GetChecklistParams struct{}

// ExportChecklistParams selects the sections to export.
type ExportChecklistParams struct {
	Scope string `json:"scope,omitempty" jsonschema:"active (default) for the active section only, all for every section" validate:"omitempty,oneof=active all"`
}

// AddSectionParams is empty; add_section takes no arguments.
type AddSectionParams struct{}

// SectionParams addresses a section.
type SectionParams struct {
	SectionID string `json:"section_id" jsonschema:"section id" validate:"required"`
}

// CategoryParams addresses a category.
type CategoryParams struct {
	SectionID  string `json:"section_id" jsonschema:"section id" validate:"required"`
	CategoryID string `json:"category_id" jsonschema:"category id within the section" validate:"required"`
}

// ItemParams addresses an item.
type ItemParams struct {
	SectionID  string `json:"section_id" jsonschema:"section id" validate:"required"`
	CategoryID string `json:"category_id" jsonschema:"category id within the section" validate:"required"`
	ItemID     string `json:"item_id" jsonschema:"item id within the category" validate:"required"`
}

// UpdateItemLabelParams renames an item in the active section.
type UpdateItemLabelParams struct {
	CategoryID string `json:"category_id" jsonschema:"category id in the active section" validate:"required"`
	ItemID     string `json:"item_id" jsonschema:"item id within the category" validate:"required"`
	Label      string `json:"label" jsonschema:"new label, stored verbatim"`
}

// UpdateCategoryTitleParams renames a category in the active section.
type UpdateCategoryTitleParams struct {
	CategoryID string `json:"category_id" jsonschema:"category id in the active section" validate:"required"`
	Title      string `json:"title" jsonschema:"new title, stored verbatim"`
}

// SetSectionFieldParams writes one section text field.
type SetSectionFieldParams struct {
	SectionID string `json:"section_id" jsonschema:"section id" validate:"required"`
	Field     string `json:"field" jsonschema:"one of title, projectCode, designer, reviewer" validate:"required,oneof=title projectCode designer reviewer"`
	Value     string `json:"value" jsonschema:"new value, stored verbatim"`
}

// ToggleItemStatusParams requests OK or NA for an item.
type ToggleItemStatusParams struct {
	SectionID  string `json:"section_id" jsonschema:"section id" validate:"required"`
	CategoryID string `json:"category_id" jsonschema:"category id within the section" validate:"required"`
	ItemID     string `json:"item_id" jsonschema:"item id within the category" validate:"required"`
	Status     string `json:"status" jsonschema:"OK or NA; requesting the current status clears it back to PENDING" validate:"required,oneof=OK NA"`
}

// ReorderSectionsParams moves a section to a new index.
type ReorderSectionsParams struct {
	SectionID   string `json:"section_id" jsonschema:"section to move" validate:"required"`
	TargetIndex int    `json:"target_index" jsonschema:"zero-based destination index" validate:"min=0"`
}

// ResetChecklistParams carries the reset confirmation.
type ResetChecklistParams struct {
	Confirm bool `json:"confirm" jsonschema:"must be true; discards every edit and restores the default checklist"`
}

// ChecklistResponse is the view of the checklist returned by every tool that
// reads or changes it.
type ChecklistResponse struct {
	ProjectName     string            `json:"project_name"`
	ActiveSectionID string            `json:"active_section_id"`
	LastSavedAt     *time.Time        `json:"last_saved_at,omitempty"`
	Sections        []SectionResponse `json:"sections"`
}

// SectionResponse is one section with its progress counts.
type SectionResponse struct {
	ID              string               `json:"id"`
	Title           string               `json:"title"`
	ProjectCode     string               `json:"project_code,omitempty"`
	Designer        string               `json:"designer,omitempty"`
	Reviewer        string               `json:"reviewer,omitempty"`
	ProgressPercent int                  `json:"progress_percent"`
	Done            int                  `json:"done"`
	Total           int                  `json:"total"`
	Categories      []checklist.Category `json:"categories"`
}

func toChecklistResponse(p checklist.Project, lastSaved time.Time) *ChecklistResponse {
	resp := &ChecklistResponse{
		ProjectName:     p.ProjectName,
		ActiveSectionID: p.ActiveSectionID,
		Sections:        make([]SectionResponse, 0, len(p.Sections)),
	}
	if !lastSaved.IsZero() {
		resp.LastSavedAt = &lastSaved
	}
	for _, s := range p.Sections {
		done, total := s.Counts()
		categories := s.Categories
		if categories == nil {
			categories = []checklist.Category{}
		}
		resp.Sections = append(resp.Sections, SectionResponse{
			ID:              s.ID,
			Title:           s.Title,
			ProjectCode:     s.ProjectCode,
			Designer:        s.Designer,
			Reviewer:        s.Reviewer,
			ProgressPercent: s.Progress(),
			Done:            done,
			Total:           total,
			Categories:      categories,
		})
	}
	return resp
}
