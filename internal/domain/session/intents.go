package session

import "github.com/rpggio/checkmaster/internal/domain/checklist"

// Intent is a user action the controller applies to the tree. The set is
// closed; every intent is defined in this file.
type Intent interface {
	name() string
	apply(p checklist.Project, ids checklist.IDGenerator) checklist.Project
}

// AddSection appends a default section and makes it active.
type AddSection struct{}

// DuplicateSection copies a section with fresh ids right after it.
type DuplicateSection struct {
	SectionID string
}

// DeleteSection removes a section unless it is the last one.
type DeleteSection struct {
	SectionID string
}

// SelectSection moves the active pointer.
type SelectSection struct {
	SectionID string
}

// AddCategory appends an empty category to a section.
type AddCategory struct {
	SectionID string
}

// DeleteCategory removes a category with its items.
type DeleteCategory struct {
	SectionID  string
	CategoryID string
}

// AddItem appends a pending item to a category.
type AddItem struct {
	SectionID  string
	CategoryID string
}

// DeleteItem removes an item.
type DeleteItem struct {
	SectionID  string
	CategoryID string
	ItemID     string
}

// UpdateItemLabel edits an item in the active section.
type UpdateItemLabel struct {
	CategoryID string
	ItemID     string
	Label      string
}

// UpdateCategoryTitle edits a category in the active section.
type UpdateCategoryTitle struct {
	CategoryID string
	Title      string
}

// SetSectionField writes one of the section text fields.
type SetSectionField struct {
	SectionID string
	Field     checklist.SectionField
	Value     string
}

// ToggleItemStatus requests OK or NA; requesting the current status clears it.
type ToggleItemStatus struct {
	SectionID  string
	CategoryID string
	ItemID     string
	Status     checklist.Status
}

// ReorderSections moves a section to TargetIndex in display order.
type ReorderSections struct {
	SectionID   string
	TargetIndex int
}

// ResetToDefault replaces the tree with the seed checklist.
type ResetToDefault struct{}

func (AddSection) name() string { return "add_section" }
func (AddSection) apply(p checklist.Project, ids checklist.IDGenerator) checklist.Project {
	return checklist.AddSection(p, ids)
}

func (DuplicateSection) name() string { return "duplicate_section" }
func (i DuplicateSection) apply(p checklist.Project, ids checklist.IDGenerator) checklist.Project {
	return checklist.DuplicateSection(p, i.SectionID, ids)
}

func (DeleteSection) name() string { return "delete_section" }
func (i DeleteSection) apply(p checklist.Project, _ checklist.IDGenerator) checklist.Project {
	return checklist.DeleteSection(p, i.SectionID)
}

func (SelectSection) name() string { return "select_section" }
func (i SelectSection) apply(p checklist.Project, _ checklist.IDGenerator) checklist.Project {
	return checklist.SelectSection(p, i.SectionID)
}

func (AddCategory) name() string { return "add_category" }
func (i AddCategory) apply(p checklist.Project, ids checklist.IDGenerator) checklist.Project {
	return checklist.AddCategory(p, i.SectionID, ids)
}

func (DeleteCategory) name() string { return "delete_category" }
func (i DeleteCategory) apply(p checklist.Project, _ checklist.IDGenerator) checklist.Project {
	return checklist.DeleteCategory(p, i.SectionID, i.CategoryID)
}

func (AddItem) name() string { return "add_item" }
func (i AddItem) apply(p checklist.Project, ids checklist.IDGenerator) checklist.Project {
	return checklist.AddItem(p, i.SectionID, i.CategoryID, ids)
}

func (DeleteItem) name() string { return "delete_item" }
func (i DeleteItem) apply(p checklist.Project, _ checklist.IDGenerator) checklist.Project {
	return checklist.DeleteItem(p, i.SectionID, i.CategoryID, i.ItemID)
}

func (UpdateItemLabel) name() string { return "update_item_label" }
func (i UpdateItemLabel) apply(p checklist.Project, _ checklist.IDGenerator) checklist.Project {
	return checklist.UpdateItemLabel(p, i.CategoryID, i.ItemID, i.Label)
}

func (UpdateCategoryTitle) name() string { return "update_category_title" }
func (i UpdateCategoryTitle) apply(p checklist.Project, _ checklist.IDGenerator) checklist.Project {
	return checklist.UpdateCategoryTitle(p, i.CategoryID, i.Title)
}

func (SetSectionField) name() string { return "set_section_field" }
func (i SetSectionField) apply(p checklist.Project, _ checklist.IDGenerator) checklist.Project {
	return checklist.SetSectionField(p, i.SectionID, i.Field, i.Value)
}

func (ToggleItemStatus) name() string { return "toggle_item_status" }
func (i ToggleItemStatus) apply(p checklist.Project, _ checklist.IDGenerator) checklist.Project {
	return checklist.ToggleItemStatus(p, i.SectionID, i.CategoryID, i.ItemID, i.Status)
}

func (ReorderSections) name() string { return "reorder_sections" }
func (i ReorderSections) apply(p checklist.Project, _ checklist.IDGenerator) checklist.Project {
	return checklist.ReorderSections(p, i.SectionID, i.TargetIndex)
}

func (ResetToDefault) name() string { return "reset_to_default" }
func (ResetToDefault) apply(checklist.Project, checklist.IDGenerator) checklist.Project {
	return checklist.ResetToDefault()
}
