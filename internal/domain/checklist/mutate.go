package checklist

import "slices"

// Titles given to freshly created nodes.
const (
	DefaultSectionTitle  = "New Module"
	DefaultCategoryTitle = "New Category"
	DefaultItemLabel     = "New Item"
	CopySuffix           = " (Copy)"
)

// Every function in this file returns a new Project. Only the path from the
// root to the changed node is reallocated; untouched subtrees are shared and
// never written to. Requests naming unknown ids return p unchanged.

// AddSection appends an empty section with one default category and makes it
// active.
func AddSection(p Project, ids IDGenerator) Project {
	s := Section{
		ID:         ids.NewID(KindSection),
		Title:      DefaultSectionTitle,
		Categories: []Category{newCategory(ids)},
	}
	p.Sections = slices.Concat(p.Sections, []Section{s})
	p.ActiveSectionID = s.ID
	return p
}

// DuplicateSection inserts a deep copy of the section right after the
// original, with fresh ids on the copy and all of its descendants, and makes
// the copy active.
func DuplicateSection(p Project, sectionID string, ids IDGenerator) Project {
	i := p.SectionIndex(sectionID)
	if i < 0 {
		return p
	}
	cp := copySection(p.Sections[i], ids)
	p.Sections = slices.Insert(slices.Clone(p.Sections), i+1, cp)
	p.ActiveSectionID = cp.ID
	return p
}

// DeleteSection removes a section unless it is the last one. When the active
// section is removed the pointer moves to the new first section.
func DeleteSection(p Project, sectionID string) Project {
	i := p.SectionIndex(sectionID)
	if i < 0 || len(p.Sections) <= 1 {
		return p
	}
	p.Sections = slices.Delete(slices.Clone(p.Sections), i, i+1)
	if p.ActiveSectionID == sectionID {
		p.ActiveSectionID = p.Sections[0].ID
	}
	return p
}

// SelectSection points the active pointer at an existing section.
func SelectSection(p Project, sectionID string) Project {
	if p.SectionIndex(sectionID) < 0 {
		return p
	}
	p.ActiveSectionID = sectionID
	return p
}

// AddCategory appends an empty default category to the section.
func AddCategory(p Project, sectionID string, ids IDGenerator) Project {
	return updateSection(p, sectionID, func(s Section) Section {
		s.Categories = slices.Concat(s.Categories, []Category{newCategory(ids)})
		return s
	})
}

// DeleteCategory removes a category and all of its items. A section may be
// left with no categories.
func DeleteCategory(p Project, sectionID, categoryID string) Project {
	return updateSection(p, sectionID, func(s Section) Section {
		i := s.categoryIndex(categoryID)
		if i < 0 {
			return s
		}
		s.Categories = slices.Delete(slices.Clone(s.Categories), i, i+1)
		return s
	})
}

// AddItem appends a pending default item to the category.
func AddItem(p Project, sectionID, categoryID string, ids IDGenerator) Project {
	return updateCategory(p, sectionID, categoryID, func(c Category) Category {
		c.Items = slices.Concat(c.Items, []Item{{
			ID:     ids.NewID(KindItem),
			Label:  DefaultItemLabel,
			Status: StatusPending,
		}})
		return c
	})
}

// DeleteItem removes an item from the category.
func DeleteItem(p Project, sectionID, categoryID, itemID string) Project {
	return updateCategory(p, sectionID, categoryID, func(c Category) Category {
		i := c.itemIndex(itemID)
		if i < 0 {
			return c
		}
		c.Items = slices.Delete(slices.Clone(c.Items), i, i+1)
		return c
	})
}

// UpdateItemLabel replaces an item label in the active section verbatim.
func UpdateItemLabel(p Project, categoryID, itemID, label string) Project {
	return updateItem(p, p.ActiveSectionID, categoryID, itemID, func(it Item) Item {
		it.Label = label
		return it
	})
}

// UpdateCategoryTitle replaces a category title in the active section
// verbatim.
func UpdateCategoryTitle(p Project, categoryID, title string) Project {
	return updateCategory(p, p.ActiveSectionID, categoryID, func(c Category) Category {
		c.Title = title
		return c
	})
}

// SetSectionField replaces one text field of the section.
func SetSectionField(p Project, sectionID string, field SectionField, value string) Project {
	if !field.Valid() {
		return p
	}
	return updateSection(p, sectionID, func(s Section) Section {
		switch field {
		case FieldTitle:
			s.Title = value
		case FieldProjectCode:
			s.ProjectCode = value
		case FieldDesigner:
			s.Designer = value
		case FieldReviewer:
			s.Reviewer = value
		}
		return s
	})
}

// ToggleItemStatus applies an exclusive tri-state toggle: requesting the
// status the item already has resets it to pending, otherwise the requested
// status replaces the current one. Only OK and NA may be requested.
func ToggleItemStatus(p Project, sectionID, categoryID, itemID string, requested Status) Project {
	if requested != StatusOK && requested != StatusNA {
		return p
	}
	return updateItem(p, sectionID, categoryID, itemID, func(it Item) Item {
		if it.Status == requested {
			it.Status = StatusPending
		} else {
			it.Status = requested
		}
		return it
	})
}

// ResetToDefault returns the seed project with its first section active.
func ResetToDefault() Project {
	return Seed()
}

func newCategory(ids IDGenerator) Category {
	return Category{
		ID:    ids.NewID(KindCategory),
		Title: DefaultCategoryTitle,
		Items: []Item{},
	}
}

func copySection(s Section, ids IDGenerator) Section {
	cp := s
	cp.ID = ids.NewID(KindSection)
	cp.Title = s.Title + CopySuffix
	cp.Categories = make([]Category, len(s.Categories))
	for i, c := range s.Categories {
		items := make([]Item, len(c.Items))
		for j, it := range c.Items {
			it.ID = ids.NewID(KindItem)
			items[j] = it
		}
		cp.Categories[i] = Category{
			ID:    ids.NewID(KindCategory),
			Title: c.Title,
			Items: items,
		}
	}
	return cp
}

func updateSection(p Project, sectionID string, fn func(Section) Section) Project {
	i := p.SectionIndex(sectionID)
	if i < 0 {
		return p
	}
	sections := slices.Clone(p.Sections)
	sections[i] = fn(sections[i])
	p.Sections = sections
	return p
}

func updateCategory(p Project, sectionID, categoryID string, fn func(Category) Category) Project {
	return updateSection(p, sectionID, func(s Section) Section {
		i := s.categoryIndex(categoryID)
		if i < 0 {
			return s
		}
		categories := slices.Clone(s.Categories)
		categories[i] = fn(categories[i])
		s.Categories = categories
		return s
	})
}

func updateItem(p Project, sectionID, categoryID, itemID string, fn func(Item) Item) Project {
	return updateCategory(p, sectionID, categoryID, func(c Category) Category {
		i := c.itemIndex(itemID)
		if i < 0 {
			return c
		}
		items := slices.Clone(c.Items)
		items[i] = fn(items[i])
		c.Items = items
		return c
	})
}

func (s Section) categoryIndex(id string) int {
	return slices.IndexFunc(s.Categories, func(c Category) bool { return c.ID == id })
}

func (c Category) itemIndex(id string) int {
	return slices.IndexFunc(c.Items, func(it Item) bool { return it.ID == id })
}
