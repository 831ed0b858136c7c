package checklist

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var treeValidate *validator.Validate

func init() {
	treeValidate = validator.New()
}

// Validate checks every tree invariant: a non-empty section list, required
// ids, known statuses, id uniqueness within each owning scope and an active
// pointer that resolves to a section.
func Validate(p Project) error {
	if err := treeValidate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProject, err)
	}

	sectionIDs := make(map[string]struct{}, len(p.Sections))
	for _, s := range p.Sections {
		if _, dup := sectionIDs[s.ID]; dup {
			return fmt.Errorf("%w: duplicate section id %q", ErrInvalidProject, s.ID)
		}
		sectionIDs[s.ID] = struct{}{}

		catIDs := make(map[string]struct{}, len(s.Categories))
		for _, c := range s.Categories {
			if _, dup := catIDs[c.ID]; dup {
				return fmt.Errorf("%w: duplicate category id %q in section %q", ErrInvalidProject, c.ID, s.ID)
			}
			catIDs[c.ID] = struct{}{}

			itemIDs := make(map[string]struct{}, len(c.Items))
			for _, it := range c.Items {
				if _, dup := itemIDs[it.ID]; dup {
					return fmt.Errorf("%w: duplicate item id %q in category %q", ErrInvalidProject, it.ID, c.ID)
				}
				itemIDs[it.ID] = struct{}{}
			}
		}
	}

	if _, ok := sectionIDs[p.ActiveSectionID]; !ok {
		return fmt.Errorf("%w: active section %q not found", ErrInvalidProject, p.ActiveSectionID)
	}
	return nil
}

// IsValid reports whether p satisfies every tree invariant.
func IsValid(p Project) bool {
	return Validate(p) == nil
}
