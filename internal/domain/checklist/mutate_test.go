package checklist_test

import (
	"fmt"
	"testing"

	"github.com/rpggio/checkmaster/internal/domain/checklist"
	"github.com/stretchr/testify/require"
)

type seqIDs struct {
	n int
}

func (g *seqIDs) NewID(kind string) string {
	g.n++
	return fmt.Sprintf("%s-%d", kind, g.n)
}

func smallProject() checklist.Project {
	return checklist.Project{
		ProjectName:     "Tower A",
		ActiveSectionID: "s1",
		Sections: []checklist.Section{
			{
				ID:    "s1",
				Title: "Foundations",
				Categories: []checklist.Category{
					{ID: "c1", Title: "Piles", Items: []checklist.Item{
						{ID: "i1", Label: "Diameter", Status: checklist.StatusPending},
						{ID: "i2", Label: "Depth", Status: checklist.StatusOK},
					}},
					{ID: "c2", Title: "Beams", Items: []checklist.Item{
						{ID: "i1", Label: "Height", Status: checklist.StatusNA},
					}},
				},
			},
			{ID: "s2", Title: "Stairs", Categories: []checklist.Category{}},
			{ID: "s3", Title: "Ramp", Categories: []checklist.Category{}},
		},
	}
}

func requireInvariants(t *testing.T, p checklist.Project) {
	t.Helper()
	require.NotEmpty(t, p.Sections)
	require.GreaterOrEqual(t, p.SectionIndex(p.ActiveSectionID), 0, "active section %q must resolve", p.ActiveSectionID)
	require.NoError(t, checklist.Validate(p))
}

func TestAddSection(t *testing.T) {
	ids := &seqIDs{}
	before := smallProject()

	after := checklist.AddSection(before, ids)
	requireInvariants(t, after)

	require.Len(t, after.Sections, 4)
	require.Len(t, before.Sections, 3)
	added := after.Sections[3]
	require.Equal(t, "section-1", added.ID)
	require.Equal(t, checklist.DefaultSectionTitle, added.Title)
	require.Empty(t, added.ProjectCode)
	require.Empty(t, added.Designer)
	require.Empty(t, added.Reviewer)
	require.Len(t, added.Categories, 1)
	require.Equal(t, checklist.DefaultCategoryTitle, added.Categories[0].Title)
	require.Empty(t, added.Categories[0].Items)
	require.Equal(t, added.ID, after.ActiveSectionID)
	require.Equal(t, "s1", before.ActiveSectionID)
}

func TestDuplicateSection(t *testing.T) {
	ids := &seqIDs{}
	before := smallProject()
	before = checklist.SetSectionField(before, "s1", checklist.FieldDesigner, "Ana")

	after := checklist.DuplicateSection(before, "s1", ids)
	requireInvariants(t, after)

	require.Equal(t, []string{"s1", after.Sections[1].ID, "s2", "s3"}, after.SectionIDs())
	cp := after.Sections[1]
	orig := after.Sections[0]
	require.Equal(t, cp.ID, after.ActiveSectionID)
	require.Equal(t, "Foundations (Copy)", cp.Title)
	require.Equal(t, "Ana", cp.Designer)
	require.Len(t, cp.Categories, len(orig.Categories))

	seen := map[string]bool{}
	for _, s := range before.Sections {
		seen[s.ID] = true
		for _, c := range s.Categories {
			seen[c.ID] = true
			for _, it := range c.Items {
				seen[it.ID] = true
			}
		}
	}
	require.False(t, seen[cp.ID])
	for ci, c := range cp.Categories {
		require.False(t, seen[c.ID], "category id %q reused", c.ID)
		require.Equal(t, orig.Categories[ci].Title, c.Title)
		for ii, it := range c.Items {
			require.False(t, seen[it.ID], "item id %q reused", it.ID)
			require.Equal(t, orig.Categories[ci].Items[ii].Label, it.Label)
			require.Equal(t, orig.Categories[ci].Items[ii].Status, it.Status)
		}
	}
}

func TestDuplicateSection_CopyIsIndependent(t *testing.T) {
	ids := &seqIDs{}
	p := checklist.DuplicateSection(smallProject(), "s1", ids)
	cp := p.Sections[1]
	cat := cp.Categories[0]
	item := cat.Items[0]

	p = checklist.UpdateItemLabel(p, cat.ID, item.ID, "Changed")
	p = checklist.ToggleItemStatus(p, cp.ID, cat.ID, item.ID, checklist.StatusNA)
	p = checklist.UpdateCategoryTitle(p, cat.ID, "Renamed")

	orig := p.Sections[0]
	require.Equal(t, "Diameter", orig.Categories[0].Items[0].Label)
	require.Equal(t, checklist.StatusPending, orig.Categories[0].Items[0].Status)
	require.Equal(t, "Piles", orig.Categories[0].Title)

	copied := p.Sections[1]
	require.Equal(t, "Changed", copied.Categories[0].Items[0].Label)
	require.Equal(t, checklist.StatusNA, copied.Categories[0].Items[0].Status)
	require.Equal(t, "Renamed", copied.Categories[0].Title)
}

func TestDuplicateSection_UnknownID(t *testing.T) {
	before := smallProject()
	after := checklist.DuplicateSection(before, "missing", &seqIDs{})
	require.Equal(t, before, after)
}

func TestDeleteSection(t *testing.T) {
	p := smallProject()

	p = checklist.DeleteSection(p, "s2")
	requireInvariants(t, p)
	require.Equal(t, []string{"s1", "s3"}, p.SectionIDs())
	require.Equal(t, "s1", p.ActiveSectionID)

	p = checklist.DeleteSection(p, "s1")
	requireInvariants(t, p)
	require.Equal(t, []string{"s3"}, p.SectionIDs())
	require.Equal(t, "s3", p.ActiveSectionID)

	last := checklist.DeleteSection(p, "s3")
	require.Equal(t, p, last)
	requireInvariants(t, last)
}

func TestDeleteSection_KeepsActivePointerWhenOtherRemoved(t *testing.T) {
	p := checklist.SelectSection(smallProject(), "s3")
	p = checklist.DeleteSection(p, "s1")
	require.Equal(t, "s3", p.ActiveSectionID)
}

func TestSelectSection(t *testing.T) {
	p := checklist.SelectSection(smallProject(), "s2")
	require.Equal(t, "s2", p.ActiveSectionID)

	unchanged := checklist.SelectSection(p, "nope")
	require.Equal(t, "s2", unchanged.ActiveSectionID)
}

func TestCategoryOperations(t *testing.T) {
	ids := &seqIDs{}
	p := checklist.AddCategory(smallProject(), "s2", ids)
	requireInvariants(t, p)

	s2, _ := p.FindSection("s2")
	require.Len(t, s2.Categories, 1)
	require.Equal(t, "cat-1", s2.Categories[0].ID)
	require.Equal(t, checklist.DefaultCategoryTitle, s2.Categories[0].Title)

	p = checklist.DeleteCategory(p, "s2", "cat-1")
	s2, _ = p.FindSection("s2")
	require.Empty(t, s2.Categories)

	p = checklist.DeleteCategory(p, "s1", "c1")
	p = checklist.DeleteCategory(p, "s1", "c2")
	s1, _ := p.FindSection("s1")
	require.Empty(t, s1.Categories)
	requireInvariants(t, p)
}

func TestItemOperations(t *testing.T) {
	ids := &seqIDs{}
	p := checklist.AddItem(smallProject(), "s1", "c2", ids)

	s1, _ := p.FindSection("s1")
	items := s1.Categories[1].Items
	require.Len(t, items, 2)
	require.Equal(t, checklist.Item{ID: "item-1", Label: checklist.DefaultItemLabel, Status: checklist.StatusPending}, items[1])

	p = checklist.DeleteItem(p, "s1", "c2", "i1")
	s1, _ = p.FindSection("s1")
	require.Equal(t, []string{"item-1"}, []string{s1.Categories[1].Items[0].ID})
	require.Len(t, s1.Categories[0].Items, 2, "same item id in a sibling category is untouched")

	unchanged := checklist.DeleteItem(p, "s1", "c2", "missing")
	require.Equal(t, p, unchanged)
}

func TestUpdatesAreScopedToActiveSection(t *testing.T) {
	ids := &seqIDs{}
	p := checklist.DuplicateSection(smallProject(), "s1", ids)
	p = checklist.SelectSection(p, "s1")

	p = checklist.UpdateItemLabel(p, "c1", "i1", "  raw text  ")
	p = checklist.UpdateCategoryTitle(p, "c1", "")

	s1, _ := p.FindSection("s1")
	require.Equal(t, "  raw text  ", s1.Categories[0].Items[0].Label)
	require.Equal(t, "", s1.Categories[0].Title)

	p = checklist.SelectSection(p, "s2")
	before := p
	p = checklist.UpdateItemLabel(p, "c1", "i1", "ignored")
	require.Equal(t, before, p)
}

func TestSetSectionField(t *testing.T) {
	p := smallProject()
	p = checklist.SetSectionField(p, "s2", checklist.FieldTitle, "Escada")
	p = checklist.SetSectionField(p, "s2", checklist.FieldProjectCode, "PRJ-7")
	p = checklist.SetSectionField(p, "s2", checklist.FieldDesigner, "Ana")
	p = checklist.SetSectionField(p, "s2", checklist.FieldReviewer, "Rui")

	s2, _ := p.FindSection("s2")
	require.Equal(t, "Escada", s2.Title)
	require.Equal(t, "PRJ-7", s2.ProjectCode)
	require.Equal(t, "Ana", s2.Designer)
	require.Equal(t, "Rui", s2.Reviewer)

	unchanged := checklist.SetSectionField(p, "s2", checklist.SectionField("id"), "hijack")
	require.Equal(t, p, unchanged)
}

func TestToggleItemStatus(t *testing.T) {
	p := smallProject()
	status := func(p checklist.Project) checklist.Status {
		s, _ := p.FindSection("s1")
		return s.Categories[0].Items[0].Status
	}

	p = checklist.ToggleItemStatus(p, "s1", "c1", "i1", checklist.StatusOK)
	require.Equal(t, checklist.StatusOK, status(p))

	p = checklist.ToggleItemStatus(p, "s1", "c1", "i1", checklist.StatusOK)
	require.Equal(t, checklist.StatusPending, status(p))

	p = checklist.ToggleItemStatus(p, "s1", "c1", "i1", checklist.StatusOK)
	p = checklist.ToggleItemStatus(p, "s1", "c1", "i1", checklist.StatusNA)
	require.Equal(t, checklist.StatusNA, status(p))

	p = checklist.ToggleItemStatus(p, "s1", "c1", "i1", checklist.StatusPending)
	require.Equal(t, checklist.StatusNA, status(p), "pending cannot be requested")
}

func TestMutationsDoNotTouchInput(t *testing.T) {
	ids := &seqIDs{}
	before := smallProject()
	snapshot := before.Clone()

	_ = checklist.AddSection(before, ids)
	_ = checklist.DuplicateSection(before, "s1", ids)
	_ = checklist.DeleteSection(before, "s1")
	_ = checklist.AddCategory(before, "s1", ids)
	_ = checklist.DeleteCategory(before, "s1", "c1")
	_ = checklist.AddItem(before, "s1", "c1", ids)
	_ = checklist.DeleteItem(before, "s1", "c1", "i1")
	_ = checklist.UpdateItemLabel(before, "c1", "i1", "x")
	_ = checklist.UpdateCategoryTitle(before, "c1", "x")
	_ = checklist.SetSectionField(before, "s1", checklist.FieldReviewer, "x")
	_ = checklist.ToggleItemStatus(before, "s1", "c1", "i1", checklist.StatusOK)
	_ = checklist.ReorderSections(before, "s1", 2)

	require.Equal(t, snapshot, before)
}

func TestMutationsShareUntouchedSubtrees(t *testing.T) {
	before := smallProject()
	after := checklist.ToggleItemStatus(before, "s1", "c1", "i1", checklist.StatusOK)

	// the sibling category's item slice is shared, not copied
	require.Same(t, &before.Sections[0].Categories[1].Items[0], &after.Sections[0].Categories[1].Items[0])
	require.NotSame(t, &before.Sections[0].Categories[0].Items[0], &after.Sections[0].Categories[0].Items[0])
}

func TestInvariantsHoldAcrossMutationSequence(t *testing.T) {
	ids := &seqIDs{}
	p := checklist.Seed()
	steps := []func(checklist.Project) checklist.Project{
		func(p checklist.Project) checklist.Project { return checklist.AddSection(p, ids) },
		func(p checklist.Project) checklist.Project { return checklist.DuplicateSection(p, p.ActiveSectionID, ids) },
		func(p checklist.Project) checklist.Project { return checklist.DeleteSection(p, p.ActiveSectionID) },
		func(p checklist.Project) checklist.Project { return checklist.ReorderSections(p, p.Sections[0].ID, len(p.Sections)-1) },
		func(p checklist.Project) checklist.Project { return checklist.DeleteSection(p, p.Sections[0].ID) },
		func(p checklist.Project) checklist.Project { return checklist.AddCategory(p, p.ActiveSectionID, ids) },
		func(p checklist.Project) checklist.Project { return checklist.ResetToDefault() },
	}

	for round := 0; round < 3; round++ {
		for i, step := range steps {
			p = step(p)
			requireInvariants(t, p)
			if i == len(steps)-1 {
				require.Equal(t, checklist.Seed(), p)
			}
		}
	}

	for len(p.Sections) > 1 {
		p = checklist.DeleteSection(p, p.ActiveSectionID)
		requireInvariants(t, p)
	}
	p = checklist.DeleteSection(p, p.ActiveSectionID)
	require.Len(t, p.Sections, 1)
	requireInvariants(t, p)
}
