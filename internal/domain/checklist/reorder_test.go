package checklist_test

import (
	"slices"
	"testing"

	"github.com/rpggio/checkmaster/internal/domain/checklist"
	"github.com/stretchr/testify/require"
)

func TestMove(t *testing.T) {
	in := []string{"a", "b", "c", "d", "e"}

	require.Equal(t, []string{"b", "c", "d", "a", "e"}, checklist.Move(in, 0, 3))
	require.Equal(t, []string{"a", "e", "b", "c", "d"}, checklist.Move(in, 4, 1))
	require.Equal(t, in, checklist.Move(in, 2, 2))
	require.Equal(t, in, checklist.Move(in, 2, 9))
	require.Equal(t, []string{"a", "b", "c", "d", "e"}, in)
}

func sixSections() checklist.Project {
	p := checklist.Project{ProjectName: "Tower B", ActiveSectionID: "s4"}
	for _, id := range []string{"s1", "s2", "s3", "s4", "s5", "s6"} {
		p.Sections = append(p.Sections, checklist.Section{ID: id, Title: "Section " + id, Categories: []checklist.Category{}})
	}
	return p
}

func TestReorderSections_IsPermutation(t *testing.T) {
	p := sixSections()
	ids := p.SectionIDs()

	for _, moved := range ids {
		for target := range ids {
			out := checklist.ReorderSections(p, moved, target)
			got := out.SectionIDs()

			require.Len(t, got, len(ids))
			require.ElementsMatch(t, ids, got)
			require.Equal(t, moved, got[target])
			require.Equal(t, "s4", out.ActiveSectionID)
			requireInvariants(t, out)

			rest := slices.DeleteFunc(slices.Clone(got), func(id string) bool { return id == moved })
			want := slices.DeleteFunc(slices.Clone(ids), func(id string) bool { return id == moved })
			require.Equal(t, want, rest, "relative order of %v must survive moving %s to %d", ids, moved, target)
		}
	}
	require.Equal(t, ids, p.SectionIDs(), "input must not change")
}

func TestReorderSections(t *testing.T) {
	p := smallProject()

	moved := checklist.ReorderSections(p, "s3", 0)
	require.Equal(t, []string{"s3", "s1", "s2"}, moved.SectionIDs())
	require.Equal(t, "s1", moved.ActiveSectionID)
	requireInvariants(t, moved)

	require.Equal(t, p, checklist.ReorderSections(p, "s2", 1))
	require.Equal(t, p, checklist.ReorderSections(p, "s2", 3))
	require.Equal(t, p, checklist.ReorderSections(p, "s2", -1))
	require.Equal(t, p, checklist.ReorderSections(p, "zz", 0))
}
