package persistence_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rpggio/checkmaster/internal/domain/checklist"
	"github.com/rpggio/checkmaster/internal/persistence"
	"github.com/rpggio/checkmaster/internal/repository"
	"github.com/rpggio/checkmaster/internal/repository/mocks"
	"github.com/rpggio/checkmaster/internal/sqlite"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) *persistence.Store {
	t.Helper()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() {
		db.Close()
	})
	return persistence.New(sqlite.NewKVRepository(db), "", nil)
}

func sampleProject() checklist.Project {
	return checklist.Project{
		ProjectName:     "Tower A",
		ActiveSectionID: "s2",
		Sections: []checklist.Section{
			{
				ID:          "s1",
				Title:       "Foundations",
				ProjectCode: "P-100",
				Designer:    "Ana",
				Categories: []checklist.Category{
					{ID: "c1", Title: "Rebar", Items: []checklist.Item{
						{ID: "i1", Label: "Cover", Status: checklist.StatusOK},
						{ID: "i2", Label: "Spacing", Status: checklist.StatusNA},
						{ID: "i3", Label: "", Status: checklist.StatusPending},
					}},
				},
			},
			{ID: "s2", Title: "Slabs", Reviewer: "Rui", Categories: []checklist.Category{}},
		},
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newSQLiteStore(t)

	p := sampleProject()
	require.NoError(t, store.Save(ctx, p))
	require.Equal(t, p, store.Load(ctx))
}

func TestStore_SeedRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newSQLiteStore(t)

	p := checklist.Seed()
	require.NoError(t, store.Save(ctx, p))
	require.Equal(t, p, store.Load(ctx))
}

func TestStore_DefaultKey(t *testing.T) {
	store := persistence.New(&mocks.KVStore{}, "", nil)
	require.Equal(t, "checkmaster_pro_state_v3", store.Key())

	store = persistence.New(&mocks.KVStore{}, "custom", nil)
	require.Equal(t, "custom", store.Key())
}

func TestStore_LoadMissingKeyReturnsSeed(t *testing.T) {
	store := newSQLiteStore(t)
	require.Equal(t, checklist.Seed(), store.Load(context.Background()))
}

func TestStore_LoadFallsBackToSeed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"truncated", `{"sections":[{"id":"s1","title":"A","categ`},
		{"not json", `hello`},
		{"top level array", `[1,2,3]`},
		{"sections wrong type", `{"sections":"nope","activeSectionId":"s1","projectName":"x"}`},
		{"no sections", `{"sections":[],"activeSectionId":"","projectName":"x"}`},
		{"missing sections", `{"projectName":"x"}`},
		{"null", `null`},
		{"bad status", `{"sections":[{"id":"s1","title":"A","categories":[{"id":"c1","title":"C","items":[{"id":"i1","label":"L","status":"DONE"}]}]}],"activeSectionId":"s1","projectName":"x"}`},
		{"missing item id", `{"sections":[{"id":"s1","title":"A","categories":[{"id":"c1","title":"C","items":[{"label":"L","status":"OK"}]}]}],"activeSectionId":"s1","projectName":"x"}`},
		{"duplicate section ids", `{"sections":[{"id":"s1","title":"A","categories":[]},{"id":"s1","title":"B","categories":[]}],"activeSectionId":"s1","projectName":"x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			kv := &mocks.KVStore{}
			kv.On("Get", ctx, persistence.DefaultKey).Return([]byte(tt.data), nil)

			store := persistence.New(kv, "", nil)
			require.Equal(t, checklist.Seed(), store.Load(ctx))
			kv.AssertExpectations(t)
		})
	}
}

func TestStore_LoadBackendErrorReturnsSeed(t *testing.T) {
	ctx := context.Background()
	kv := &mocks.KVStore{}
	kv.On("Get", ctx, persistence.DefaultKey).Return(nil, errors.New("disk on fire"))

	store := persistence.New(kv, "", nil)
	require.Equal(t, checklist.Seed(), store.Load(ctx))
}

func TestStore_LoadCorrectsActivePointer(t *testing.T) {
	tests := []struct {
		name   string
		active string
	}{
		{"empty", `""`},
		{"dangling", `"gone"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			data := `{"sections":[{"id":"s1","title":"A","categories":[]},{"id":"s2","title":"B","categories":[]}],"activeSectionId":` + tt.active + `,"projectName":"x"}`
			kv := &mocks.KVStore{}
			kv.On("Get", ctx, persistence.DefaultKey).Return([]byte(data), nil)

			p := persistence.New(kv, "", nil).Load(ctx)
			require.Equal(t, "s1", p.ActiveSectionID)
			require.Len(t, p.Sections, 2)
			require.Equal(t, "x", p.ProjectName)
		})
	}
}

func TestStore_LoadIgnoresUnknownFields(t *testing.T) {
	data := `{"version":9,"sections":[{"id":"s1","title":"A","color":"red","categories":[]}],"activeSectionId":"s1","projectName":"x"}`
	p, err := persistence.Decode([]byte(data))
	require.NoError(t, err)
	require.Equal(t, "A", p.Sections[0].Title)
}

func TestStore_SaveBackendError(t *testing.T) {
	ctx := context.Background()
	kv := &mocks.KVStore{}
	kv.On("Set", ctx, persistence.DefaultKey, mock.Anything).Return(repository.ErrInvalidInput)

	err := persistence.New(kv, "", nil).Save(ctx, sampleProject())
	require.ErrorIs(t, err, repository.ErrInvalidInput)
}

func TestEncode_FieldNames(t *testing.T) {
	data, err := persistence.Encode(sampleProject())
	require.NoError(t, err)

	s := string(data)
	for _, field := range []string{`"sections"`, `"activeSectionId"`, `"projectName"`, `"categories"`, `"items"`, `"status":"OK"`, `"projectCode":"P-100"`} {
		require.Contains(t, s, field)
	}
}

func TestDecode_InvalidWrapsSentinel(t *testing.T) {
	_, err := persistence.Decode([]byte(`{`))
	require.ErrorIs(t, err, checklist.ErrInvalidProject)
}
