package marketing

import (
	"context"
	"errors"
	"testing"

	"agency-backend/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fiveProjects() *catalog.Catalog {
	return catalog.New(nil, nil, []catalog.Project{
		{ID: "p1", Title: "One"},
		{ID: "p2", Title: "Two"},
		{ID: "p3", Title: "Three"},
		{ID: "p4", Title: "Four"},
		{ID: "p5", Title: "Five"},
	})
}

func TestRandomIsUniform(t *testing.T) {
	svc := NewService(fiveProjects())
	const draws = 10000
	counts := make(map[string]int)
	for i := 0; i < draws; i++ {
		item, err := svc.Random(context.Background(), KindProject)
		require.NoError(t, err)
		counts[item.ItemID()]++
	}

	require.Len(t, counts, 5, "every item must be reachable")
	expected := draws / 5
	for id, n := range counts {
		// Five standard deviations on either side of the expected count.
		assert.InDelta(t, expected, n, 200, "item %s selected %d times", id, n)
	}
}

func TestRandomIndexesWithDrawnInteger(t *testing.T) {
	svc := NewService(fiveProjects())
	var gotN int
	svc.intN = func(n int) int {
		gotN = n
		return 3
	}
	item, err := svc.Random(context.Background(), KindProject)
	require.NoError(t, err)
	assert.Equal(t, 5, gotN)
	assert.Equal(t, "p4", item.ItemID())
}

func TestRandomErrors(t *testing.T) {
	svc := NewService(catalog.New(nil, nil, nil))

	_, err := svc.Random(context.Background(), Kind("unknown"))
	assert.ErrorIs(t, err, ErrInvalidType)

	_, err = svc.Random(context.Background(), KindService)
	assert.ErrorIs(t, err, ErrNoItems)
}

type errSource struct{ err error }

func (s errSource) Services(ctx context.Context) ([]catalog.Service, error) { return nil, s.err }
func (s errSource) SpecializedServices(ctx context.Context) ([]catalog.SpecializedService, error) {
	return nil, s.err
}
func (s errSource) Projects(ctx context.Context) ([]catalog.Project, error) { return nil, s.err }

func TestListWrapsSourceErrors(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(errSource{err: boom})
	for _, kind := range []Kind{KindService, KindSpecialized, KindProject} {
		_, err := svc.List(context.Background(), kind)
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, ErrInvalidType)
	}
}

func TestListKeepsVariantsSeparate(t *testing.T) {
	svc := NewService(catalog.Static())
	for _, tc := range []struct {
		kind Kind
		typ  string
	}{
		{KindService, TypeService},
		{KindSpecialized, TypeSpecializedService},
		{KindProject, TypeProject},
	} {
		items, err := svc.List(context.Background(), tc.kind)
		require.NoError(t, err)
		require.NotEmpty(t, items)
		for _, item := range items {
			assert.Equal(t, tc.typ, item.ItemType())
			assert.NotEmpty(t, item.ItemID())
		}
	}
}

func TestProjectLookup(t *testing.T) {
	svc := NewService(fiveProjects())
	item, err := svc.Project(context.Background(), " p2 ")
	require.NoError(t, err)
	assert.Equal(t, "Two", item.Title)

	_, err = svc.Project(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestKindValid(t *testing.T) {
	assert.True(t, KindService.Valid())
	assert.True(t, KindSpecialized.Valid())
	assert.True(t, KindProject.Valid())
	assert.False(t, Kind("specialized-service").Valid())
	assert.Equal(t, "service, specialized, project", AllowedKinds())
}
