package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adelaplace/maitre/internal/testutil"
)

func TestSeed_PopulatesEmptyDatabase(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	require.NoError(t, Seed(ctx, database))

	repo := NewSQLiteCatalogRepo(database)
	cat, err := repo.Catalog(ctx)
	require.NoError(t, err)

	want := DefaultCatalog()
	require.Len(t, cat.Domains, len(want.Domains))
	for i, d := range want.Domains {
		assert.Equal(t, d.ID, cat.Domains[i].ID)
		assert.Equal(t, d.Label, cat.Domains[i].Label)
		require.Len(t, cat.Domains[i].Prestations, len(d.Prestations), "domain %s", d.ID)
		for j, p := range d.Prestations {
			assert.Equal(t, p, cat.Domains[i].Prestations[j])
		}
	}
}

func TestSeed_Idempotent(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	require.NoError(t, Seed(ctx, database))
	require.NoError(t, Seed(ctx, database))

	repo := NewSQLiteCatalogRepo(database)
	cat, err := repo.Catalog(ctx)
	require.NoError(t, err)
	assert.Len(t, cat.Domains, len(DefaultCatalog().Domains))
}

func TestCatalog_RepeatedReadsIdentical(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	require.NoError(t, Seed(ctx, database))

	repo := NewSQLiteCatalogRepo(database)
	first, err := repo.Catalog(ctx)
	require.NoError(t, err)
	second, err := repo.Catalog(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetPrestation(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	require.NoError(t, Seed(ctx, database))

	repo := NewSQLiteCatalogRepo(database)

	p, err := repo.GetPrestation(ctx, "droit_de_la_famille", "procedure_divorce_amiable")
	require.NoError(t, err)
	assert.Equal(t, "procedure_divorce_amiable", p.ID)
	assert.NotEmpty(t, p.Label)
	assert.Greater(t, p.Tarif, 0)
}

func TestGetPrestation_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	require.NoError(t, Seed(ctx, database))

	repo := NewSQLiteCatalogRepo(database)

	_, err := repo.GetPrestation(ctx, "droit_de_la_famille", "teletransportation")
	assert.ErrorIs(t, err, ErrNotFound)

	// A valid prestation id under the wrong domain must not resolve.
	_, err = repo.GetPrestation(ctx, "droit_penal", "procedure_divorce_amiable")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUrgencyFactor_Default(t *testing.T) {
	repo := NewSQLiteCatalogRepo(testutil.NewTestDB(t))
	assert.Equal(t, DefaultUrgencyFactor, repo.UrgencyFactor())
}

func TestPopularPrestations_ResolveInDefaultCatalog(t *testing.T) {
	cat := DefaultCatalog()
	for _, entry := range PopularPrestations() {
		_, p, ok := cat.Find(entry[0], entry[1])
		assert.True(t, ok, "popular entry %s/%s missing from catalog", entry[0], entry[1])
		if ok {
			assert.NotEmpty(t, p.Label)
		}
	}
}
