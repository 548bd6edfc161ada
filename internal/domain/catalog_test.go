package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *Catalog {
	return &Catalog{Domains: []Domain{
		{ID: "droit_penal", Label: "Droit Pénal", Prestations: []Prestation{
			{ID: "defense_penale", Label: "Défense pénale", Tarif: 2500},
		}},
		{ID: "droit_du_travail", Label: "Droit du Travail", Prestations: []Prestation{
			{ID: "contrat_travail", Label: "Rédaction de contrat de travail", Tarif: 350},
			{ID: "defense_penale", Label: "Autre prestation homonyme", Tarif: 100},
		}},
	}}
}

func TestCatalogFind(t *testing.T) {
	cat := testCatalog()

	d, p, ok := cat.Find("droit_penal", "defense_penale")
	require.True(t, ok)
	assert.Equal(t, "Droit Pénal", d.Label)
	assert.Equal(t, 2500, p.Tarif)
}

func TestCatalogFind_IDOnlyUniquePerDomain(t *testing.T) {
	cat := testCatalog()

	_, p, ok := cat.Find("droit_du_travail", "defense_penale")
	require.True(t, ok)
	assert.Equal(t, 100, p.Tarif, "lookup must not cross into another domain")
}

func TestCatalogFind_Misses(t *testing.T) {
	cat := testCatalog()

	_, _, ok := cat.Find("droit_penal", "contrat_travail")
	assert.False(t, ok, "prestation exists but under a different domain")

	_, _, ok = cat.Find("droit_spatial", "defense_penale")
	assert.False(t, ok)
}

func TestParseClientType(t *testing.T) {
	assert.Equal(t, ClientIndividual, ParseClientType("particulier"))
	assert.Equal(t, ClientBusiness, ParseClientType("entreprise"))
	assert.Equal(t, ClientUnknown, ParseClientType("indetermine"))
	assert.Equal(t, ClientUnknown, ParseClientType("Particulier"))
	assert.Equal(t, ClientUnknown, ParseClientType(""))
	assert.Equal(t, ClientUnknown, ParseClientType("association"))
}

func TestNewSession(t *testing.T) {
	a := NewSession()
	b := NewSession()

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Empty(t, a.Messages)
	assert.Empty(t, a.CurrentRecommendations)
	assert.False(t, a.UrgencyFlag)
}
