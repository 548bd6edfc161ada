package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adelaplace/maitre/internal/domain"
	"github.com/adelaplace/maitre/internal/testutil"
)

func TestPriceTag_Normal(t *testing.T) {
	assert.Contains(t, PriceTag(900, false, 1.5), "900€")
}

func TestPriceTag_Urgent(t *testing.T) {
	tag := PriceTag(900, true, 1.5)
	assert.Contains(t, tag, "1350€ (urgent)")
	assert.Contains(t, tag, "Normal: 900€")
}

func TestRecommendationCards_SkipsDangling(t *testing.T) {
	cat := testutil.SmallCatalog()
	out := RecommendationCards(cat, []domain.Recommendation{
		{DomainID: "droit_immobilier_commercial", PrestationID: "redaction_bail_commercial", RelevanceScore: 8, Justification: "Bail à conclure"},
		{DomainID: "droit_spatial", PrestationID: "alunissage", RelevanceScore: 9, Justification: "Hors catalogue"},
	}, false, 1.5)

	assert.Contains(t, out, "Rédaction de bail commercial")
	assert.Contains(t, out, "Pertinence 8/10")
	assert.Contains(t, out, "Bail à conclure")
	assert.NotContains(t, out, "Hors catalogue")
}

func TestRecommendationCards_UrgencyBanner(t *testing.T) {
	cat := testutil.SmallCatalog()
	recs := []domain.Recommendation{
		{DomainID: "droit_du_travail", PrestationID: "procedure_licenciement", RelevanceScore: 7, Justification: "Licenciement en cours"},
	}

	urgent := RecommendationCards(cat, recs, true, 1.5)
	assert.Contains(t, urgent, "Urgence détectée")
	assert.Contains(t, urgent, "1800€ (urgent)")

	calm := RecommendationCards(cat, recs, false, 1.5)
	assert.NotContains(t, calm, "Urgence détectée")
	assert.Contains(t, calm, "1200€")
}

func TestPopularPrestations_ListsResolvedEntries(t *testing.T) {
	cat := testutil.SmallCatalog()
	out := PopularPrestations(cat, [][2]string{
		{"droit_immobilier_commercial", "redaction_bail_commercial"},
		{"droit_inconnu", "fantome"},
	})

	assert.Contains(t, out, "PRESTATIONS POPULAIRES")
	assert.Contains(t, out, "Rédaction de bail commercial")
	assert.Contains(t, out, "900€")
	assert.NotContains(t, out, "fantome")
}

func TestCatalogListing_GroupsByDomain(t *testing.T) {
	out := CatalogListing(testutil.SmallCatalog(), false, 1.5)

	assert.Contains(t, out, "DROIT IMMOBILIER & COMMERCIAL")
	assert.Contains(t, out, "DROIT DE LA FAMILLE")
	assert.Contains(t, out, "Procédure de divorce à l'amiable")
	assert.Contains(t, out, "1500€")
}
