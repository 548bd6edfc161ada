package retrieval

import (
	"strings"
	"testing"

	"github.com/adelaplace/maitre/internal/domain"
	"github.com/adelaplace/maitre/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank_CommercialLeaseQuery(t *testing.T) {
	cat := testutil.SmallCatalog()
	query := "J'ai besoin d'un bail commercial"
	keywords := ExtractKeywords(query)
	require.Contains(t, keywords, "bail")
	require.Contains(t, keywords, "commercial")

	matches := Rank(cat, query, keywords)

	require.NotEmpty(t, matches)
	assert.Equal(t, "redaction_bail_commercial", matches[0].PrestationID)
	assert.GreaterOrEqual(t, matches[0].Score, 3)
}

func TestRank_EmptyWhenNothingMatches(t *testing.T) {
	cat := testutil.SmallCatalog()
	// No vocabulary keyword and no token longer than 3 runes.
	query := "le la un si"
	matches := Rank(cat, query, ExtractKeywords(query))
	assert.Empty(t, matches)
}

func TestRank_DropsZeroScores(t *testing.T) {
	cat := testutil.SmallCatalog()
	query := "divorce"
	matches := Rank(cat, query, ExtractKeywords(query))

	require.NotEmpty(t, matches)
	for _, m := range matches {
		assert.Greater(t, m.Score, 0)
	}
	for _, m := range matches {
		assert.NotEqual(t, "procedure_licenciement", m.PrestationID)
	}
}

func TestRank_ScoresWeaklyDecreasing(t *testing.T) {
	cat := testutil.SmallCatalog()
	query := "contentieux autour d'un bail commercial et d'un divorce"
	matches := Rank(cat, query, ExtractKeywords(query))

	require.NotEmpty(t, matches)
	for i := 1; i < len(matches); i++ {
		assert.LessOrEqual(t, matches[i].Score, matches[i-1].Score)
	}
}

func TestRank_TruncatesToFive(t *testing.T) {
	var cat domain.Catalog
	for _, id := range []string{"d1", "d2"} {
		d := domain.Domain{ID: id, Label: "Contrats " + id}
		for _, pid := range []string{"a", "b", "c", "d"} {
			d.Prestations = append(d.Prestations, domain.Prestation{
				ID:         pid,
				Label:      "Contrat type " + pid,
				Definition: "Rédaction d'un contrat.",
			})
		}
		cat.Domains = append(cat.Domains, d)
	}

	matches := Rank(&cat, "contrat", ExtractKeywords("contrat"))
	assert.Len(t, matches, MaxMatches)
}

func TestRank_TiesKeepCatalogOrder(t *testing.T) {
	cat := &domain.Catalog{Domains: []domain.Domain{
		{
			ID:    "dom",
			Label: "Divers",
			Prestations: []domain.Prestation{
				{ID: "first", Label: "Audit juridique", Definition: "Audit complet."},
				{ID: "second", Label: "Audit juridique", Definition: "Audit complet."},
				{ID: "third", Label: "Audit juridique", Definition: "Audit complet."},
			},
		},
	}}

	matches := Rank(cat, "audit", nil)
	require.Len(t, matches, 3)
	assert.Equal(t, "first", matches[0].PrestationID)
	assert.Equal(t, "second", matches[1].PrestationID)
	assert.Equal(t, "third", matches[2].PrestationID)
}

func TestRank_RepeatedTokensCountTwice(t *testing.T) {
	cat := &domain.Catalog{Domains: []domain.Domain{
		{
			ID:    "dom",
			Label: "Divers",
			Prestations: []domain.Prestation{
				{ID: "p", Label: "Audit juridique", Definition: "Audit complet."},
			},
		},
	}}

	once := Rank(cat, "audit", nil)
	twice := Rank(cat, "audit audit", nil)
	require.Len(t, once, 1)
	require.Len(t, twice, 1)
	assert.Equal(t, 2*once[0].Score, twice[0].Score)
}

func TestRank_ShortTokensIgnored(t *testing.T) {
	cat := testutil.SmallCatalog()
	// "bail" is 4 runes and scores; "bai" must not.
	matches := Rank(cat, "bai", nil)
	assert.Empty(t, matches)

	matches = Rank(cat, "bail", nil)
	require.NotEmpty(t, matches)
	for _, m := range matches {
		assert.True(t, strings.Contains(strings.ToLower(m.Prestation.Label), "bail") ||
			strings.Contains(strings.ToLower(m.Prestation.Definition), "bail"))
	}
}
