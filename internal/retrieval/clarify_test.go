package retrieval

import (
	"strings"
	"testing"

	"github.com/adelaplace/maitre/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func match(domainLabel, prestationID string) domain.RankedMatch {
	return domain.RankedMatch{
		DomainLabel:  domainLabel,
		PrestationID: prestationID,
		Score:        1,
	}
}

func TestClarify_NoMatches(t *testing.T) {
	text := Clarify(nil, "quelque chose")
	assert.Contains(t, text, "pas trouvé de prestations")
	assert.NotContains(t, text, "\n")
}

func TestClarify_FewDomains(t *testing.T) {
	matches := []domain.RankedMatch{
		match("Droit du Travail", "a"),
		match("Droit du Travail", "b"),
		match("Droit Pénal", "c"),
	}

	text := Clarify(matches, "licenciement")
	lines := strings.Split(text, "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "identifié quelques prestations")
	assert.Contains(t, text, "urgence")
	assert.Contains(t, text, "démarches juridiques")
}

func TestClarify_ManyDomains(t *testing.T) {
	matches := []domain.RankedMatch{
		match("Droit du Travail", "a"),
		match("Droit Pénal", "b"),
		match("Droit de la Famille", "c"),
		match("Droit des Affaires", "d"),
	}

	text := Clarify(matches, "problème")
	lines := strings.Split(text, "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "mieux vous orienter")

	// Only the first three distinct domains are listed, in the order
	// they appear in the matches.
	assert.Contains(t, lines[1], "Droit du Travail, Droit Pénal, Droit de la Famille")
	assert.NotContains(t, lines[1], "Droit des Affaires")
	assert.Contains(t, text, "particulier ou une entreprise")
}

func TestClarify_DistinctDomainsCountedOnce(t *testing.T) {
	matches := []domain.RankedMatch{
		match("Droit du Travail", "a"),
		match("Droit du Travail", "b"),
		match("Droit Pénal", "c"),
		match("Droit Pénal", "d"),
		match("Droit du Travail", "e"),
	}

	// Two distinct domains: the shortlist branch, not the domain
	// disambiguation branch.
	text := Clarify(matches, "x")
	assert.Contains(t, text, "identifié quelques prestations")
}

func TestClarify_Deterministic(t *testing.T) {
	matches := []domain.RankedMatch{
		match("Droit du Travail", "a"),
		match("Droit Pénal", "b"),
		match("Droit de la Famille", "c"),
	}
	assert.Equal(t, Clarify(matches, "q"), Clarify(matches, "q"))
}
