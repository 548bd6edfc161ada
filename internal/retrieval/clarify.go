package retrieval

import (
	"fmt"
	"strings"

	"github.com/adelaplace/maitre/internal/domain"
)

// noMatchClarification is returned when the ranker found nothing.
const noMatchClarification = "Je n'ai pas trouvé de prestations correspondant exactement à votre demande. Pouvez-vous me donner plus de détails sur votre situation juridique ?"

// Clarify produces the follow-up question text for a ranker shortlist.
// With more than two distinct domains in the matches it asks the user
// to pick a domain; otherwise it asks for detail on the shortlist.
func Clarify(matches []domain.RankedMatch, query string) string {
	if len(matches) == 0 {
		return noMatchClarification
	}

	domains := distinctDomains(matches)

	if len(domains) > 2 {
		listed := domains
		if len(listed) > 3 {
			listed = listed[:3]
		}
		return strings.Join([]string{
			"Pour mieux vous orienter, pouvez-vous me préciser :",
			fmt.Sprintf("- Votre situation concerne-t-elle plutôt : %s ?", strings.Join(listed, ", ")),
			"- S'agit-il d'une situation urgente ?",
			"- Êtes-vous un particulier ou une entreprise ?",
		}, "\n")
	}

	return strings.Join([]string{
		"J'ai identifié quelques prestations qui pourraient vous convenir. Pour affiner :",
		"- Pouvez-vous me donner plus de détails sur votre situation ?",
		"- Y a-t-il une urgence particulière ?",
		"- Avez-vous déjà entamé des démarches juridiques ?",
	}, "\n")
}

// distinctDomains returns the distinct domain labels across the
// matches, in first-encountered order for deterministic output.
func distinctDomains(matches []domain.RankedMatch) []string {
	seen := make(map[string]bool, len(matches))
	var labels []string
	for _, m := range matches {
		if !seen[m.DomainLabel] {
			seen[m.DomainLabel] = true
			labels = append(labels, m.DomainLabel)
		}
	}
	return labels
}
