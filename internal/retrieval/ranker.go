package retrieval

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/adelaplace/maitre/internal/domain"
)

// MaxMatches bounds the shortlist returned by Rank.
const MaxMatches = 5

// Rank scores every (domain, prestation) pair against the query and
// extracted keywords and returns the top matches by descending score.
// Zero-scoring entries are dropped. Ties keep catalog order.
func Rank(cat *domain.Catalog, query string, keywords []string) []domain.RankedMatch {
	queryTokens := strings.Fields(strings.ToLower(query))

	var matches []domain.RankedMatch
	for _, d := range cat.Domains {
		domainLabel := strings.ToLower(d.Label)
		for _, p := range d.Prestations {
			label := strings.ToLower(p.Label)
			definition := strings.ToLower(p.Definition)

			score := 0
			if anyContained(label, keywords) {
				score += 3
			}
			if anyContained(definition, keywords) {
				score += 2
			}

			// Query tokens contribute once per occurrence; a repeated
			// token repeats its contribution.
			for _, tok := range queryTokens {
				if utf8.RuneCountInString(tok) <= 3 {
					continue
				}
				if strings.Contains(label, tok) {
					score += 4
				}
				if strings.Contains(definition, tok) {
					score += 2
				}
				if strings.Contains(domainLabel, tok) {
					score += 1
				}
			}

			if score > 0 {
				matches = append(matches, domain.RankedMatch{
					DomainID:     d.ID,
					DomainLabel:  d.Label,
					PrestationID: p.ID,
					Prestation:   p,
					Score:        score,
				})
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > MaxMatches {
		matches = matches[:MaxMatches]
	}
	return matches
}

func anyContained(haystack string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(haystack, t) {
			return true
		}
	}
	return false
}
