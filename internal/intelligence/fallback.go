package intelligence

import (
	"strings"

	"github.com/adelaplace/maitre/internal/domain"
	"github.com/adelaplace/maitre/internal/retrieval"
)

// lexicalJustification explains shortlist entries produced without
// the language model.
const lexicalJustification = "Correspondance lexicale avec votre demande"

// DeterministicAnalysis produces an AnalysisResult without the model:
// keyword extraction, lexical ranking, and the templated clarification
// questions. Fully deterministic for a given query and catalog.
func DeterministicAnalysis(query string, cat *domain.Catalog) *domain.AnalysisResult {
	keywords := retrieval.ExtractKeywords(query)
	matches := retrieval.Rank(cat, query, keywords)

	recs := make([]domain.Recommendation, 0, len(matches))
	for _, m := range matches {
		recs = append(recs, domain.Recommendation{
			DomainID:       m.DomainID,
			PrestationID:   m.PrestationID,
			RelevanceScore: clampRelevance(m.Score),
			Justification:  lexicalJustification,
		})
	}

	return &domain.AnalysisResult{
		Recommendations:        recs,
		ClarificationQuestions: clarificationQuestions(matches, query),
		ClientType:             domain.ClientUnknown,
	}
}

// clarificationQuestions splits the templated clarification text into
// individual questions. The first line of a multi-line template is an
// intro, not a question.
func clarificationQuestions(matches []domain.RankedMatch, query string) []string {
	lines := strings.Split(retrieval.Clarify(matches, query), "\n")
	if len(lines) == 1 {
		return lines
	}
	questions := make([]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		questions = append(questions, strings.TrimPrefix(line, "- "))
	}
	return questions
}

// clampRelevance maps an unbounded lexical score onto the 1-10
// relevance scale used by model recommendations.
func clampRelevance(score int) int {
	if score < 1 {
		return 1
	}
	if score > 10 {
		return 10
	}
	return score
}
