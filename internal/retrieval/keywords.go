// Package retrieval implements the local lexical search over the
// prestation catalog: keyword extraction, additive scoring, and the
// clarification prompts used when no language model is available.
package retrieval

import "strings"

// LegalVocabulary is the fixed set of legal terms the extractor looks
// for in user queries. Matching is case-insensitive substring
// containment, so multi-word terms match as written.
var LegalVocabulary = []string{
	"contrat", "bail", "commercial", "travail", "licenciement", "création", "société",
	"immobilier", "divorce", "succession", "pénal", "défense", "contentieux",
	"marque", "brevet", "propriété intellectuelle", "rgpd", "données",
	"construction", "liquidation", "redressement", "sauvegarde",
	"association", "fondation", "compliance", "fusion", "acquisition",
}

// ExtractKeywords returns the vocabulary terms present in the text,
// in vocabulary order. Never fails; returns nil when nothing matches.
func ExtractKeywords(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, term := range LegalVocabulary {
		if strings.Contains(lower, term) {
			found = append(found, term)
		}
	}
	return found
}
