package domain

// ClientType classifies who is asking: a private individual, a
// business, or not yet determinable from the conversation.
type ClientType string

const (
	ClientIndividual ClientType = "particulier"
	ClientBusiness   ClientType = "entreprise"
	ClientUnknown    ClientType = "indetermine"
)

// ParseClientType normalizes a free-form client type string. Anything
// unrecognized maps to ClientUnknown; the producer is an untrusted
// text generator.
func ParseClientType(s string) ClientType {
	switch ClientType(s) {
	case ClientIndividual, ClientBusiness:
		return ClientType(s)
	default:
		return ClientUnknown
	}
}

// Recommendation is one prestation suggested by the analysis, with a
// 1-10 relevance score and a short justification. The (DomainID,
// PrestationID) pair should resolve against the catalog but may
// dangle, since the producer is external.
type Recommendation struct {
	DomainID       string
	PrestationID   string
	RelevanceScore int
	Justification  string
}

// AnalysisResult is the structured outcome of one analysis turn.
type AnalysisResult struct {
	Recommendations        []Recommendation
	ClarificationQuestions []string
	SituationSummary       string
	UrgencyDetected        bool
	ClientType             ClientType
}
