package intelligence

import (
	"context"
	"fmt"

	"github.com/adelaplace/maitre/internal/domain"
	"github.com/adelaplace/maitre/internal/llm"
)

// AnalyzeService turns a user query plus conversation history into a
// structured recommendation result. The primary path goes through the
// language model; without a configured client it degrades to the
// deterministic lexical path.
type AnalyzeService interface {
	// Analyze never returns a nil result. When the model call or its
	// response parsing fails, the result is the safe default and the
	// returned error is an advisory notice for display, not a fault
	// to propagate.
	Analyze(ctx context.Context, query string, history []domain.Message, cat *domain.Catalog) (*domain.AnalysisResult, error)
}

type analyzeService struct {
	client llm.Client
}

// NewAnalyzeService creates an AnalyzeService. A nil client selects
// the deterministic lexical path.
func NewAnalyzeService(client llm.Client) AnalyzeService {
	return &analyzeService{client: client}
}

// analysisPayload is the JSON structure expected from the model.
type analysisPayload struct {
	Prestations []recommendationPayload `json:"prestations_recommandees"`
	Questions   []string                `json:"questions_clarification"`
	Analyse     string                  `json:"analyse_situation"`
	Urgence     bool                    `json:"urgence_detectee"`
	TypeClient  string                  `json:"type_client"`
}

type recommendationPayload struct {
	DomaineID     string `json:"domaine_id"`
	PrestationID  string `json:"prestation_id"`
	Score         int    `json:"score_pertinence"`
	Justification string `json:"justification"`
}

func (s *analyzeService) Analyze(ctx context.Context, query string, history []domain.Message, cat *domain.Catalog) (*domain.AnalysisResult, error) {
	if s.client == nil {
		return DeterministicAnalysis(query, cat), nil
	}

	prompt := BuildAnalysisPrompt(cat, history, query)

	resp, err := s.client.Complete(ctx, llm.CompletionRequest{Prompt: prompt})
	if err != nil {
		return SafeDefault(), fmt.Errorf("analyse LLM: %w", err)
	}

	parsed, err := llm.ExtractJSON[analysisPayload](resp.Text, validateAnalysisPayload)
	if err != nil {
		return SafeDefault(), fmt.Errorf("analyse LLM: %w", err)
	}

	return mapPayload(parsed), nil
}

// validateAnalysisPayload enforces the schema shape. Any mismatch
// rejects the whole payload rather than salvaging parts of it.
func validateAnalysisPayload(p analysisPayload) error {
	for i, rec := range p.Prestations {
		if rec.DomaineID == "" || rec.PrestationID == "" {
			return fmt.Errorf("recommendation %d is missing its identifiers", i)
		}
		if rec.Score < 1 || rec.Score > 10 {
			return fmt.Errorf("recommendation %d has relevance score %d, want 1-10", i, rec.Score)
		}
	}
	return nil
}

// mapPayload translates wire field names into the domain result.
// Client type is the only coerced value; the producer is untrusted.
func mapPayload(p analysisPayload) *domain.AnalysisResult {
	recs := make([]domain.Recommendation, 0, len(p.Prestations))
	for _, rec := range p.Prestations {
		recs = append(recs, domain.Recommendation{
			DomainID:       rec.DomaineID,
			PrestationID:   rec.PrestationID,
			RelevanceScore: rec.Score,
			Justification:  rec.Justification,
		})
	}
	return &domain.AnalysisResult{
		Recommendations:        recs,
		ClarificationQuestions: p.Questions,
		SituationSummary:       p.Analyse,
		UrgencyDetected:        p.Urgence,
		ClientType:             domain.ParseClientType(p.TypeClient),
	}
}

// SafeDefault is the result returned when the external model fails:
// no recommendations, a retry prompt, and an unknown client type. It
// keeps the conversation loop alive instead of surfacing a fault.
func SafeDefault() *domain.AnalysisResult {
	return &domain.AnalysisResult{
		ClarificationQuestions: []string{"Pouvez-vous reformuler votre demande ?"},
		SituationSummary:       "Erreur d'analyse",
		ClientType:             domain.ClientUnknown,
	}
}
