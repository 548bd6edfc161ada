// Package service owns the per-session conversation loop: turn
// handling, recommendation state, and price display rules.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/adelaplace/maitre/internal/domain"
	"github.com/adelaplace/maitre/internal/intelligence"
	"github.com/adelaplace/maitre/internal/repository"
	"github.com/google/uuid"
)

// questionsHeader precedes the numbered clarification list in the
// assistant reply.
const questionsHeader = "Questions pour mieux vous aider :"

// Intake drives one conversation turn at a time. Sessions are passed
// in explicitly; the service holds no per-session state, so distinct
// sessions may run turns in parallel. Turns within one session must be
// submitted serially.
type Intake struct {
	catalog  repository.CatalogProvider
	analyzer intelligence.AnalyzeService
}

// NewIntake creates an Intake over the given catalog and analyzer.
func NewIntake(catalog repository.CatalogProvider, analyzer intelligence.AnalyzeService) *Intake {
	return &Intake{catalog: catalog, analyzer: analyzer}
}

// HandleTurn processes one user message: analyze, update the session's
// recommendation state, and append the user/assistant message pair.
// Both messages are appended together after analysis, so a cancelled
// turn never leaves an orphaned user message.
//
// The returned error is an advisory notice about a degraded analysis;
// the session is updated and the result is valid either way.
func (s *Intake) HandleTurn(ctx context.Context, sess *domain.Session, userText string) (*domain.AnalysisResult, error) {
	cat, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	userMsg := domain.Message{Role: domain.RoleUser, Content: userText}
	history := make([]domain.Message, 0, len(sess.Messages)+1)
	history = append(history, sess.Messages...)
	history = append(history, userMsg)

	result, notice := s.analyzer.Analyze(ctx, userText, history, cat)

	// Drop recommendations whose identifiers don't resolve in the
	// catalog; the producer is untrusted. A shortlist that was only
	// dangling references counts as empty and keeps the prior state.
	kept := filterDangling(result.Recommendations, cat)
	if len(kept) > 0 {
		sess.CurrentRecommendations = kept
		sess.UrgencyFlag = result.UrgencyDetected
	}

	sess.Messages = append(sess.Messages, userMsg,
		domain.Message{Role: domain.RoleAssistant, Content: BuildAssistantText(result)})

	return result, notice
}

// Reset clears the session for a new conversation.
func (s *Intake) Reset(sess *domain.Session) {
	sess.ID = uuid.NewString()
	sess.Messages = nil
	sess.CurrentRecommendations = nil
	sess.UrgencyFlag = false
}

// BuildAssistantText renders an analysis result as the assistant
// reply: situation summary, then a header and 1-based numbered
// clarification questions, blocks separated by blank lines.
func BuildAssistantText(result *domain.AnalysisResult) string {
	var parts []string

	if result.SituationSummary != "" {
		parts = append(parts, "Analyse de votre situation : "+result.SituationSummary)
	}

	if len(result.ClarificationQuestions) > 0 {
		parts = append(parts, questionsHeader)
		for i, q := range result.ClarificationQuestions {
			parts = append(parts, fmt.Sprintf("%d. %s", i+1, q))
		}
	}

	return strings.Join(parts, "\n\n")
}

func filterDangling(recs []domain.Recommendation, cat *domain.Catalog) []domain.Recommendation {
	var kept []domain.Recommendation
	for _, rec := range recs {
		if _, _, ok := cat.Find(rec.DomainID, rec.PrestationID); ok {
			kept = append(kept, rec)
		}
	}
	return kept
}
