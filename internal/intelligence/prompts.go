package intelligence

import (
	"fmt"
	"strings"

	"github.com/adelaplace/maitre/internal/domain"
)

// historyWindow caps how many trailing conversation messages are
// embedded in the analysis prompt.
const historyWindow = 5

// analysisPromptTemplate frames the model as a legal intake expert and
// pins the exact JSON output schema. The catalog and conversation are
// substituted in before each call.
const analysisPromptTemplate = `Tu es un assistant juridique expert. Ton rôle est d'identifier la ou les prestations juridiques les plus appropriées selon la demande du client.

PRESTATIONS DISPONIBLES:
%CATALOGUE%

HISTORIQUE DE CONVERSATION:
%HISTORIQUE%

NOUVELLE DEMANDE: %DEMANDE%

Analyse cette demande et réponds au format JSON suivant:
{
    "prestations_recommandees": [
        {
            "domaine_id": "id_du_domaine",
            "prestation_id": "id_de_la_prestation",
            "score_pertinence": 1-10,
            "justification": "pourquoi cette prestation correspond"
        }
    ],
    "questions_clarification": [
        "question 1 pour affiner le besoin",
        "question 2 si nécessaire"
    ],
    "analyse_situation": "résumé de la situation du client",
    "urgence_detectee": true/false,
    "type_client": "particulier/entreprise/indetermine"
}

Sois précis et ne recommande que les prestations vraiment pertinentes.`

// BuildAnalysisPrompt composes the full instruction prompt for one
// analysis turn: catalog block, trailing history, and the new query.
func BuildAnalysisPrompt(cat *domain.Catalog, history []domain.Message, query string) string {
	prompt := strings.Replace(analysisPromptTemplate, "%CATALOGUE%", formatCatalogBlock(cat), 1)
	prompt = strings.Replace(prompt, "%HISTORIQUE%", formatHistoryBlock(history), 1)
	return strings.Replace(prompt, "%DEMANDE%", query, 1)
}

// formatCatalogBlock flattens the catalog into one line per domain
// label with one indented line per prestation.
func formatCatalogBlock(cat *domain.Catalog) string {
	var b strings.Builder
	for _, d := range cat.Domains {
		fmt.Fprintf(&b, "\n%s:\n", d.Label)
		for _, p := range d.Prestations {
			fmt.Fprintf(&b, "  - %s (%d€): %s\n", p.Label, p.Tarif, p.Definition)
		}
	}
	return b.String()
}

// formatHistoryBlock serializes at most the last historyWindow
// messages as "role: content" lines, in original order.
func formatHistoryBlock(history []domain.Message) string {
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	var b strings.Builder
	for _, msg := range history {
		fmt.Fprintf(&b, "%s: %s\n", msg.Role, msg.Content)
	}
	return b.String()
}
