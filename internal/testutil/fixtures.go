package testutil

import (
	"context"

	"github.com/adelaplace/maitre/internal/domain"
)

// StaticCatalog is a CatalogProvider over a fixed in-memory catalog.
type StaticCatalog struct {
	Cat    *domain.Catalog
	Factor float64
}

func (s *StaticCatalog) Catalog(ctx context.Context) (*domain.Catalog, error) {
	return s.Cat, nil
}

func (s *StaticCatalog) UrgencyFactor() float64 {
	if s.Factor == 0 {
		return 1.5
	}
	return s.Factor
}

// SmallCatalog returns a compact three-domain catalog for tests that
// need predictable ranking behavior.
func SmallCatalog() *domain.Catalog {
	return &domain.Catalog{Domains: []domain.Domain{
		{
			ID:    "droit_immobilier_commercial",
			Label: "Droit Immobilier & Commercial",
			Prestations: []domain.Prestation{
				{ID: "redaction_bail_commercial", Label: "Rédaction de bail commercial", Definition: "Rédaction d'un bail commercial protégeant vos intérêts.", Tarif: 900},
				{ID: "contentieux_locatif", Label: "Contentieux locatif", Definition: "Représentation dans un litige locatif.", Tarif: 1500},
			},
		},
		{
			ID:    "droit_de_la_famille",
			Label: "Droit de la Famille",
			Prestations: []domain.Prestation{
				{ID: "procedure_divorce_amiable", Label: "Procédure de divorce à l'amiable", Definition: "Divorce par consentement mutuel.", Tarif: 1500},
			},
		},
		{
			ID:    "droit_du_travail",
			Label: "Droit du Travail",
			Prestations: []domain.Prestation{
				{ID: "procedure_licenciement", Label: "Procédure de licenciement", Definition: "Accompagnement dans une procédure de licenciement.", Tarif: 1200},
			},
		},
	}}
}
