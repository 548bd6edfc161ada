package formatter

import (
	"fmt"
	"strings"

	"github.com/adelaplace/maitre/internal/domain"
	"github.com/adelaplace/maitre/internal/service"
)

// UrgencyBanner is shown once above the cards when urgency was
// detected in the conversation.
func UrgencyBanner() string {
	return StyleAmber.Render("⚠ Urgence détectée - Tarifs majorés de 50%")
}

// PriceTag renders the resolved display price, amber when urgent.
func PriceTag(tarif int, urgent bool, factor float64) string {
	_, label := service.DisplayPrice(tarif, urgent, factor)
	if urgent {
		return StyleAmber.Render(label)
	}
	return StyleGreen.Render(label)
}

// PrestationCard renders one prestation with its domain, price, and
// description.
func PrestationCard(domainLabel string, p domain.Prestation, urgent bool, factor float64) string {
	var b strings.Builder
	b.WriteString(Bold(p.Label))
	b.WriteString("\n")
	b.WriteString(PriceTag(p.Tarif, urgent, factor))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Domaine :"), domainLabel))
	b.WriteString(fmt.Sprintf("%s %s", Dim("Description :"), wrapText(p.Definition, cardWrapWidth)))
	return RenderBox("", b.String())
}

// RecommendationCards renders the current shortlist. Recommendations
// whose identifiers don't resolve in the catalog are skipped.
func RecommendationCards(cat *domain.Catalog, recs []domain.Recommendation, urgent bool, factor float64) string {
	var b strings.Builder
	if urgent {
		b.WriteString(UrgencyBanner())
		b.WriteString("\n\n")
	}
	for _, rec := range recs {
		d, p, ok := cat.Find(rec.DomainID, rec.PrestationID)
		if !ok {
			continue
		}
		b.WriteString(PrestationCard(d.Label, *p, urgent, factor))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  %s %s\n",
			Dim(fmt.Sprintf("Pertinence %d/10 :", rec.RelevanceScore)),
			Dim(rec.Justification)))
		b.WriteString("\n")
	}
	return b.String()
}

// PopularPrestations renders the pinned entries shown before any
// conversation has produced a shortlist.
func PopularPrestations(cat *domain.Catalog, pairs [][2]string) string {
	var b strings.Builder
	b.WriteString(Header("Prestations populaires"))
	b.WriteString("\n")
	for _, pair := range pairs {
		d, p, ok := cat.Find(pair[0], pair[1])
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			StyleGreen.Render(fmt.Sprintf("%d€", p.Tarif)),
			Bold(p.Label),
			Dim("("+d.Label+")")))
	}
	return b.String()
}

// CatalogListing renders the full catalog grouped by domain.
func CatalogListing(cat *domain.Catalog, urgent bool, factor float64) string {
	var b strings.Builder
	for _, d := range cat.Domains {
		b.WriteString(Header(d.Label))
		b.WriteString("\n")
		for _, p := range d.Prestations {
			b.WriteString(fmt.Sprintf("  %s  %s\n", PriceTag(p.Tarif, urgent, factor), Bold(p.Label)))
			b.WriteString(fmt.Sprintf("      %s\n", Dim(p.Definition)))
		}
		b.WriteString("\n")
	}
	return b.String()
}
