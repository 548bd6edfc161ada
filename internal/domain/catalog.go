package domain

// Prestation is a single priced legal service offering.
type Prestation struct {
	ID         string
	Label      string
	Definition string
	Tarif      int // base price in euros, before any urgency adjustment
}

// Domain groups related prestations under a display label.
// Prestations keep their catalog order for stable display.
type Domain struct {
	ID          string
	Label       string
	Prestations []Prestation
}

// Catalog is the full set of domains and prestations, read-only
// reference data for the lifetime of a session. Domain order is the
// catalog's natural enumeration order and matters for tie-breaking
// in the lexical ranker.
type Catalog struct {
	Domains []Domain
}

// Find resolves a (domain, prestation) pair. A prestation ID is only
// unique within its domain, so both keys are required.
func (c *Catalog) Find(domainID, prestationID string) (*Domain, *Prestation, bool) {
	for i := range c.Domains {
		d := &c.Domains[i]
		if d.ID != domainID {
			continue
		}
		for j := range d.Prestations {
			if d.Prestations[j].ID == prestationID {
				return d, &d.Prestations[j], true
			}
		}
		return nil, nil, false
	}
	return nil, nil, false
}

// RankedMatch is one lexical ranker hit: a prestation snapshot plus the
// additive score it earned against the query. Produced fresh per query,
// never persisted.
type RankedMatch struct {
	DomainID     string
	DomainLabel  string
	PrestationID string
	Prestation   Prestation
	Score        int
}
