package repository

import (
	"context"
	"errors"

	"github.com/adelaplace/maitre/internal/domain"
)

// ErrNotFound is returned when a looked-up entity does not exist.
var ErrNotFound = errors.New("not found")

// DefaultUrgencyFactor is the multiplier applied to base prices when a
// request is flagged urgent.
const DefaultUrgencyFactor = 1.5

// CatalogProvider exposes the prestation catalog and the urgency
// multiplier. Implementations must return identical data on repeated
// calls within a process lifetime.
type CatalogProvider interface {
	Catalog(ctx context.Context) (*domain.Catalog, error)
	UrgencyFactor() float64
}
