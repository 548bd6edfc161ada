package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/adelaplace/maitre/internal/domain"
)

// SQLiteCatalogRepo implements CatalogProvider using a SQLite database.
type SQLiteCatalogRepo struct {
	db     *sql.DB
	factor float64
}

// NewSQLiteCatalogRepo creates a new SQLiteCatalogRepo.
func NewSQLiteCatalogRepo(db *sql.DB) *SQLiteCatalogRepo {
	return &SQLiteCatalogRepo{db: db, factor: DefaultUrgencyFactor}
}

func (r *SQLiteCatalogRepo) UrgencyFactor() float64 {
	return r.factor
}

// Catalog loads all domains and their prestations in catalog order.
func (r *SQLiteCatalogRepo) Catalog(ctx context.Context) (*domain.Catalog, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, label FROM domains ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("listing domains: %w", err)
	}
	defer rows.Close()

	var cat domain.Catalog
	for rows.Next() {
		var d domain.Domain
		if err := rows.Scan(&d.ID, &d.Label); err != nil {
			return nil, fmt.Errorf("scanning domain row: %w", err)
		}
		cat.Domains = append(cat.Domains, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating domains: %w", err)
	}

	for i := range cat.Domains {
		prestations, err := r.listPrestations(ctx, cat.Domains[i].ID)
		if err != nil {
			return nil, err
		}
		cat.Domains[i].Prestations = prestations
	}

	return &cat, nil
}

// GetPrestation resolves a single prestation by its composite key.
func (r *SQLiteCatalogRepo) GetPrestation(ctx context.Context, domainID, prestationID string) (*domain.Prestation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, label, definition, tarif FROM prestations
		 WHERE domain_id = ? AND id = ?`, domainID, prestationID)

	var p domain.Prestation
	if err := row.Scan(&p.ID, &p.Label, &p.Definition, &p.Tarif); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("prestation %s/%s: %w", domainID, prestationID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning prestation: %w", err)
	}
	return &p, nil
}

func (r *SQLiteCatalogRepo) listPrestations(ctx context.Context, domainID string) ([]domain.Prestation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, label, definition, tarif FROM prestations
		 WHERE domain_id = ? ORDER BY position`, domainID)
	if err != nil {
		return nil, fmt.Errorf("listing prestations for %s: %w", domainID, err)
	}
	defer rows.Close()

	var prestations []domain.Prestation
	for rows.Next() {
		var p domain.Prestation
		if err := rows.Scan(&p.ID, &p.Label, &p.Definition, &p.Tarif); err != nil {
			return nil, fmt.Errorf("scanning prestation row: %w", err)
		}
		prestations = append(prestations, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating prestations: %w", err)
	}
	return prestations, nil
}

// Seed inserts the default catalog if the domains table is empty.
func Seed(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM domains`).Scan(&count); err != nil {
		return fmt.Errorf("counting domains: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting seed transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	cat := DefaultCatalog()
	for di, d := range cat.Domains {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO domains (id, label, position) VALUES (?, ?, ?)`,
			d.ID, d.Label, di); err != nil {
			return fmt.Errorf("inserting domain %s: %w", d.ID, err)
		}
		for pi, p := range d.Prestations {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO prestations (domain_id, id, label, definition, tarif, position)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				d.ID, p.ID, p.Label, p.Definition, p.Tarif, pi); err != nil {
				return fmt.Errorf("inserting prestation %s/%s: %w", d.ID, p.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed: %w", err)
	}
	committed = true
	return nil
}
