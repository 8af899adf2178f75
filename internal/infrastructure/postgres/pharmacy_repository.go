package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/farmastock/internal/domain/entity"
	"github.com/tu-usuario/farmastock/internal/domain/repository"
)

var _ repository.PharmacyRepository = (*PharmacyRepo)(nil)

// PharmacyRepo implementación del puerto PharmacyRepository sobre PostgreSQL (usable con pool o tx).
type PharmacyRepo struct {
	q Querier
}

// NewPharmacyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPharmacyRepository(q Querier) *PharmacyRepo {
	return &PharmacyRepo{q: q}
}

// Create persiste una nueva farmacia.
func (r *PharmacyRepo) Create(ctx context.Context, pharmacy *entity.Pharmacy) error {
	query := `
		INSERT INTO pharmacies (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query,
		pharmacy.ID, pharmacy.Name, pharmacy.CreatedAt, pharmacy.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pharmacy: %w", err)
	}
	return nil
}

// GetByID obtiene una farmacia por ID.
func (r *PharmacyRepo) GetByID(ctx context.Context, id string) (*entity.Pharmacy, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM pharmacies WHERE id = $1`
	var p entity.Pharmacy
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pharmacy: %w", err)
	}
	return &p, nil
}
