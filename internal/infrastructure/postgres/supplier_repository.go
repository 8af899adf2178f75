package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/farmastock/internal/domain"
	"github.com/tu-usuario/farmastock/internal/domain/entity"
	"github.com/tu-usuario/farmastock/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, pharmacy_id, name, contact_person, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		supplier.ID, supplier.PharmacyID, supplier.Name, supplier.ContactPerson,
		supplier.Phone, supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID dentro de la farmacia.
func (r *SupplierRepo) GetByID(ctx context.Context, pharmacyID, id string) (*entity.Supplier, error) {
	query := `
		SELECT id, pharmacy_id, name, contact_person, phone, created_at, updated_at
		FROM suppliers WHERE pharmacy_id = $1 AND id = $2`
	var s entity.Supplier
	err := r.q.QueryRow(ctx, query, pharmacyID, id).Scan(
		&s.ID, &s.PharmacyID, &s.Name, &s.ContactPerson, &s.Phone, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// ListByPharmacy lista los proveedores de la farmacia ordenados por nombre.
func (r *SupplierRepo) ListByPharmacy(ctx context.Context, pharmacyID string) ([]*entity.Supplier, error) {
	query := `
		SELECT id, pharmacy_id, name, contact_person, phone, created_at, updated_at
		FROM suppliers WHERE pharmacy_id = $1 ORDER BY name`
	rows, err := r.q.Query(ctx, query, pharmacyID)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.PharmacyID, &s.Name, &s.ContactPerson, &s.Phone,
			&s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza un proveedor. RowsAffected == 0 ⇒ ErrNotFound (id inexistente o de otra farmacia).
func (r *SupplierRepo) Update(ctx context.Context, supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers SET name = $3, contact_person = $4, phone = $5, updated_at = $6
		WHERE pharmacy_id = $1 AND id = $2`
	cmd, err := r.q.Exec(ctx, query,
		supplier.PharmacyID, supplier.ID, supplier.Name, supplier.ContactPerson,
		supplier.Phone, supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un proveedor de la farmacia. ErrReferentialConflict si hay
// lotes que lo referencian.
func (r *SupplierRepo) Delete(ctx context.Context, pharmacyID, id string) error {
	cmd, err := r.q.Exec(ctx,
		`DELETE FROM suppliers WHERE pharmacy_id = $1 AND id = $2`, pharmacyID, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferentialConflict
		}
		return fmt.Errorf("delete supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
