package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/farmastock/internal/domain"
	"github.com/tu-usuario/farmastock/internal/domain/entity"
	"github.com/tu-usuario/farmastock/internal/domain/repository"
)

var _ repository.MedicineRepository = (*MedicineRepo)(nil)

// MedicineRepo implementación del puerto MedicineRepository sobre PostgreSQL (usable con pool o tx).
// Todas las consultas llevan el predicado pharmacy_id.
type MedicineRepo struct {
	q Querier
}

// NewMedicineRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMedicineRepository(q Querier) *MedicineRepo {
	return &MedicineRepo{q: q}
}

// Create persiste un nuevo medicamento.
func (r *MedicineRepo) Create(ctx context.Context, medicine *entity.Medicine) error {
	query := `
		INSERT INTO medicines (id, pharmacy_id, name, manufacturer, image_file, description, reorder_level, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		medicine.ID, medicine.PharmacyID, medicine.Name, medicine.Manufacturer,
		medicine.ImageFile, medicine.Description, medicine.ReorderLevel,
		medicine.CreatedAt, medicine.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert medicine: %w", err)
	}
	return nil
}

// GetByID obtiene un medicamento por ID dentro de la farmacia. Un id de otra
// farmacia devuelve (nil, nil), igual que uno inexistente.
func (r *MedicineRepo) GetByID(ctx context.Context, pharmacyID, id string) (*entity.Medicine, error) {
	query := `
		SELECT id, pharmacy_id, name, manufacturer, image_file, description, reorder_level, created_at, updated_at
		FROM medicines WHERE pharmacy_id = $1 AND id = $2`
	var m entity.Medicine
	err := r.q.QueryRow(ctx, query, pharmacyID, id).Scan(
		&m.ID, &m.PharmacyID, &m.Name, &m.Manufacturer, &m.ImageFile,
		&m.Description, &m.ReorderLevel, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get medicine: %w", err)
	}
	return &m, nil
}

// ListByPharmacy lista los medicamentos de la farmacia ordenados por nombre.
func (r *MedicineRepo) ListByPharmacy(ctx context.Context, pharmacyID string) ([]*entity.Medicine, error) {
	query := `
		SELECT id, pharmacy_id, name, manufacturer, image_file, description, reorder_level, created_at, updated_at
		FROM medicines WHERE pharmacy_id = $1 ORDER BY name`
	rows, err := r.q.Query(ctx, query, pharmacyID)
	if err != nil {
		return nil, fmt.Errorf("list medicines: %w", err)
	}
	defer rows.Close()
	var list []*entity.Medicine
	for rows.Next() {
		var m entity.Medicine
		if err := rows.Scan(&m.ID, &m.PharmacyID, &m.Name, &m.Manufacturer, &m.ImageFile,
			&m.Description, &m.ReorderLevel, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan medicine: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Update actualiza un medicamento. RowsAffected == 0 significa que el id no
// existe o pertenece a otra farmacia: ambos casos son ErrNotFound.
func (r *MedicineRepo) Update(ctx context.Context, medicine *entity.Medicine) error {
	query := `
		UPDATE medicines SET name = $3, manufacturer = $4, image_file = $5, description = $6, reorder_level = $7, updated_at = $8
		WHERE pharmacy_id = $1 AND id = $2`
	cmd, err := r.q.Exec(ctx, query,
		medicine.PharmacyID, medicine.ID, medicine.Name, medicine.Manufacturer,
		medicine.ImageFile, medicine.Description, medicine.ReorderLevel, medicine.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update medicine: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un medicamento de la farmacia. Devuelve ErrReferentialConflict
// si todavía hay lotes de stock que lo referencian.
func (r *MedicineRepo) Delete(ctx context.Context, pharmacyID, id string) error {
	cmd, err := r.q.Exec(ctx,
		`DELETE FROM medicines WHERE pharmacy_id = $1 AND id = $2`, pharmacyID, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferentialConflict
		}
		return fmt.Errorf("delete medicine: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
