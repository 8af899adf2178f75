package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/tu-usuario/farmastock/internal/application/dto"
	"github.com/tu-usuario/farmastock/internal/application/usecase"
	"github.com/tu-usuario/farmastock/internal/domain"
	"github.com/tu-usuario/farmastock/pkg/logger"
)

// SupplierHandler maneja el CRUD de proveedores.
type SupplierHandler struct {
	uc    *usecase.SupplierUseCase
	store *session.Store
	log   *logger.Logger
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase, store *session.Store, log *logger.Logger) *SupplierHandler {
	return &SupplierHandler{uc: uc, store: store, log: log}
}

// List GET /suppliers — proveedores de la farmacia con formulario de alta.
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	sc := CurrentSession(c)
	items, err := h.uc.List(c.Context(), sc.PharmacyID)
	if err != nil {
		h.log.Error().Err(err).Str("pharmacy_id", sc.PharmacyID).Msg("listar proveedores")
		items = nil
	}
	data := fiber.Map{
		"Title":     "Proveedores",
		"Session":   sc,
		"Suppliers": items,
		"Flash":     PopFlash(c, h.store),
	}
	if err != nil {
		data["Notice"] = "No se pudieron cargar los proveedores"
	}
	return c.Render("suppliers", data)
}

// Create POST /suppliers — alta de proveedor.
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	sc := CurrentSession(c)
	var in dto.SupplierForm
	if err := c.BodyParser(&in); err != nil {
		SetFlash(c, h.store, "error", "Formulario inválido")
		return c.Redirect("/suppliers", fiber.StatusSeeOther)
	}
	if err := h.uc.Create(c.Context(), sc.PharmacyID, in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			SetFlash(c, h.store, "error", "El nombre es requerido")
		} else {
			h.log.Error().Err(err).Msg("crear proveedor")
			SetFlash(c, h.store, "error", "No se pudo guardar el proveedor")
		}
		return c.Redirect("/suppliers", fiber.StatusSeeOther)
	}
	SetFlash(c, h.store, "success", "Proveedor registrado")
	return c.Redirect("/suppliers", fiber.StatusSeeOther)
}

// ShowEdit GET /suppliers/edit/:id — formulario de edición.
func (h *SupplierHandler) ShowEdit(c *fiber.Ctx) error {
	sc := CurrentSession(c)
	item, err := h.uc.GetByID(c.Context(), sc.PharmacyID, c.Params("id"))
	if err != nil {
		h.log.Error().Err(err).Msg("cargar proveedor")
	}
	if item == nil {
		SetFlash(c, h.store, "error", "Proveedor no encontrado")
		return c.Redirect("/suppliers", fiber.StatusSeeOther)
	}
	return c.Render("supplier_edit", fiber.Map{
		"Title":    "Editar proveedor",
		"Session":  sc,
		"Supplier": item,
		"Flash":    PopFlash(c, h.store),
	})
}

// Update POST /suppliers/edit/:id — edición de proveedor.
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	sc := CurrentSession(c)
	id := c.Params("id")
	var in dto.SupplierForm
	if err := c.BodyParser(&in); err != nil {
		SetFlash(c, h.store, "error", "Formulario inválido")
		return c.Redirect("/suppliers/edit/"+id, fiber.StatusSeeOther)
	}
	if err := h.uc.Update(c.Context(), sc.PharmacyID, id, in); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			SetFlash(c, h.store, "error", "Proveedor no encontrado")
		case errors.Is(err, domain.ErrInvalidInput):
			SetFlash(c, h.store, "error", "El nombre es requerido")
			return c.Redirect("/suppliers/edit/"+id, fiber.StatusSeeOther)
		default:
			h.log.Error().Err(err).Msg("actualizar proveedor")
			SetFlash(c, h.store, "error", "No se pudo actualizar el proveedor")
		}
		return c.Redirect("/suppliers", fiber.StatusSeeOther)
	}
	SetFlash(c, h.store, "success", "Proveedor actualizado")
	return c.Redirect("/suppliers", fiber.StatusSeeOther)
}

// Delete POST /suppliers/delete/:id.
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	sc := CurrentSession(c)
	if err := h.uc.Delete(c.Context(), sc.PharmacyID, c.Params("id")); err != nil {
		switch {
		case errors.Is(err, domain.ErrReferentialConflict):
			SetFlash(c, h.store, "error", "No se puede eliminar: hay lotes de stock que referencian este proveedor")
		case errors.Is(err, domain.ErrNotFound):
			SetFlash(c, h.store, "error", "Proveedor no encontrado")
		default:
			h.log.Error().Err(err).Msg("eliminar proveedor")
			SetFlash(c, h.store, "error", "No se pudo eliminar el proveedor")
		}
		return c.Redirect("/suppliers", fiber.StatusSeeOther)
	}
	SetFlash(c, h.store, "success", "Proveedor eliminado")
	return c.Redirect("/suppliers", fiber.StatusSeeOther)
}
