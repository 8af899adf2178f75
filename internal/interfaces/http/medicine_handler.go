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

// MedicineHandler maneja el catálogo público y el CRUD de medicamentos.
type MedicineHandler struct {
	uc    *usecase.MedicineUseCase
	store *session.Store
	log   *logger.Logger
}

// NewMedicineHandler construye el handler.
func NewMedicineHandler(uc *usecase.MedicineUseCase, store *session.Store, log *logger.Logger) *MedicineHandler {
	return &MedicineHandler{uc: uc, store: store, log: log}
}

// Home GET / — página pública. Con sesión muestra el catálogo de la farmacia;
// sin sesión, la portada con enlaces a login/registro.
func (h *MedicineHandler) Home(c *fiber.Ctx) error {
	sc := SessionFromStore(c, h.store)
	data := fiber.Map{
		"Title":   "Inicio",
		"Session": sc,
		"Flash":   PopFlash(c, h.store),
	}
	if sc != nil {
		items, err := h.uc.List(c.Context(), sc.PharmacyID)
		if err != nil {
			// Degradar a catálogo vacío con aviso, nunca tumbar la petición
			h.log.Error().Err(err).Str("pharmacy_id", sc.PharmacyID).Msg("listar catálogo")
			data["Notice"] = "No se pudo cargar el catálogo"
			items = nil
		}
		data["Medicines"] = items
	}
	return c.Render("home", data)
}

// List GET /medicines — catálogo de la farmacia con formulario de alta.
func (h *MedicineHandler) List(c *fiber.Ctx) error {
	sc := CurrentSession(c)
	items, err := h.uc.List(c.Context(), sc.PharmacyID)
	if err != nil {
		h.log.Error().Err(err).Str("pharmacy_id", sc.PharmacyID).Msg("listar medicamentos")
		items = nil
	}
	data := fiber.Map{
		"Title":     "Medicamentos",
		"Session":   sc,
		"Medicines": items,
		"Flash":     PopFlash(c, h.store),
	}
	if err != nil {
		data["Notice"] = "No se pudieron cargar los medicamentos"
	}
	return c.Render("medicines", data)
}

// Create POST /medicines — alta de medicamento.
func (h *MedicineHandler) Create(c *fiber.Ctx) error {
	sc := CurrentSession(c)
	var in dto.MedicineForm
	if err := c.BodyParser(&in); err != nil {
		SetFlash(c, h.store, "error", "Formulario inválido")
		return c.Redirect("/medicines", fiber.StatusSeeOther)
	}
	if err := h.uc.Create(c.Context(), sc.PharmacyID, in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			SetFlash(c, h.store, "error", "El nombre es requerido y el umbral de reposición debe ser numérico")
		} else {
			h.log.Error().Err(err).Msg("crear medicamento")
			SetFlash(c, h.store, "error", "No se pudo guardar el medicamento")
		}
		return c.Redirect("/medicines", fiber.StatusSeeOther)
	}
	SetFlash(c, h.store, "success", "Medicamento registrado")
	return c.Redirect("/medicines", fiber.StatusSeeOther)
}

// ShowEdit GET /medicines/edit/:id — formulario de edición. Un id de otra
// farmacia es indistinguible de uno inexistente.
func (h *MedicineHandler) ShowEdit(c *fiber.Ctx) error {
	sc := CurrentSession(c)
	item, err := h.uc.GetByID(c.Context(), sc.PharmacyID, c.Params("id"))
	if err != nil {
		h.log.Error().Err(err).Msg("cargar medicamento")
	}
	if item == nil {
		SetFlash(c, h.store, "error", "Medicamento no encontrado")
		return c.Redirect("/medicines", fiber.StatusSeeOther)
	}
	return c.Render("medicine_edit", fiber.Map{
		"Title":    "Editar medicamento",
		"Session":  sc,
		"Medicine": item,
		"Flash":    PopFlash(c, h.store),
	})
}

// Update POST /medicines/edit/:id — edición de medicamento.
func (h *MedicineHandler) Update(c *fiber.Ctx) error {
	sc := CurrentSession(c)
	id := c.Params("id")
	var in dto.MedicineForm
	if err := c.BodyParser(&in); err != nil {
		SetFlash(c, h.store, "error", "Formulario inválido")
		return c.Redirect("/medicines/edit/"+id, fiber.StatusSeeOther)
	}
	if err := h.uc.Update(c.Context(), sc.PharmacyID, id, in); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			SetFlash(c, h.store, "error", "Medicamento no encontrado")
		case errors.Is(err, domain.ErrInvalidInput):
			SetFlash(c, h.store, "error", "Datos inválidos")
			return c.Redirect("/medicines/edit/"+id, fiber.StatusSeeOther)
		default:
			h.log.Error().Err(err).Msg("actualizar medicamento")
			SetFlash(c, h.store, "error", "No se pudo actualizar el medicamento")
		}
		return c.Redirect("/medicines", fiber.StatusSeeOther)
	}
	SetFlash(c, h.store, "success", "Medicamento actualizado")
	return c.Redirect("/medicines", fiber.StatusSeeOther)
}

// Delete POST /medicines/delete/:id — la violación referencial (lotes que
// aún lo referencian) se muestra como error accionable, no como caída.
func (h *MedicineHandler) Delete(c *fiber.Ctx) error {
	sc := CurrentSession(c)
	if err := h.uc.Delete(c.Context(), sc.PharmacyID, c.Params("id")); err != nil {
		switch {
		case errors.Is(err, domain.ErrReferentialConflict):
			SetFlash(c, h.store, "error", "No se puede eliminar: hay lotes de stock que referencian este medicamento")
		case errors.Is(err, domain.ErrNotFound):
			SetFlash(c, h.store, "error", "Medicamento no encontrado")
		default:
			h.log.Error().Err(err).Msg("eliminar medicamento")
			SetFlash(c, h.store, "error", "No se pudo eliminar el medicamento")
		}
		return c.Redirect("/medicines", fiber.StatusSeeOther)
	}
	SetFlash(c, h.store, "success", "Medicamento eliminado")
	return c.Redirect("/medicines", fiber.StatusSeeOther)
}
