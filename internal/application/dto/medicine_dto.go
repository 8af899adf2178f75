package dto

// MedicineForm entrada de los formularios de alta y edición de medicamentos.
// ReorderLevel llega como texto del formulario; vacío aplica el valor por defecto.
type MedicineForm struct {
	Name         string `form:"name"`
	Manufacturer string `form:"manufacturer"`
	ImageFile    string `form:"image_file"`
	Description  string `form:"description"`
	ReorderLevel string `form:"reorder_level"`
}

// MedicineView fila del catálogo para las vistas.
type MedicineView struct {
	ID           string
	Name         string
	Manufacturer string
	ImageFile    string
	Description  string
	ReorderLevel int
}
