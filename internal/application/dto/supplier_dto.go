package dto

// SupplierForm entrada de los formularios de alta y edición de proveedores.
type SupplierForm struct {
	Name          string `form:"name"`
	ContactPerson string `form:"contact_person"`
	Phone         string `form:"phone"`
}

// SupplierView fila de proveedor para las vistas.
type SupplierView struct {
	ID            string
	Name          string
	ContactPerson string
	Phone         string
}
