package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin = "admin"
)

// User usuario del staff de una farmacia. El password nunca se guarda ni
// se expone en texto plano; solo el hash bcrypt.
type User struct {
	ID           string
	PharmacyID   string
	Username     string // único a nivel global
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
