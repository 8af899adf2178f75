package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrUsernameTaken       = errors.New("el nombre de usuario ya está registrado")
	ErrInvalidCredentials  = errors.New("credenciales inválidas")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrInsufficientStock   = errors.New("stock insuficiente")
	ErrReferentialConflict = errors.New("el registro tiene filas dependientes y no puede eliminarse")
	ErrUnauthorized        = errors.New("no autorizado")
)
