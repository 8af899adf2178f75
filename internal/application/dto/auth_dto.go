package dto

// SignupRequest formulario de registro: crea la farmacia y su usuario
// administrador en una sola transacción.
type SignupRequest struct {
	PharmacyName string `form:"pharmacy_name"`
	Username     string `form:"username"`
	Password     string `form:"password"`
}

// LoginRequest formulario de inicio de sesión.
type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// SessionContext payload de la sesión autenticada. Actúa como capability
// token acotado a una farmacia: el pharmacy_id que usan los repositorios
// sale siempre de aquí, nunca del cliente.
type SessionContext struct {
	UserID     string
	PharmacyID string
	Username   string
	Role       string
}
