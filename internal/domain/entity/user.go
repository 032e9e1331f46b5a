package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin      = "admin"
	RolePatrimonio = "patrimonio"
	RoleConsulta   = "consulta"
)

// User representa un usuario del sistema (pertenece a un municipio).
type User struct {
	ID             string
	MunicipalityID string
	Email          string
	PasswordHash   string // bcrypt hash, nunca plano en dominio después de persistir
	Name           string
	Role           string // admin, patrimonio, consulta
	Status         string // active, inactive, suspended
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
