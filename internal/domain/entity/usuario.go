package entity

import "time"

// Roles válidos para Usuario (panel de administración).
const (
	RoleAdmin   = "admin"
	RoleRevisor = "revisor"
)

// Usuario representa un usuario del panel de administración.
type Usuario struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, revisor
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
