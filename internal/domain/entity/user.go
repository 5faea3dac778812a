package entity

import (
	"fmt"
	"time"
)

// Role es el conjunto cerrado de roles del sistema. No hay creación de roles
// en runtime: la tabla de capacidades en authz se indexa por estas constantes.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// ParseRole valida que s sea un rol conocido.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleEmployee:
		return Role(s), nil
	}
	return "", fmt.Errorf("rol desconocido: %q", s)
}

// Estados válidos para User.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User representa un usuario del sistema. Invariante: todo usuario no-admin
// pertenece a exactamente una Company (CompanyID vacío solo para admin).
type User struct {
	ID           string
	Username     string // único; comparación case-insensitive en login
	PasswordHash string // bcrypt hash, nunca plano después de persistir
	Role         Role
	CompanyID    string
	Status       string // active, inactive
	CreatedAt    time.Time
}

// Active indica si el usuario puede sostener una sesión.
func (u *User) Active() bool { return u.Status == StatusActive }
