package authz

import (
	"sort"

	"github.com/jhoicas/company-cli/internal/application/auth"
	"github.com/jhoicas/company-cli/internal/domain"
	"github.com/jhoicas/company-cli/internal/domain/entity"
)

// Action identifica una operación autorizable del sistema.
type Action string

const (
	ActionViewOwnProfile     Action = "VIEW_OWN_PROFILE"
	ActionListUsers          Action = "LIST_USERS"
	ActionAddUser            Action = "ADD_USER"
	ActionListCompanies      Action = "LIST_COMPANIES"
	ActionListEmployees      Action = "LIST_EMPLOYEES"
	ActionViewInventory      Action = "VIEW_INVENTORY"
	ActionSearchInventory    Action = "SEARCH_INVENTORY"
	ActionViewProductDetails Action = "VIEW_PRODUCT_DETAILS"
	ActionUpdateProduct      Action = "UPDATE_PRODUCT"
)

// capabilities es la tabla estática Role → acciones permitidas. Cerrada en
// compilación: no existe administración de roles ni permisos en runtime.
var capabilities = map[entity.Role]map[Action]struct{}{
	entity.RoleAdmin: actionSet(
		ActionViewOwnProfile, ActionListUsers, ActionAddUser,
		ActionListCompanies, ActionListEmployees,
		ActionViewInventory, ActionSearchInventory,
		ActionViewProductDetails, ActionUpdateProduct,
	),
	entity.RoleManager: actionSet(
		ActionViewOwnProfile, ActionListCompanies, ActionListEmployees,
		ActionViewInventory, ActionSearchInventory,
		ActionViewProductDetails, ActionUpdateProduct,
	),
	entity.RoleEmployee: actionSet(
		ActionViewOwnProfile, ActionListCompanies, ActionListEmployees,
		ActionViewInventory, ActionSearchInventory, ActionViewProductDetails,
	),
}

func actionSet(actions ...Action) map[Action]struct{} {
	set := make(map[Action]struct{}, len(actions))
	for _, a := range actions {
		set[a] = struct{}{}
	}
	return set
}

// Authorize decide si la sesión puede ejecutar la acción. Dos etapas en orden
// fijo: primero capacidad del rol, después alcance de empresa. Un
// targetCompanyID vacío significa acción sin alcance de empresa.
// Función pura: determinista y sin efectos.
func Authorize(sess *auth.Session, action Action, targetCompanyID string) error {
	caps, ok := capabilities[sess.Role]
	if !ok {
		return &domain.PermissionError{Reason: domain.ReasonInsufficientRole}
	}
	if _, ok := caps[action]; !ok {
		return &domain.PermissionError{Reason: domain.ReasonInsufficientRole}
	}
	// Admin opera sin restricción de empresa; el resto solo sobre la propia.
	if targetCompanyID != "" && sess.Role != entity.RoleAdmin && targetCompanyID != sess.CompanyID {
		return &domain.PermissionError{Reason: domain.ReasonCompanyScope}
	}
	return nil
}

// Roles devuelve los roles conocidos en orden estable.
func Roles() []entity.Role {
	return []entity.Role{entity.RoleAdmin, entity.RoleManager, entity.RoleEmployee}
}

// Capabilities devuelve las acciones permitidas de un rol en orden estable.
func Capabilities(role entity.Role) []Action {
	caps := capabilities[role]
	out := make([]Action, 0, len(caps))
	for a := range caps {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
