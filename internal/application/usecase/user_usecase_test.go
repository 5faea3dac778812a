package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/company-cli/internal/application/auth"
	"github.com/jhoicas/company-cli/internal/application/authz"
	"github.com/jhoicas/company-cli/internal/application/usecase"
	"github.com/jhoicas/company-cli/internal/domain"
	"github.com/jhoicas/company-cli/internal/domain/entity"
	"github.com/jhoicas/company-cli/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newUserFixture(t *testing.T) (*memory.Store, *usecase.UserUseCase) {
	t.Helper()
	store := memory.NewStore()
	store.PutCompany(&entity.Company{ID: "c-001", Name: "Boat Store", Location: "Sydney"})
	store.PutUser(&entity.User{
		ID: "u-admin", Username: "superuser", Role: entity.RoleAdmin,
		Status: entity.StatusActive, CreatedAt: time.Now(),
	})
	store.PutUser(&entity.User{
		ID: "u-alice", Username: "alice", Role: entity.RoleManager, CompanyID: "c-001",
		Status: entity.StatusActive, CreatedAt: time.Now(),
	})
	return store, usecase.NewUserUseCase(store.Users(), store.Companies())
}

func adminSess() *auth.Session {
	return &auth.Session{UserID: "u-admin", Username: "superuser", Role: entity.RoleAdmin}
}

func managerSess() *auth.Session {
	return &auth.Session{UserID: "u-alice", Username: "alice", Role: entity.RoleManager, CompanyID: "c-001"}
}

// ──────────────────────────────────────────────────────────────────────────────
// Me / List
// ──────────────────────────────────────────────────────────────────────────────

func TestMe_DevuelveElPerfilPropio(t *testing.T) {
	_, uc := newUserFixture(t)
	user, err := uc.Me(managerSess())
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, entity.RoleManager, user.Role)
}

func TestList_SoloAdmin(t *testing.T) {
	_, uc := newUserFixture(t)

	users, err := uc.List(adminSess())
	require.NoError(t, err)
	assert.Len(t, users, 2)
	// Orden estable por username.
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "superuser", users[1].Username)

	_, err = uc.List(managerSess())
	var perm *domain.PermissionError
	require.ErrorAs(t, err, &perm)
	assert.Equal(t, domain.ReasonInsufficientRole, perm.Reason)
}

// ──────────────────────────────────────────────────────────────────────────────
// Add
// ──────────────────────────────────────────────────────────────────────────────

func TestAdd_CreaUsuarioConHashBcrypt(t *testing.T) {
	store, uc := newUserFixture(t)

	user, err := uc.Add(adminSess(), usecase.AddUserInput{
		Username:  "dave",
		Password:  "dave123",
		Role:      "employee",
		CompanyID: "c-001",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployee, user.Role)
	assert.Equal(t, entity.StatusActive, user.Status)
	assert.NotEqual(t, "dave123", user.PasswordHash, "el password nunca se persiste en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("dave123")))

	stored, err := store.Users().FindByUsername("dave")
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestAdd_RolPorDefectoEmployee(t *testing.T) {
	_, uc := newUserFixture(t)
	user, err := uc.Add(adminSess(), usecase.AddUserInput{
		Username: "eva", Password: "eva123", CompanyID: "c-001",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployee, user.Role)
}

func TestAdd_ValidacionesDeEntrada(t *testing.T) {
	_, uc := newUserFixture(t)

	cases := []struct {
		name  string
		in    usecase.AddUserInput
		field string
	}{
		{"username vacío", usecase.AddUserInput{Password: "x", CompanyID: "c-001"}, "username"},
		{"password vacío", usecase.AddUserInput{Username: "x", CompanyID: "c-001"}, "password"},
		{"rol desconocido", usecase.AddUserInput{Username: "x", Password: "x", Role: "jefe", CompanyID: "c-001"}, "role"},
		{"no-admin sin empresa", usecase.AddUserInput{Username: "x", Password: "x", Role: "employee"}, "company"},
		{"empresa inexistente", usecase.AddUserInput{Username: "x", Password: "x", CompanyID: "c-999"}, "company"},
		{"username duplicado", usecase.AddUserInput{Username: "ALICE", Password: "x", CompanyID: "c-001"}, "username"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Add(adminSess(), tc.in)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestAdd_AdminSinEmpresaPermitido(t *testing.T) {
	_, uc := newUserFixture(t)
	user, err := uc.Add(adminSess(), usecase.AddUserInput{
		Username: "root2", Password: "root2", Role: "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)
	assert.Empty(t, user.CompanyID)
}

func TestAdd_DenegadoParaNoAdmin(t *testing.T) {
	store, uc := newUserFixture(t)
	before := store.CallCount()

	_, err := uc.Add(managerSess(), usecase.AddUserInput{
		Username: "dave", Password: "dave123", CompanyID: "c-001",
	})
	var perm *domain.PermissionError
	require.ErrorAs(t, err, &perm)
	assert.Equal(t, domain.ReasonInsufficientRole, perm.Reason)
	assert.Equal(t, before, store.CallCount(), "una creación denegada no debe tocar el store")
}

// ──────────────────────────────────────────────────────────────────────────────
// Roles
// ──────────────────────────────────────────────────────────────────────────────

func TestRoles_TablaCompletaYEstable(t *testing.T) {
	_, uc := newUserFixture(t)
	infos := uc.Roles()
	require.Len(t, infos, 3)
	assert.Equal(t, entity.RoleAdmin, infos[0].Role)
	assert.Equal(t, entity.RoleManager, infos[1].Role)
	assert.Equal(t, entity.RoleEmployee, infos[2].Role)
	assert.Contains(t, infos[0].Actions, authz.ActionAddUser)
	assert.NotContains(t, infos[2].Actions, authz.ActionUpdateProduct)
}
