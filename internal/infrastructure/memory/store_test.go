package memory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/company-cli/internal/domain"
	"github.com/jhoicas/company-cli/internal/domain/entity"
	"github.com/jhoicas/company-cli/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dataset de demostración
// ──────────────────────────────────────────────────────────────────────────────

func TestNewSeededStore_DatasetCompleto(t *testing.T) {
	store, err := memory.NewSeededStore()
	require.NoError(t, err)

	companies, err := store.Companies().List()
	require.NoError(t, err)
	require.Len(t, companies, 2)
	assert.Equal(t, "Boat Store", companies[0].Name)
	assert.Equal(t, "Yachts Inc", companies[1].Name)

	users, err := store.Users().List()
	require.NoError(t, err)
	require.Len(t, users, 4)

	boat, err := store.Products().ListByCompany(memory.SeedCompanyBoatStore)
	require.NoError(t, err)
	assert.Len(t, boat, 5)

	yachts, err := store.Products().ListByCompany(memory.SeedCompanyYachtsInc)
	require.NoError(t, err)
	assert.Len(t, yachts, 5)
}

func TestNewSeededStore_PasswordsDeDemo(t *testing.T) {
	store, err := memory.NewSeededStore()
	require.NoError(t, err)

	for _, username := range []string{"superuser", "alice", "bob", "carol"} {
		user, err := store.Users().FindByUsername(username)
		require.NoError(t, err)
		require.NotNil(t, user, "usuario %s sembrado", username)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(username)),
			"password de demo = username")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Puertos
// ──────────────────────────────────────────────────────────────────────────────

func TestUserRepo_CreateRechazaUsernameDuplicado(t *testing.T) {
	store := memory.NewStore()
	users := store.Users()

	require.NoError(t, users.Create(&entity.User{ID: "u-1", Username: "alice", Status: entity.StatusActive}))
	err := users.Create(&entity.User{ID: "u-2", Username: "ALICE", Status: entity.StatusActive})
	assert.ErrorIs(t, err, domain.ErrDuplicado)
}

func TestUserRepo_GetByIDInexistente(t *testing.T) {
	store := memory.NewStore()
	user, err := store.Users().GetByID("u-999")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestProductRepo_GetByCompanyAndIDExigeAmbos(t *testing.T) {
	store := memory.NewStore()
	store.PutProduct(&entity.Product{ID: "p-1", CompanyID: "c-001", SKU: "S1", Name: "Boat A", Quantity: 1})

	p, err := store.Products().GetByCompanyAndID("c-001", "p-1")
	require.NoError(t, err)
	require.NotNil(t, p)

	// ID existente pero de otra empresa: indistinguible de inexistente.
	p, err = store.Products().GetByCompanyAndID("c-002", "p-1")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestProductRepo_ListByCompanyOrdenadoPorID(t *testing.T) {
	store := memory.NewStore()
	for _, id := range []string{"p-3", "p-1", "p-2"} {
		store.PutProduct(&entity.Product{ID: id, CompanyID: "c-001", SKU: id, Name: id, Quantity: 1})
	}

	out, err := store.Products().ListByCompany("c-001")
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "p-1", out[0].ID)
	assert.Equal(t, "p-2", out[1].ID)
	assert.Equal(t, "p-3", out[2].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Aislamiento de copias
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_NoCompartePunterosConElLlamador(t *testing.T) {
	store := memory.NewStore()
	seed := &entity.User{ID: "u-1", Username: "alice", Status: entity.StatusActive, CreatedAt: time.Now()}
	store.PutUser(seed)

	// Mutar el original no afecta al estado interno.
	seed.Username = "mallory"
	got, err := store.Users().GetByID("u-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	// Mutar lo leído tampoco.
	got.Username = "mallory"
	again, err := store.Users().GetByID("u-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", again.Username)
}

func TestProductRepo_SaveGuardaCopia(t *testing.T) {
	store := memory.NewStore()
	p := &entity.Product{ID: "p-1", CompanyID: "c-001", SKU: "S1", Name: "Boat A", Quantity: 1}
	require.NoError(t, store.Products().Save(p))

	p.Quantity = 99
	stored, err := store.Products().GetByCompanyAndID("c-001", "p-1")
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Contadores de acceso
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_ContadoresDeAcceso(t *testing.T) {
	store := memory.NewStore()
	store.PutUser(&entity.User{ID: "u-1", Username: "alice", Status: entity.StatusActive})
	assert.Zero(t, store.CallCount(), "el seed no cuenta como acceso")

	_, _ = store.Users().GetByID("u-1")
	_, _ = store.Users().GetByID("u-1")
	_, _ = store.Users().FindByUsername("alice")

	assert.Equal(t, 3, store.CallCount())
	assert.Equal(t, 2, store.Calls["users.GetByID"])
	assert.Equal(t, 1, store.Calls["users.FindByUsername"])
}
