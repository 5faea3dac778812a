package memory

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/company-cli/internal/domain/entity"
)

// IDs del dataset de ejemplo, exportados para scripts y tests.
const (
	SeedCompanyBoatStore = "c-001"
	SeedCompanyYachtsInc = "c-002"
)

// NewSeededStore crea un store con el dataset de demostración: dos empresas
// náuticas con sus inventarios y un usuario por rol. Los passwords de demo
// son iguales al username.
func NewSeededStore() (*Store, error) {
	s := NewStore()
	now := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

	s.PutCompany(&entity.Company{ID: SeedCompanyBoatStore, Name: "Boat Store", Location: "Sydney", CreatedAt: now})
	s.PutCompany(&entity.Company{ID: SeedCompanyYachtsInc, Name: "Yachts Inc", Location: "Melbourne", CreatedAt: now})

	users := []struct {
		id, username, password string
		role                   entity.Role
		companyID              string
	}{
		{"u-001", "superuser", "superuser", entity.RoleAdmin, ""},
		{"u-002", "alice", "alice", entity.RoleManager, SeedCompanyBoatStore},
		{"u-003", "bob", "bob", entity.RoleManager, SeedCompanyYachtsInc},
		{"u-004", "carol", "carol", entity.RoleEmployee, SeedCompanyBoatStore},
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.MinCost)
		if err != nil {
			return nil, err
		}
		s.PutUser(&entity.User{
			ID:           u.id,
			Username:     u.username,
			PasswordHash: string(hash),
			Role:         u.role,
			CompanyID:    u.companyID,
			Status:       entity.StatusActive,
			CreatedAt:    now,
		})
	}

	products := []struct {
		id, sku, name, category string
		companyID               string
		quantity                int
		price                   string
	}{
		{"p-001", "SKU001", "Yacht X", "Yacht", SeedCompanyBoatStore, 1, "700000"},
		{"p-002", "SKU002", "Boat A", "Boat", SeedCompanyBoatStore, 4, "35000"},
		{"p-003", "SKU003", "Motor B", "Motor", SeedCompanyBoatStore, 12, "5000"},
		{"p-004", "SKU004", "Fisherman Pro", "Boat", SeedCompanyBoatStore, 2, "48000"},
		{"p-005", "SKU005", "WindRider 220", "Sailboat", SeedCompanyBoatStore, 3, "28500"},
		{"p-006", "SKU006", "Ocean Master 48", "Yacht", SeedCompanyYachtsInc, 1, "1200000"},
		{"p-007", "SKU007", "Coastal Explorer 38", "Yacht", SeedCompanyYachtsInc, 2, "520000"},
		{"p-008", "SKU008", "PowerMax 150", "Motor", SeedCompanyYachtsInc, 8, "12000"},
		{"p-009", "SKU009", "BlueWater 32", "Sailboat", SeedCompanyYachtsInc, 2, "125000"},
		{"p-010", "SKU010", "NavPro 5000", "Electronics", SeedCompanyYachtsInc, 15, "3500"},
	}
	for _, p := range products {
		price, err := decimal.NewFromString(p.price)
		if err != nil {
			return nil, err
		}
		s.PutProduct(&entity.Product{
			ID:        p.id,
			CompanyID: p.companyID,
			SKU:       p.sku,
			Name:      p.name,
			Quantity:  p.quantity,
			Price:     price,
			Category:  p.category,
			CreatedAt: now,
		})
	}

	return s, nil
}
