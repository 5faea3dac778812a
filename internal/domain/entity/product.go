package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario de una empresa.
// Invariantes: pertenece a exactamente una Company; Quantity y Price nunca
// quedan negativos después de una actualización.
type Product struct {
	ID            string
	CompanyID     string
	SKU           string // código único por empresa
	Name          string
	Quantity      int
	Price         decimal.Decimal
	Category      string
	LastUpdatedBy string // ID del usuario de la última edición; vacío si nunca se editó
	LastUpdatedAt time.Time
	CreatedAt     time.Time
}
