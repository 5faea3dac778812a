package inventory

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/company-cli/internal/application/auth"
	"github.com/jhoicas/company-cli/internal/application/authz"
	"github.com/jhoicas/company-cli/internal/domain"
	"github.com/jhoicas/company-cli/internal/domain/entity"
	"github.com/jhoicas/company-cli/internal/domain/repository"
)

// Criteria filtros opcionales de búsqueda. Un campo ausente no filtra.
type Criteria struct {
	NameContains string // coincidencia parcial, sin distinguir mayúsculas
	Category     string // coincidencia exacta
	MinQuantity  *int   // rangos inclusivos
	MaxQuantity  *int
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
}

func (c Criteria) matches(p *entity.Product) bool {
	if c.NameContains != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(c.NameContains)) {
		return false
	}
	if c.Category != "" && p.Category != c.Category {
		return false
	}
	if c.MinQuantity != nil && p.Quantity < *c.MinQuantity {
		return false
	}
	if c.MaxQuantity != nil && p.Quantity > *c.MaxQuantity {
		return false
	}
	if c.MinPrice != nil && p.Price.LessThan(*c.MinPrice) {
		return false
	}
	if c.MaxPrice != nil && p.Price.GreaterThan(*c.MaxPrice) {
		return false
	}
	return true
}

// Changes actualización parcial de un producto. Solo los campos no-nil se
// aplican; el resto queda intacto.
type Changes struct {
	Name     *string
	SKU      *string
	Quantity *int
	Price    *decimal.Decimal
	Category *string
}

// Engine motor de consultas y mutaciones de inventario. Toda operación
// autoriza antes de tocar el store y restringe los resultados a una sola
// empresa: los criterios no pueden saltarse el alcance.
type Engine struct {
	products repository.ProductRepository
}

// NewEngine construye el motor de inventario.
func NewEngine(products repository.ProductRepository) *Engine {
	return &Engine{products: products}
}

// targetCompany resuelve la empresa objetivo: solo un admin puede apuntar a
// una empresa distinta de la de su sesión. Para un admin sin empresa en la
// sesión y sin empresa pedida el objetivo queda vacío: vista global.
func targetCompany(sess *auth.Session, requested string) string {
	if requested != "" && sess.Role == entity.RoleAdmin {
		return requested
	}
	return sess.CompanyID
}

// globalView indica si la operación abarca todas las empresas. Solo un admin
// llega aquí con objetivo vacío; los demás roles siempre tienen empresa.
func globalView(sess *auth.Session, target string) bool {
	return target == "" && sess.Role == entity.RoleAdmin
}

// Search devuelve los productos de la empresa objetivo que cumplen los
// criterios, ordenados por ID ascendente (contrato observable, estable).
// companyID vacío = empresa de la sesión; para roles no-admin se ignora.
func (e *Engine) Search(sess *auth.Session, companyID string, criteria Criteria) ([]*entity.Product, error) {
	target := targetCompany(sess, companyID)
	if err := authz.Authorize(sess, authz.ActionSearchInventory, target); err != nil {
		return nil, err
	}
	return e.list(sess, target, criteria)
}

// View equivale a Search con criterios vacíos, bajo VIEW_INVENTORY.
func (e *Engine) View(sess *auth.Session, companyID string) ([]*entity.Product, error) {
	target := targetCompany(sess, companyID)
	if err := authz.Authorize(sess, authz.ActionViewInventory, target); err != nil {
		return nil, err
	}
	return e.list(sess, target, Criteria{})
}

// Categories devuelve las categorías distintas presentes en el inventario
// objetivo, ordenadas alfabéticamente.
func (e *Engine) Categories(sess *auth.Session, companyID string) ([]string, error) {
	target := targetCompany(sess, companyID)
	if err := authz.Authorize(sess, authz.ActionViewInventory, target); err != nil {
		return nil, err
	}
	products, err := e.list(sess, target, Criteria{})
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out, nil
}

func (e *Engine) list(sess *auth.Session, companyID string, criteria Criteria) ([]*entity.Product, error) {
	var (
		all []*entity.Product
		err error
	)
	if globalView(sess, companyID) {
		all, err = e.products.ListAll()
	} else {
		all, err = e.products.ListByCompany(companyID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Product, 0, len(all))
	for _, p := range all {
		if criteria.matches(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// GetDetails devuelve un producto por ID dentro de la empresa objetivo.
// Un producto de otra empresa responde igual que uno inexistente.
func (e *Engine) GetDetails(sess *auth.Session, companyID, productID string) (*entity.Product, error) {
	target := targetCompany(sess, companyID)
	if err := authz.Authorize(sess, authz.ActionViewProductDetails, target); err != nil {
		return nil, err
	}
	p, err := e.getScoped(sess, target, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNoEncontrado
	}
	return p, nil
}

// getScoped busca el producto en la empresa objetivo, o en todas si la
// operación es global.
func (e *Engine) getScoped(sess *auth.Session, target, productID string) (*entity.Product, error) {
	if globalView(sess, target) {
		return e.products.GetByID(productID)
	}
	return e.products.GetByCompanyAndID(target, productID)
}

// Update aplica una actualización parcial. Calcula el registro propuesto
// completo sobre una copia, lo valida y recién entonces persiste: si la
// validación falla, el producto almacenado no cambia en absoluto.
func (e *Engine) Update(sess *auth.Session, companyID, productID string, changes Changes) (*entity.Product, error) {
	target := targetCompany(sess, companyID)
	if err := authz.Authorize(sess, authz.ActionUpdateProduct, target); err != nil {
		return nil, err
	}
	current, err := e.getScoped(sess, target, productID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNoEncontrado
	}

	updated := *current
	if changes.Name != nil {
		updated.Name = *changes.Name
	}
	if changes.SKU != nil {
		updated.SKU = *changes.SKU
	}
	if changes.Quantity != nil {
		updated.Quantity = *changes.Quantity
	}
	if changes.Price != nil {
		updated.Price = *changes.Price
	}
	if changes.Category != nil {
		updated.Category = *changes.Category
	}
	if err := validate(&updated); err != nil {
		return nil, err
	}

	updated.LastUpdatedBy = sess.UserID
	updated.LastUpdatedAt = time.Now()
	if err := e.products.Save(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func validate(p *entity.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return &domain.ValidationError{Field: "name", Detail: "no puede quedar vacío"}
	}
	if strings.TrimSpace(p.SKU) == "" {
		return &domain.ValidationError{Field: "sku", Detail: "no puede quedar vacío"}
	}
	if p.Quantity < 0 {
		return &domain.ValidationError{Field: "quantity", Detail: "no puede ser negativa"}
	}
	if p.Price.IsNegative() {
		return &domain.ValidationError{Field: "price", Detail: "no puede ser negativo"}
	}
	return nil
}
