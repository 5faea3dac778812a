package memory

import (
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/company-cli/internal/domain"
	"github.com/jhoicas/company-cli/internal/domain/entity"
	"github.com/jhoicas/company-cli/internal/domain/repository"
)

// Store implementación en memoria de los tres puertos de persistencia.
// Es el backend por defecto del CLI cuando no hay PostgreSQL configurado y el
// doble de los tests. Entrega y guarda copias: nadie comparte punteros con el
// estado interno.
//
// Calls cuenta los accesos por método; los tests lo usan para verificar que
// una operación rechazada no tocó el store.
type Store struct {
	mu        sync.Mutex
	users     map[string]*entity.User
	companies map[string]*entity.Company
	products  map[string]*entity.Product
	Calls     map[string]int
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		users:     make(map[string]*entity.User),
		companies: make(map[string]*entity.Company),
		products:  make(map[string]*entity.Product),
		Calls:     make(map[string]int),
	}
}

// CallCount devuelve el total de accesos registrados al store.
func (s *Store) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.Calls {
		total += n
	}
	return total
}

// count registra un acceso; llamar con mu tomado.
func (s *Store) count(method string) { s.Calls[method]++ }

// PutUser, PutCompany y PutProduct cargan registros sin pasar por los puertos
// (seed y fixtures de tests). No cuentan como accesos.
func (s *Store) PutUser(u *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *u
	s.users[u.ID] = &cp
}

func (s *Store) PutCompany(c *entity.Company) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *c
	s.companies[c.ID] = &cp
}

func (s *Store) PutProduct(p *entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.products[p.ID] = &cp
}

// Users devuelve el puerto de usuarios respaldado por este store.
func (s *Store) Users() repository.UserRepository { return &userRepo{s} }

// Companies devuelve el puerto de empresas respaldado por este store.
func (s *Store) Companies() repository.CompanyRepository { return &companyRepo{s} }

// Products devuelve el puerto de productos respaldado por este store.
func (s *Store) Products() repository.ProductRepository { return &productRepo{s} }

// ---- UserRepository ----

type userRepo struct{ s *Store }

var _ repository.UserRepository = (*userRepo)(nil)

func (r *userRepo) Create(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.count("users.Create")
	for _, u := range r.s.users {
		if strings.EqualFold(u.Username, user.Username) {
			return domain.ErrDuplicado
		}
	}
	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}

func (r *userRepo) GetByID(id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.count("users.GetByID")
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *userRepo) FindByUsername(username string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.count("users.FindByUsername")
	for _, u := range r.s.users {
		if strings.EqualFold(u.Username, username) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *userRepo) List() ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.count("users.List")
	out := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		cp := *u
		out = append(out, &cp)
	}
	sortUsers(out)
	return out, nil
}

func (r *userRepo) ListByCompany(companyID string) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.count("users.ListByCompany")
	out := make([]*entity.User, 0)
	for _, u := range r.s.users {
		if u.CompanyID == companyID {
			cp := *u
			out = append(out, &cp)
		}
	}
	sortUsers(out)
	return out, nil
}

func sortUsers(users []*entity.User) {
	sort.Slice(users, func(i, j int) bool {
		return strings.ToLower(users[i].Username) < strings.ToLower(users[j].Username)
	})
}

// ---- CompanyRepository ----

type companyRepo struct{ s *Store }

var _ repository.CompanyRepository = (*companyRepo)(nil)

func (r *companyRepo) GetByID(id string) (*entity.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.count("companies.GetByID")
	c, ok := r.s.companies[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *companyRepo) List() ([]*entity.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.count("companies.List")
	out := make([]*entity.Company, 0, len(r.s.companies))
	for _, c := range r.s.companies {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ---- ProductRepository ----

type productRepo struct{ s *Store }

var _ repository.ProductRepository = (*productRepo)(nil)

func (r *productRepo) ListByCompany(companyID string) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.count("products.ListByCompany")
	out := make([]*entity.Product, 0)
	for _, p := range r.s.products {
		if p.CompanyID == companyID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *productRepo) ListAll() ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.count("products.ListAll")
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *productRepo) GetByCompanyAndID(companyID, id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.count("products.GetByCompanyAndID")
	p, ok := r.s.products[id]
	if !ok || p.CompanyID != companyID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *productRepo) GetByID(id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.count("products.GetByID")
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *productRepo) Save(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.count("products.Save")
	cp := *product
	r.s.products[product.ID] = &cp
	return nil
}
