package usecase

import (
	"github.com/jhoicas/company-cli/internal/application/auth"
	"github.com/jhoicas/company-cli/internal/application/authz"
	"github.com/jhoicas/company-cli/internal/domain"
	"github.com/jhoicas/company-cli/internal/domain/entity"
	"github.com/jhoicas/company-cli/internal/domain/repository"
)

// CompanyUseCase consultas de empresas y sus empleados (solo lectura).
type CompanyUseCase struct {
	companies repository.CompanyRepository
	users     repository.UserRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(companies repository.CompanyRepository, users repository.UserRepository) *CompanyUseCase {
	return &CompanyUseCase{companies: companies, users: users}
}

// List lista las empresas registradas.
func (uc *CompanyUseCase) List(sess *auth.Session) ([]*entity.Company, error) {
	if err := authz.Authorize(sess, authz.ActionListCompanies, ""); err != nil {
		return nil, err
	}
	return uc.companies.List()
}

// Employees lista los empleados de una empresa. companyID vacío = empresa de
// la sesión; solo un admin puede apuntar a otra. Un admin sin empresa en la
// sesión y sin empresa pedida ve los empleados de todas.
func (uc *CompanyUseCase) Employees(sess *auth.Session, companyID string) ([]*entity.User, error) {
	target := companyID
	if target == "" {
		target = sess.CompanyID
	}
	if err := authz.Authorize(sess, authz.ActionListEmployees, target); err != nil {
		return nil, err
	}
	if target == "" && sess.Role == entity.RoleAdmin {
		return uc.allEmployees()
	}
	company, err := uc.companies.GetByID(target)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNoEncontrado
	}
	return uc.users.ListByCompany(target)
}

// allEmployees recorre las empresas registradas y concatena sus empleados,
// empresa por empresa en su orden de listado.
func (uc *CompanyUseCase) allEmployees() ([]*entity.User, error) {
	companies, err := uc.companies.List()
	if err != nil {
		return nil, err
	}
	var out []*entity.User
	for _, c := range companies {
		users, err := uc.users.ListByCompany(c.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, users...)
	}
	return out, nil
}
