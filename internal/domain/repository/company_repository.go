package repository

import "github.com/jhoicas/company-cli/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
// Este núcleo solo lee empresas.
type CompanyRepository interface {
	GetByID(id string) (*entity.Company, error)
	List() ([]*entity.Company, error)
}
