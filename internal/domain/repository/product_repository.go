package repository

import "github.com/jhoicas/company-cli/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// ListByCompany devuelve los productos de una empresa sin orden garantizado;
	// el motor de inventario impone el orden observable.
	ListByCompany(companyID string) ([]*entity.Product, error)
	// ListAll devuelve los productos de todas las empresas (vista global de un
	// admin sin empresa seleccionada).
	ListAll() ([]*entity.Product, error)
	// GetByCompanyAndID devuelve (nil, nil) si el producto no existe en esa empresa.
	GetByCompanyAndID(companyID, id string) (*entity.Product, error)
	// GetByID busca en todas las empresas; (nil, nil) si no existe.
	GetByID(id string) (*entity.Product, error)
	// Save persiste el estado completo del producto (insert o reemplazo por ID).
	Save(product *entity.Product) error
}
