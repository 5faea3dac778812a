package repository

import "github.com/jhoicas/company-cli/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Las búsquedas devuelven (nil, nil) cuando no hay coincidencia.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// FindByUsername compara el username sin distinguir mayúsculas.
	FindByUsername(username string) (*entity.User, error)
	List() ([]*entity.User, error)
	ListByCompany(companyID string) ([]*entity.User, error)
}
