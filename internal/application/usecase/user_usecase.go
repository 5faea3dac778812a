package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/company-cli/internal/application/auth"
	"github.com/jhoicas/company-cli/internal/application/authz"
	"github.com/jhoicas/company-cli/internal/domain"
	"github.com/jhoicas/company-cli/internal/domain/entity"
	"github.com/jhoicas/company-cli/internal/domain/repository"
)

// UserUseCase consultas y administración de usuarios.
type UserUseCase struct {
	users     repository.UserRepository
	companies repository.CompanyRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(users repository.UserRepository, companies repository.CompanyRepository) *UserUseCase {
	return &UserUseCase{users: users, companies: companies}
}

// Me devuelve el perfil del usuario de la sesión.
func (uc *UserUseCase) Me(sess *auth.Session) (*entity.User, error) {
	if err := authz.Authorize(sess, authz.ActionViewOwnProfile, ""); err != nil {
		return nil, err
	}
	user, err := uc.users.GetByID(sess.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNoAutenticado
	}
	return user, nil
}

// List lista todos los usuarios del sistema (acción de administración).
func (uc *UserUseCase) List(sess *auth.Session) ([]*entity.User, error) {
	if err := authz.Authorize(sess, authz.ActionListUsers, ""); err != nil {
		return nil, err
	}
	return uc.users.List()
}

// AddUserInput datos para crear un usuario.
type AddUserInput struct {
	Username  string
	Password  string
	Role      string // vacío = employee
	CompanyID string // requerido para roles no-admin
}

// Add crea un usuario nuevo. El username es único sin distinguir mayúsculas;
// el password se persiste solo como hash bcrypt.
func (uc *UserUseCase) Add(sess *auth.Session, in AddUserInput) (*entity.User, error) {
	if err := authz.Authorize(sess, authz.ActionAddUser, ""); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Username) == "" {
		return nil, &domain.ValidationError{Field: "username", Detail: "requerido"}
	}
	if in.Password == "" {
		return nil, &domain.ValidationError{Field: "password", Detail: "requerido"}
	}
	role := entity.RoleEmployee
	if in.Role != "" {
		parsed, err := entity.ParseRole(in.Role)
		if err != nil {
			return nil, &domain.ValidationError{Field: "role", Detail: err.Error()}
		}
		role = parsed
	}
	// Todo usuario no-admin pertenece a exactamente una empresa.
	if role != entity.RoleAdmin && in.CompanyID == "" {
		return nil, &domain.ValidationError{Field: "company", Detail: "requerida para roles no-admin"}
	}
	existing, err := uc.users.FindByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.ValidationError{Field: "username", Detail: "ya existe"}
	}
	if in.CompanyID != "" {
		company, err := uc.companies.GetByID(in.CompanyID)
		if err != nil {
			return nil, err
		}
		if company == nil {
			return nil, &domain.ValidationError{Field: "company", Detail: "empresa no existe"}
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         role,
		CompanyID:    in.CompanyID,
		Status:       entity.StatusActive,
		CreatedAt:    time.Now(),
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// RoleInfo describe un rol y su conjunto de capacidades.
type RoleInfo struct {
	Role    entity.Role
	Actions []authz.Action
}

// Roles enumera la tabla estática rol → capacidades. Es información de
// compilación, no de datos: basta con tener sesión para consultarla.
func (uc *UserUseCase) Roles() []RoleInfo {
	roles := authz.Roles()
	out := make([]RoleInfo, 0, len(roles))
	for _, r := range roles {
		out = append(out, RoleInfo{Role: r, Actions: authz.Capabilities(r)})
	}
	return out
}
