package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/company-cli/internal/domain"
	"github.com/jhoicas/company-cli/internal/domain/entity"
	"github.com/jhoicas/company-cli/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = `id, username, password_hash, role, company_id, status, created_at`

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, username, password_hash, role, company_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Username, user.PasswordHash, string(user.Role),
		user.CompanyID, user.Status, user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.queryOne(query, id)
}

// FindByUsername obtiene un usuario por username sin distinguir mayúsculas.
func (r *UserRepo) FindByUsername(username string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(username) = LOWER($1)`
	return r.queryOne(query, username)
}

// List lista todos los usuarios del sistema.
func (r *UserRepo) List() ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY LOWER(username)`
	return r.queryMany(query)
}

// ListByCompany lista los usuarios de una empresa.
func (r *UserRepo) ListByCompany(companyID string) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE company_id = $1 ORDER BY LOWER(username)`
	return r.queryMany(query, companyID)
}

func (r *UserRepo) queryOne(query string, args ...any) (*entity.User, error) {
	var u entity.User
	var role string
	err := r.pool.QueryRow(context.Background(), query, args...).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &role, &u.CompanyID, &u.Status, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	u.Role = entity.Role(role)
	return &u, nil
}

func (r *UserRepo) queryMany(query string, args ...any) ([]*entity.User, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var out []*entity.User
	for rows.Next() {
		var u entity.User
		var role string
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &role, &u.CompanyID, &u.Status, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.Role = entity.Role(role)
		out = append(out, &u)
	}
	return out, rows.Err()
}
