package auth

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/company-cli/internal/domain"
	"github.com/jhoicas/company-cli/internal/domain/entity"
	"github.com/jhoicas/company-cli/internal/domain/repository"
	"github.com/jhoicas/company-cli/pkg/sessiontoken"
)

// Session es la prueba transitoria de identidad autenticada de la invocación
// actual del CLI. Referencia al usuario sin poseerlo: su validez se reconfirma
// contra el store en cada Require.
type Session struct {
	UserID    string
	Username  string
	Role      entity.Role
	CompanyID string
	CreatedAt time.Time
	ExpiresAt time.Time // cero = sin vencimiento
}

// Config del manejo de sesiones.
type Config struct {
	Secret string        // clave HMAC del blob persistido
	TTL    time.Duration // 0 = sin vencimiento
	File   string        // ruta del blob; ver DefaultFile
}

// Manager crea, persiste, carga e invalida la sesión autenticada.
// Su único efecto durable es el archivo de sesión: nunca muta usuarios ni
// productos.
type Manager struct {
	users repository.UserRepository
	cfg   Config
}

// NewManager construye el manejador de sesiones.
func NewManager(users repository.UserRepository, cfg Config) *Manager {
	return &Manager{users: users, cfg: cfg}
}

// DefaultFile devuelve la ruta por defecto del blob de sesión, dentro del
// directorio de configuración del usuario actual del sistema operativo.
func DefaultFile() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "company-cli", "session"), nil
}

// dummyHash se compara cuando el username no existe, para que la latencia del
// login no distinga usuario desconocido de password incorrecto.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("usuario-inexistente"), bcrypt.DefaultCost)

// Login verifica username/password y persiste una nueva sesión. Usuario
// desconocido, password incorrecto y usuario inactivo devuelven el mismo
// ErrCredencialesInvalidas para no permitir enumerar usuarios, y ambos caminos
// pagan una comparación bcrypt.
func (m *Manager) Login(username, password string) (*Session, error) {
	user, err := m.users.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, domain.ErrCredencialesInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrCredencialesInvalidas
	}
	if !user.Active() {
		return nil, domain.ErrCredencialesInvalidas
	}

	now := time.Now()
	sess := &Session{
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		CompanyID: user.CompanyID,
		CreatedAt: now,
	}
	if m.cfg.TTL != 0 {
		sess.ExpiresAt = now.Add(m.cfg.TTL)
	}
	if err := m.persist(sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (m *Manager) persist(s *Session) error {
	blob, err := sessiontoken.Sign(m.cfg.Secret, sessiontoken.Claims{
		UserID:    s.UserID,
		Username:  s.Username,
		CompanyID: s.CompanyID,
		Role:      string(s.Role),
	}, s.CreatedAt, s.ExpiresAt)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(m.cfg.File), 0o700); err != nil {
		return err
	}
	// 0600: el blob prueba la identidad del usuario del SO, nadie más debe leerlo.
	return os.WriteFile(m.cfg.File, []byte(blob), 0o600)
}

// Current carga la sesión persistida. Blob ausente, corrupto, manipulado o
// expirado se trata como "sin sesión" (nil, nil), nunca como pánico.
func (m *Manager) Current() (*Session, error) {
	raw, err := os.ReadFile(m.cfg.File)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	claims, err := sessiontoken.Parse(m.cfg.Secret, strings.TrimSpace(string(raw)))
	if err != nil {
		// Fail closed: cualquier blob inválido equivale a no tener sesión.
		return nil, nil
	}
	role, err := entity.ParseRole(claims.Role)
	if err != nil {
		return nil, nil
	}
	sess := &Session{
		UserID:    claims.UserID,
		Username:  claims.Username,
		Role:      role,
		CompanyID: claims.CompanyID,
	}
	if claims.IssuedAt != nil {
		sess.CreatedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		sess.ExpiresAt = claims.ExpiresAt.Time
	}
	return sess, nil
}

// Logout elimina la sesión persistida. Idempotente: sin sesión activa no es
// un error.
func (m *Manager) Logout() error {
	if err := os.Remove(m.cfg.File); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Require devuelve la sesión activa o ErrNoAutenticado. Revalida perezosamente
// que el usuario siga existiendo y activo: una sesión nunca sobrevive a la
// validez de su usuario. Sin sesión persistida no se toca el store.
func (m *Manager) Require() (*Session, error) {
	sess, err := m.Current()
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, domain.ErrNoAutenticado
	}
	user, err := m.users.GetByID(sess.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active() {
		return nil, domain.ErrNoAutenticado
	}
	return sess, nil
}
