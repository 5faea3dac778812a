package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). El CLI los traduce a un
// mensaje de una línea y a un código de salida no-cero.
var (
	// ErrCredencialesInvalidas cubre tanto usuario desconocido como password
	// incorrecto: el mensaje no debe permitir enumerar usuarios.
	ErrCredencialesInvalidas = errors.New("credenciales inválidas")
	// ErrNoAutenticado indica sesión ausente, expirada o inválida.
	ErrNoAutenticado = errors.New("sesión no iniciada: ejecute 'auth login'")
	// ErrPermisoDenegado sentinel de toda denegación de autorización.
	ErrPermisoDenegado = errors.New("no autorizado para esta acción")
	// ErrNoEncontrado cubre tanto "no existe" como "existe en otra empresa";
	// no se distinguen para no filtrar existencia entre empresas.
	ErrNoEncontrado = errors.New("recurso no encontrado")
	// ErrEntradaInvalida sentinel de las fallas de validación.
	ErrEntradaInvalida = errors.New("entrada inválida")
	// ErrDuplicado recurso duplicado a nivel de persistencia.
	ErrDuplicado = errors.New("recurso duplicado")
)

// DenyReason código de la razón de una denegación de autorización.
type DenyReason string

const (
	ReasonInsufficientRole DenyReason = "INSUFFICIENT_ROLE"
	ReasonCompanyScope     DenyReason = "COMPANY_SCOPE_VIOLATION"
)

// PermissionError denegación de autorización con razón. Envuelve
// ErrPermisoDenegado y nunca incluye detalles del recurso denegado.
type PermissionError struct {
	Reason DenyReason
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("no autorizado (%s)", e.Reason)
}

func (e *PermissionError) Unwrap() error { return ErrPermisoDenegado }

// ValidationError indica qué campo falló la validación. Envuelve ErrEntradaInvalida.
type ValidationError struct {
	Field  string
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("validación fallida en campo %q", e.Field)
	}
	return fmt.Sprintf("validación fallida en campo %q: %s", e.Field, e.Detail)
}

func (e *ValidationError) Unwrap() error { return ErrEntradaInvalida }
