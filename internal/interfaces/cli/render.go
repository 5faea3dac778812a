package cli

import (
	"errors"

	"github.com/jhoicas/company-cli/internal/domain"
)

// Códigos de salida del CLI. 0 éxito; todo error del núcleo es no-cero y se
// rinde como una sola línea, sin stack traces.
const (
	ExitOK               = 0
	ExitError            = 1
	ExitAuthentication   = 2
	ExitNotAuthenticated = 3
	ExitPermissionDenied = 4
	ExitValidation       = 5
	ExitNotFound         = 6
)

// ExitCode traduce un error del dominio a su código de salida.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, domain.ErrCredencialesInvalidas):
		return ExitAuthentication
	case errors.Is(err, domain.ErrNoAutenticado):
		return ExitNotAuthenticated
	case errors.Is(err, domain.ErrPermisoDenegado):
		return ExitPermissionDenied
	case errors.Is(err, domain.ErrEntradaInvalida):
		return ExitValidation
	case errors.Is(err, domain.ErrNoEncontrado):
		return ExitNotFound
	}
	return ExitError
}
