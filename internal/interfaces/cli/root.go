package cli

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/company-cli/internal/application/auth"
	"github.com/jhoicas/company-cli/internal/application/inventory"
	"github.com/jhoicas/company-cli/internal/application/usecase"
	"github.com/jhoicas/company-cli/pkg/logger"
)

// Deps agrupa las dependencias que los comandos necesitan.
type Deps struct {
	Log       *logger.Logger
	Sessions  *auth.Manager
	Users     *usecase.UserUseCase
	Companies *usecase.CompanyUseCase
	Inventory *inventory.Engine
}

// NewRootCmd construye el árbol de comandos del CLI.
func NewRootCmd(deps *Deps) *cobra.Command {
	root := &cobra.Command{
		Use:   "company-cli",
		Short: "Gestión de empresas, empleados e inventarios",
		Long: `Gestión de empresas, empleados e inventarios.

Sin DATABASE_URL configurada la aplicación corre sobre un dataset de
demostración en memoria: usuarios y productos creados o modificados no
sobreviven al proceso; solo la sesión iniciada persiste en disco.`,
		// Los errores del núcleo se imprimen una sola vez en main, con código
		// de salida propio.
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newAuthCmd(deps),
		newUserCmd(deps),
		newCompaniesCmd(deps),
		newEmployeesCmd(deps),
		newInventoryCmd(deps),
		newExitCmd(deps),
	)
	return root
}
