package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAuthCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Autenticación",
	}

	login := &cobra.Command{
		Use:   "login <username> <password>",
		Short: "Inicia sesión en el sistema",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := deps.Sessions.Login(args[0], args[1])
			if err != nil {
				return err
			}
			deps.Log.Info().Str("user", sess.Username).Str("role", string(sess.Role)).Msg("sesión iniciada")
			fmt.Fprintf(cmd.OutOrStdout(), "Sesión iniciada como %s (%s)\n", sess.Username, sess.Role)
			return nil
		},
	}

	logout := &cobra.Command{
		Use:   "logout",
		Short: "Cierra la sesión actual",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := deps.Sessions.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Sesión cerrada")
			return nil
		},
	}

	cmd.AddCommand(login, logout)
	return cmd
}

// newExitCmd conserva el comando "exit" del flujo interactivo original:
// descarta la sesión y se despide.
func newExitCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "exit",
		Short: "Cierra la sesión y sale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := deps.Sessions.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "¡Hasta luego!")
			return nil
		},
	}
}
