package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/company-cli/internal/application/usecase"
)

func newUserCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Consulta y administración de usuarios",
	}
	cmd.AddCommand(
		newUserShowMeCmd(deps),
		newUserListCmd(deps),
		newUserAddCmd(deps),
		newUserRolesCmd(deps),
	)
	return cmd
}

func newUserShowMeCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "show-me",
		Short: "Muestra el usuario de la sesión actual",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := deps.Sessions.Require()
			if err != nil {
				return err
			}
			user, err := deps.Users.Me(sess)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Usuario: %s\n", user.Username)
			fmt.Fprintf(out, "  Rol: %s\n", user.Role)
			if user.CompanyID != "" {
				fmt.Fprintf(out, "  Empresa: %s\n", user.CompanyID)
			}
			if !sess.ExpiresAt.IsZero() {
				fmt.Fprintf(out, "  Sesión expira: %s\n", sess.ExpiresAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}

func newUserListCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lista todos los usuarios del sistema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := deps.Sessions.Require()
			if err != nil {
				return err
			}
			users, err := deps.Users.List(sess)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Usuarios del sistema:")
			for _, u := range users {
				fmt.Fprintf(out, "- %s (%s)\n", u.Username, u.Role)
			}
			return nil
		},
	}
}

func newUserAddCmd(deps *Deps) *cobra.Command {
	var (
		username string
		password string
		role     string
		company  string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Crea un usuario nuevo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := deps.Sessions.Require()
			if err != nil {
				return err
			}
			user, err := deps.Users.Add(sess, usecase.AddUserInput{
				Username:  username,
				Password:  password,
				Role:      role,
				CompanyID: company,
			})
			if err != nil {
				return err
			}
			deps.Log.Info().Str("user", user.Username).Str("role", string(user.Role)).Msg("usuario creado")
			fmt.Fprintf(cmd.OutOrStdout(), "Usuario %s creado con rol %s\n", user.Username, user.Role)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "username del usuario nuevo")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password del usuario nuevo")
	cmd.Flags().StringVarP(&role, "role", "r", "", "rol: admin, manager o employee (default employee)")
	cmd.Flags().StringVarP(&company, "company", "c", "", "ID de la empresa (requerido para roles no-admin)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newUserRolesCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "Muestra los roles disponibles y sus capacidades",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := deps.Sessions.Require(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Roles disponibles:")
			for _, info := range deps.Users.Roles() {
				fmt.Fprintf(out, "- %s:\n", info.Role)
				for _, action := range info.Actions {
					fmt.Fprintf(out, "    %s\n", action)
				}
			}
			return nil
		},
	}
}
