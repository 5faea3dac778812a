package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCompaniesCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "companies",
		Short: "Lista las empresas registradas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := deps.Sessions.Require()
			if err != nil {
				return err
			}
			companies, err := deps.Companies.List(sess)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Empresas registradas:")
			for _, c := range companies {
				fmt.Fprintf(out, "- %s: %s (%s)\n", c.ID, c.Name, c.Location)
			}
			return nil
		},
	}
}

func newEmployeesCmd(deps *Deps) *cobra.Command {
	var company string
	cmd := &cobra.Command{
		Use:   "employees",
		Short: "Lista los empleados de una empresa",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := deps.Sessions.Require()
			if err != nil {
				return err
			}
			employees, err := deps.Companies.Employees(sess, company)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Empleados:")
			for _, u := range employees {
				fmt.Fprintf(out, "- %s (%s)\n", u.Username, u.Role)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&company, "company", "c", "", "ID de la empresa (default: la de la sesión; otra solo para admin)")
	return cmd
}
