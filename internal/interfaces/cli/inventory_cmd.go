package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/company-cli/internal/application/inventory"
	"github.com/jhoicas/company-cli/internal/domain"
	"github.com/jhoicas/company-cli/internal/domain/entity"
)

func newInventoryCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Consulta y actualización del inventario",
	}
	cmd.AddCommand(
		newInventoryViewCmd(deps),
		newInventorySearchCmd(deps),
		newInventoryCategoriesCmd(deps),
		newInventoryDetailsCmd(deps),
		newInventoryUpdateCmd(deps),
	)
	return cmd
}

func newInventoryCategoriesCmd(deps *Deps) *cobra.Command {
	var company string
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Lista las categorías presentes en el inventario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := deps.Sessions.Require()
			if err != nil {
				return err
			}
			categories, err := deps.Inventory.Categories(sess, company)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(categories) == 0 {
				fmt.Fprintln(out, "Sin categorías")
				return nil
			}
			fmt.Fprintln(out, "Categorías:")
			for _, c := range categories {
				fmt.Fprintf(out, "- %s\n", c)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&company, "company", "c", "", "ID de la empresa (otra empresa solo para admin)")
	return cmd
}

func newInventoryViewCmd(deps *Deps) *cobra.Command {
	var company string
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Muestra el inventario completo de la empresa",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := deps.Sessions.Require()
			if err != nil {
				return err
			}
			products, err := deps.Inventory.View(sess, company)
			if err != nil {
				return err
			}
			printProducts(cmd, products)
			return nil
		},
	}
	cmd.Flags().StringVarP(&company, "company", "c", "", "ID de la empresa (otra empresa solo para admin)")
	return cmd
}

func newInventorySearchCmd(deps *Deps) *cobra.Command {
	var (
		company     string
		name        string
		category    string
		minQuantity int
		maxQuantity int
		minPrice    string
		maxPrice    string
	)
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Busca productos por nombre, categoría, cantidad o precio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := deps.Sessions.Require()
			if err != nil {
				return err
			}
			criteria := inventory.Criteria{
				NameContains: name,
				Category:     category,
			}
			// Solo los flags presentes imponen filtro.
			if cmd.Flags().Changed("min-quantity") {
				criteria.MinQuantity = &minQuantity
			}
			if cmd.Flags().Changed("max-quantity") {
				criteria.MaxQuantity = &maxQuantity
			}
			if cmd.Flags().Changed("min-price") {
				parsed, err := parsePrice("min-price", minPrice)
				if err != nil {
					return err
				}
				criteria.MinPrice = parsed
			}
			if cmd.Flags().Changed("max-price") {
				parsed, err := parsePrice("max-price", maxPrice)
				if err != nil {
					return err
				}
				criteria.MaxPrice = parsed
			}
			products, err := deps.Inventory.Search(sess, company, criteria)
			if err != nil {
				return err
			}
			printProducts(cmd, products)
			return nil
		},
	}
	cmd.Flags().StringVarP(&company, "company", "c", "", "ID de la empresa (otra empresa solo para admin)")
	cmd.Flags().StringVar(&name, "name", "", "coincidencia parcial en el nombre, sin distinguir mayúsculas")
	cmd.Flags().StringVar(&category, "category", "", "coincidencia exacta de categoría")
	cmd.Flags().IntVar(&minQuantity, "min-quantity", 0, "cantidad mínima (inclusive)")
	cmd.Flags().IntVar(&maxQuantity, "max-quantity", 0, "cantidad máxima (inclusive)")
	cmd.Flags().StringVar(&minPrice, "min-price", "", "precio mínimo (inclusive)")
	cmd.Flags().StringVar(&maxPrice, "max-price", "", "precio máximo (inclusive)")
	return cmd
}

func newInventoryDetailsCmd(deps *Deps) *cobra.Command {
	var company string
	cmd := &cobra.Command{
		Use:   "product-details <id>",
		Short: "Muestra el detalle de un producto",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := deps.Sessions.Require()
			if err != nil {
				return err
			}
			product, err := deps.Inventory.GetDetails(sess, company, args[0])
			if err != nil {
				return err
			}
			blob, err := json.MarshalIndent(productJSON(product), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(blob))
			return nil
		},
	}
	cmd.Flags().StringVarP(&company, "company", "c", "", "ID de la empresa (otra empresa solo para admin)")
	return cmd
}

func newInventoryUpdateCmd(deps *Deps) *cobra.Command {
	var (
		company  string
		name     string
		sku      string
		quantity int
		price    string
		category string
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Actualiza campos de un producto",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := deps.Sessions.Require()
			if err != nil {
				return err
			}
			var changes inventory.Changes
			if cmd.Flags().Changed("name") {
				changes.Name = &name
			}
			if cmd.Flags().Changed("sku") {
				changes.SKU = &sku
			}
			if cmd.Flags().Changed("quantity") {
				changes.Quantity = &quantity
			}
			if cmd.Flags().Changed("price") {
				parsed, err := parsePrice("price", price)
				if err != nil {
					return err
				}
				changes.Price = parsed
			}
			if cmd.Flags().Changed("category") {
				changes.Category = &category
			}
			product, err := deps.Inventory.Update(sess, company, args[0], changes)
			if err != nil {
				return err
			}
			deps.Log.Info().Str("product", product.ID).Str("by", sess.UserID).Msg("producto actualizado")
			fmt.Fprintf(cmd.OutOrStdout(), "Producto %s actualizado\n", product.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&company, "company", "c", "", "ID de la empresa (otra empresa solo para admin)")
	cmd.Flags().StringVar(&name, "name", "", "nuevo nombre")
	cmd.Flags().StringVar(&sku, "sku", "", "nuevo SKU")
	cmd.Flags().IntVar(&quantity, "quantity", 0, "nueva cantidad")
	cmd.Flags().StringVar(&price, "price", "", "nuevo precio")
	cmd.Flags().StringVar(&category, "category", "", "nueva categoría")
	return cmd
}

func parsePrice(field, raw string) (*decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, &domain.ValidationError{Field: field, Detail: "no es un número válido"}
	}
	return &d, nil
}

func printProducts(cmd *cobra.Command, products []*entity.Product) {
	out := cmd.OutOrStdout()
	if len(products) == 0 {
		fmt.Fprintln(out, "Sin productos")
		return
	}
	for _, p := range products {
		fmt.Fprintf(cmd.OutOrStdout(), "- %s [%s] %s (%s) x%d $%s\n",
			p.ID, p.SKU, p.Name, p.Category, p.Quantity, p.Price.StringFixed(2))
	}
	fmt.Fprintf(out, "%d producto(s)\n", len(products))
}

// productJSON da forma estable a la salida de product-details.
func productJSON(p *entity.Product) map[string]any {
	out := map[string]any{
		"id":         p.ID,
		"company_id": p.CompanyID,
		"sku":        p.SKU,
		"name":       p.Name,
		"quantity":   p.Quantity,
		"price":      p.Price.String(),
		"category":   p.Category,
	}
	if p.LastUpdatedBy != "" {
		out["last_updated_by"] = p.LastUpdatedBy
		out["last_updated_at"] = p.LastUpdatedAt.Format(time.RFC3339)
	}
	return out
}
