package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"storefront/internal/catalog"
	"storefront/internal/geometry"
	"storefront/internal/money"
)

var categoryFlag string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the product catalog",
	Long: `Prints the products the shop starts with, optionally filtered by category,
together with the preview shape each one gets.

Example:
  storefront catalog --category dresses`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := catalog.All
		if categoryFlag != "" {
			var ok bool
			if c, ok = catalog.ParseCategory(categoryFlag); !ok {
				return fmt.Errorf("%w: %q", catalog.ErrUnknownCategory, categoryFlag)
			}
		}
		store, err := loadCatalog()
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tSTOCK\tSHAPE\tCOLOR")
		for _, p := range store.Filter(c) {
			shape := geometry.ForProduct(p)
			fmt.Fprintf(w, "%d\t%s %s\t%s\t%s\t%d\t%s\t%s\n",
				p.ID, p.Glyph, p.Name, p.Category, money.Format(p.Price), p.Stock, shape.Name, p.Color)
		}
		return w.Flush()
	},
}

func init() {
	catalogCmd.Flags().StringVar(&categoryFlag, "category", "", "only list this category (tops, bottoms, dresses, outerwear, footwear)")
}
