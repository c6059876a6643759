package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/adeyemio/kobo/internal/cli"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage the shared category catalog",
		Long: `The catalog maps category names to default budgets. New expense
transactions take their budget field from it. It is kept separately from
any user's own budgets and the two are not synchronized.`,
	}

	cmd.AddCommand(setCategoriesCmd())
	cmd.AddCommand(listCategoriesCmd())

	return cmd
}

func setCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <category=budget> [<category=budget> ...]",
		Short: "Replace the whole catalog",
		Long:  `Replace the entire catalog with the given category=budget pairs. Entries not listed are dropped.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			budgets := make(map[string]decimal.Decimal, len(args))
			for _, arg := range args {
				name, raw, found := strings.Cut(arg, "=")
				if !found || strings.TrimSpace(name) == "" {
					return fmt.Errorf("invalid entry %q: expected category=budget", arg)
				}
				budget, err := decimal.NewFromString(raw)
				if err != nil {
					return fmt.Errorf("invalid budget in %q: %w", arg, err)
				}
				budgets[strings.TrimSpace(name)] = budget
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.ReplaceCategoryBudgets(ctx, budgets); err != nil {
				return fmt.Errorf("failed to save categories: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Catalog replaced: %d categories.", len(budgets))))
			return nil
		},
	}
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			budgets, err := store.CategoryBudgets(ctx)
			if err != nil {
				return fmt.Errorf("failed to load categories: %w", err)
			}

			if len(budgets) == 0 {
				fmt.Println(cli.InfoStyle.Render("No categories yet. Use 'kobo categories set' to create some."))
				return nil
			}

			categories := make([]string, 0, len(budgets))
			for category := range budgets {
				categories = append(categories, category)
			}
			sort.Strings(categories)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "Category\tDefault budget\n")
			for _, category := range categories {
				fmt.Fprintf(w, "%s\t₦%s\n", category, budgets[category].StringFixed(2))
			}

			return nil
		},
	}
}
