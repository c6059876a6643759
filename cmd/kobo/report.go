package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/adeyemio/kobo/internal/cli"
	"github.com/spf13/cobra"
)

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show totals, spending by category, and budget status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			user, err := requireUser(ctx, store)
			if err != nil {
				return err
			}

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Ledger for %s", user.Username)))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Total income\t₦%s\n", user.TotalIncome().StringFixed(2))
			fmt.Fprintf(w, "Total expenses\t₦%s\n", user.TotalExpenses().StringFixed(2))
			fmt.Fprintf(w, "Net balance\t₦%s\n", user.NetBalance().StringFixed(2))
			_ = w.Flush()

			byCategory := user.ExpensesByCategory()
			if len(byCategory) > 0 {
				fmt.Println()
				fmt.Println(cli.TitleStyle.Render("Spending by category"))

				categories := make([]string, 0, len(byCategory))
				for category := range byCategory {
					categories = append(categories, category)
				}
				sort.Strings(categories)

				w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				for _, category := range categories {
					fmt.Fprintf(w, "%s\t₦%s\n", category, byCategory[category].StringFixed(2))
				}
				_ = w.Flush()
			}

			status := user.BudgetStatus()
			if len(status) > 0 {
				fmt.Println()
				fmt.Println(cli.TitleStyle.Render("Budget status"))

				categories := make([]string, 0, len(status))
				for category := range status {
					categories = append(categories, category)
				}
				sort.Strings(categories)

				w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintf(w, "Category\tBudget\tSpent\tRemaining\t\n")
				for _, category := range categories {
					line := status[category]
					flag := ""
					if line.OverBudget() {
						flag = cli.ErrorStyle.Render("over budget")
					}
					fmt.Fprintf(w, "%s\t₦%s\t₦%s\t₦%s\t%s\n",
						category,
						line.Budget.StringFixed(2),
						line.Spent.StringFixed(2),
						line.Remaining.StringFixed(2),
						flag)
				}
				_ = w.Flush()
			}

			return nil
		},
	}
}
