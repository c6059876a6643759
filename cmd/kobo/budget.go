package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/adeyemio/kobo/internal/cli"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage your per-category budgets",
		Long: `Set and list the budgets on your own ledger. These are separate from the
shared category catalog ('kobo categories'), which only seeds new
transactions.`,
	}

	cmd.AddCommand(setBudgetCmd())
	cmd.AddCommand(listBudgetCmd())

	return cmd
}

func setBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <category> <amount>",
		Short: "Set the budget for a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			budget, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("invalid budget %q: %w", args[1], err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			user, err := requireUser(ctx, store)
			if err != nil {
				return err
			}

			if err := user.AddExpenseBudget(args[0], budget); err != nil {
				return err
			}
			if err := store.SaveUser(ctx, user); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Budget for %q set to ₦%s", args[0], budget.StringFixed(2))))
			return nil
		},
	}
}

func listBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show budget status for every budgeted category",
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

			status := user.BudgetStatus()
			if len(status) == 0 {
				fmt.Println(cli.InfoStyle.Render("No budgets yet. Set one with 'kobo budget set' or add an expense."))
				return nil
			}

			categories := make([]string, 0, len(status))
			for category := range status {
				categories = append(categories, category)
			}
			sort.Strings(categories)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

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

			return nil
		},
	}
}
