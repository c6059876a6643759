package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/adeyemio/kobo/internal/cli"
	"github.com/adeyemio/kobo/internal/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func txnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "txn",
		Short: "Record and inspect transactions",
	}

	cmd.AddCommand(addTxnCmd())
	cmd.AddCommand(listTxnCmd())

	return cmd
}

func addTxnCmd() *cobra.Command {
	var (
		kind        string
		category    string
		amountStr   string
		dateStr     string
		description string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Long: `Record an income or expense transaction. Expenses take their budget
field from the shared category catalog when the category is listed there;
the first expense in a category also seeds the budget on your ledger.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			// The entry workflow owns input validation; the aggregate
			// accepts whatever it is handed.
			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amountStr, err)
			}
			if amount.LessThanOrEqual(decimal.Zero) {
				return fmt.Errorf("%w: amount must be positive", model.ErrValidation)
			}

			if dateStr == "" {
				dateStr = time.Now().Format("2006-01-02")
			}
			if _, err := time.Parse("2006-01-02", dateStr); err != nil {
				return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", dateStr)
			}

			var txnKind model.Kind
			switch kind {
			case "expense":
				txnKind = model.KindExpense
			case "income":
				txnKind = model.KindIncome
			default:
				return fmt.Errorf("invalid kind %q: expected income or expense", kind)
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

			txn := model.Transaction{
				ID:          uuid.NewString(),
				Kind:        txnKind,
				Category:    category,
				Amount:      amount,
				Date:        dateStr,
				Description: description,
			}

			if txn.IsExpense() {
				catalog, err := store.CategoryBudgets(ctx)
				if err != nil {
					return fmt.Errorf("failed to load category catalog: %w", err)
				}
				if budget, ok := catalog[category]; ok {
					txn.Budget = &budget
				}
			}

			user.AddTransaction(txn)
			if err := store.SaveUser(ctx, user); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"Recorded %s of ₦%s in %q on %s", kind, amount.StringFixed(2), category, dateStr)))
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "expense", "transaction kind (income, expense)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "transaction category")
	cmd.Flags().StringVarP(&amountStr, "amount", "a", "", "transaction amount")
	cmd.Flags().StringVarP(&dateStr, "date", "d", "", "transaction date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&description, "description", "", "optional description")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func listTxnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List transactions in entry order",
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

			if len(user.Transactions) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions yet. Use 'kobo txn add' to record one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "Date\tKind\tCategory\tAmount\tBudget\tDescription\n")
			for i := range user.Transactions {
				t := &user.Transactions[i]
				budget := "-"
				if t.Budget != nil {
					budget = "₦" + t.Budget.StringFixed(2)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t₦%s\t%s\t%s\n",
					t.Date, t.Kind, t.Category, t.Amount.StringFixed(2), budget, t.Description)
			}

			return nil
		},
	}
}
