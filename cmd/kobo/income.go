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

func incomeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "income",
		Short: "Manage income sources",
		Long:  `Record named income sources. A source's amount is replaced when set again.`,
	}

	cmd.AddCommand(addIncomeCmd())
	cmd.AddCommand(listIncomeCmd())

	return cmd
}

func addIncomeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <source> <amount>",
		Short: "Add or update an income source",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
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

			if err := user.AddIncome(args[0], amount); err != nil {
				return err
			}
			if err := store.SaveUser(ctx, user); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Recorded income source %q: ₦%s", args[0], amount.StringFixed(2))))
			return nil
		},
	}
}

func listIncomeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List income sources",
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

			if len(user.IncomeSources) == 0 {
				fmt.Println(cli.InfoStyle.Render("No income sources yet. Use 'kobo income add' to record one."))
				return nil
			}

			sources := make([]string, 0, len(user.IncomeSources))
			for source := range user.IncomeSources {
				sources = append(sources, source)
			}
			sort.Strings(sources)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "Source\tAmount\n")
			for _, source := range sources {
				fmt.Fprintf(w, "%s\t₦%s\n", source, user.IncomeSources[source].StringFixed(2))
			}
			fmt.Fprintf(w, "Total\t₦%s\n", user.TotalIncome().StringFixed(2))

			return nil
		},
	}
}
