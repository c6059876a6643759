package main

import (
	"fmt"

	"github.com/adeyemio/kobo/internal/cli"
	"github.com/spf13/cobra"
)

func registerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Long:  `Register a new username with an empty ledger. Usernames are unique.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			username, password, err := sessionCredentials()
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			created, err := store.Register(ctx, username, password)
			if err != nil {
				return fmt.Errorf("registration failed: %w", err)
			}
			if !created {
				fmt.Println(cli.ErrorStyle.Render(fmt.Sprintf("Username %q is already taken.", username)))
				return nil
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Registered %q. Welcome to kobo!", username)))
			return nil
		},
	}
}

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Check credentials",
		Long:  `Verify a username and password against the store and show ledger counts.`,
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

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Logged in as %q.", user.Username)))
			fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf(
				"%d transactions, %d income sources, %d budgeted categories",
				len(user.Transactions), len(user.IncomeSources), len(user.ExpenseBudgets))))
			return nil
		},
	}
}
