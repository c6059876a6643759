package main

import (
	"context"
	"fmt"
	"time"

	"github.com/adeyemio/kobo/internal/advisor"
	"github.com/adeyemio/kobo/internal/cli"
	"github.com/adeyemio/kobo/internal/common"
	"github.com/adeyemio/kobo/internal/config"
	"github.com/adeyemio/kobo/internal/service"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func adviseCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "advise",
		Short: "Generate narrative financial advice",
		Long: `Send a snapshot of your ledger to the configured advisor and print the
advice it returns, section by section. Configure the provider under the
'advisor' key (provider, api_key, model).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			user, err := requireUser(ctx, store)
			if err != nil {
				return err
			}

			cfg := config.LoadAdvisor()
			client, err := advisor.NewClient(cfg)
			if err != nil {
				return err
			}

			snapshot := user.Snapshot()

			// The call can be slow; run it off the command goroutine and
			// spin while we wait.
			type result struct {
				text string
				err  error
			}
			done := make(chan result, 1)
			go func() {
				var text string
				retryErr := common.WithRetry(ctx, func() error {
					var adviseErr error
					text, adviseErr = client.Advise(ctx, snapshot)
					return adviseErr
				}, service.RetryOptions{
					MaxAttempts:  cfg.MaxRetries,
					InitialDelay: cfg.RetryDelay,
				})
				done <- result{text: text, err: retryErr}
			}()

			bar := progressbar.NewOptions(-1,
				progressbar.OptionSetDescription("Generating insights..."),
				progressbar.OptionSpinnerType(14),
				progressbar.OptionClearOnFinish(),
			)

			var res result
		wait:
			for {
				select {
				case res = <-done:
					break wait
				case <-time.After(100 * time.Millisecond):
					_ = bar.Add(1)
				}
			}
			_ = bar.Finish()

			if res.err != nil {
				// The advisor boundary absorbs its own failures; the user
				// sees a message, not a stack of transport errors.
				fmt.Println(cli.ErrorStyle.Render(fmt.Sprintf("Error generating insights: %v", res.err)))
				return nil
			}

			for _, section := range advisor.ParseSections(res.text) {
				if section.Title != "" {
					fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("[%s]", section.Title)))
				}
				fmt.Println(section.Body)
				fmt.Println()
			}

			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall time limit for advice generation")

	return cmd
}
