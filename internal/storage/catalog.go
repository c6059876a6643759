package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/adeyemio/kobo/internal/model"
	"github.com/shopspring/decimal"
)

// CategoryBudgets returns the shared category budget catalog. The catalog
// seeds the budget field of new expense transactions and feeds the
// category selection list; it is not the source of truth for a user's
// own budgets.
func (s *SQLiteStorage) CategoryBudgets(ctx context.Context) (map[string]decimal.Decimal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT category, budget FROM category_budgets ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("failed to query category budgets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	budgets := make(map[string]decimal.Decimal)
	for rows.Next() {
		var category, raw string
		if err := rows.Scan(&category, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan category budget: %w", err)
		}
		budget, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse budget for %q: %w", category, err)
		}
		budgets[category] = budget
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category budgets: %w", err)
	}

	slog.Debug("retrieved category budgets", "count", len(budgets))
	return budgets, nil
}

// ReplaceCategoryBudgets swaps the whole catalog for the given mapping in
// a single transaction. Every edit rewrites the full catalog; there are
// no partial updates.
func (s *SQLiteStorage) ReplaceCategoryBudgets(ctx context.Context, budgets map[string]decimal.Decimal) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if budgets == nil {
		return fmt.Errorf("%w: budgets", ErrNilParameter)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM category_budgets`); err != nil {
		return fmt.Errorf("failed to clear category budgets: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO category_budgets (category, budget) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for category, budget := range budgets {
		if budget.IsNegative() {
			return fmt.Errorf("%w: budget for %q cannot be negative", model.ErrValidation, category)
		}
		if _, err := stmt.ExecContext(ctx, category, budget.String()); err != nil {
			return fmt.Errorf("failed to insert category budget: %w", err)
		}
	}

	return tx.Commit()
}
