// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/adeyemio/kobo/internal/model"
	"github.com/shopspring/decimal"
)

// UserStore defines the contract for the persisted user ledgers. Records
// are keyed by username and saved as whole-aggregate overwrites; there is
// no partial update, versioning, or cross-session conflict detection.
// Two sessions saving the same username concurrently is last-writer-wins.
type UserStore interface {
	// Register creates a user with empty collections. It returns false
	// (and no error) when the username is already taken.
	Register(ctx context.Context, username, password string) (bool, error)

	// Login returns the reconstructed aggregate on a credential match,
	// or (nil, nil) when the username is unknown or the password wrong.
	Login(ctx context.Context, username, password string) (*model.User, error)

	// SaveUser overwrites the stored aggregate for user.Username. Saving
	// a username that was never registered is a silent no-op.
	SaveUser(ctx context.Context, user *model.User) error

	Migrate(ctx context.Context) error
	Close() error
}

// BudgetCatalog is the shared category-to-budget mapping used to seed the
// budget field of new expense transactions and to list selectable
// categories. It is maintained independently of per-user budgets and the
// two may disagree.
type BudgetCatalog interface {
	// CategoryBudgets returns the full catalog.
	CategoryBudgets(ctx context.Context) (map[string]decimal.Decimal, error)

	// ReplaceCategoryBudgets swaps the entire catalog for the given
	// mapping in one step.
	ReplaceCategoryBudgets(ctx context.Context, budgets map[string]decimal.Decimal) error
}

// Advisor produces narrative financial advice from a ledger snapshot. The
// returned text is segmented by bracketed section headers; callers only
// split it, never interpret it. Implementations own their timeouts and
// convert transport failures to ordinary errors.
type Advisor interface {
	Advise(ctx context.Context, snapshot model.Snapshot) (string, error)
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
