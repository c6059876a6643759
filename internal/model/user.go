// Package model contains the financial data model: transactions and the
// user aggregate that owns them.
package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrValidation is returned when a mutation would violate an aggregate
// invariant. Callers surface it to the user; no partial mutation occurs.
var ErrValidation = errors.New("validation failed")

// User is the aggregate root for one person's ledger. It exclusively owns
// its transactions and is the only mutation and query entry point for
// them. All data lives in memory for one logical session at a time; the
// aggregate itself does no locking.
type User struct {
	Username       string
	Password       string // opaque credential blob; a bcrypt hash at rest
	Transactions   []Transaction
	IncomeSources  map[string]decimal.Decimal
	ExpenseBudgets map[string]decimal.Decimal
}

// NewUser creates a user with empty collections.
func NewUser(username, password string) *User {
	return &User{
		Username:       username,
		Password:       password,
		IncomeSources:  make(map[string]decimal.Decimal),
		ExpenseBudgets: make(map[string]decimal.Decimal),
	}
}

// AddIncome records or replaces a named income source. Amounts must be
// positive.
func (u *User) AddIncome(source string, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: income amount must be positive", ErrValidation)
	}
	if u.IncomeSources == nil {
		u.IncomeSources = make(map[string]decimal.Decimal)
	}
	u.IncomeSources[source] = amount
	return nil
}

// AddExpenseBudget records or replaces the budget for a category. Budgets
// must not be negative; zero is allowed.
func (u *User) AddExpenseBudget(category string, budget decimal.Decimal) error {
	if budget.IsNegative() {
		return fmt.Errorf("%w: budget amount cannot be negative", ErrValidation)
	}
	if u.ExpenseBudgets == nil {
		u.ExpenseBudgets = make(map[string]decimal.Decimal)
	}
	u.ExpenseBudgets[category] = budget
	return nil
}

// AddTransaction appends a transaction to the ledger in entry order. The
// first expense seen in a category seeds that category's budget from the
// transaction's own budget field (or zero when unset); transactions in an
// already-known category never alter the stored budget.
func (u *User) AddTransaction(t Transaction) {
	u.Transactions = append(u.Transactions, t)

	if !t.IsExpense() {
		return
	}
	if u.ExpenseBudgets == nil {
		u.ExpenseBudgets = make(map[string]decimal.Decimal)
	}
	if _, seeded := u.ExpenseBudgets[t.Category]; !seeded {
		budget := decimal.Zero
		if t.Budget != nil {
			budget = *t.Budget
		}
		u.ExpenseBudgets[t.Category] = budget
	}
}

// TotalIncome sums the named income sources. Income-kind transactions are
// deliberately not counted here: income is tracked as named sources, and
// the two records are not reconciled.
func (u *User) TotalIncome() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range u.IncomeSources {
		total = total.Add(amount)
	}
	return total
}

// TotalExpenses sums the amounts of all expense transactions.
func (u *User) TotalExpenses() decimal.Decimal {
	total := decimal.Zero
	for i := range u.Transactions {
		if u.Transactions[i].IsExpense() {
			total = total.Add(u.Transactions[i].Amount)
		}
	}
	return total
}

// NetBalance is total income minus total expenses.
func (u *User) NetBalance() decimal.Decimal {
	return u.TotalIncome().Sub(u.TotalExpenses())
}

// ExpensesByCategory aggregates expense amounts per category. Categories
// without any expense transactions are absent from the result, not
// zero-valued.
func (u *User) ExpensesByCategory() map[string]decimal.Decimal {
	expenses := make(map[string]decimal.Decimal)
	for i := range u.Transactions {
		t := &u.Transactions[i]
		if !t.IsExpense() {
			continue
		}
		expenses[t.Category] = expenses[t.Category].Add(t.Amount)
	}
	return expenses
}

// BudgetLine is the budget position of one category.
type BudgetLine struct {
	Budget    decimal.Decimal
	Spent     decimal.Decimal
	Remaining decimal.Decimal
}

// OverBudget reports whether spending exceeds the budget. Remaining is
// floored at zero and cannot signal this on its own.
func (l BudgetLine) OverBudget() bool {
	return l.Spent.GreaterThan(l.Budget)
}

// BudgetStatus reports the budget position of every budgeted category.
// Spent is zero for categories without expense transactions, and
// Remaining is max(0, budget-spent).
func (u *User) BudgetStatus() map[string]BudgetLine {
	status := make(map[string]BudgetLine, len(u.ExpenseBudgets))
	spentByCategory := u.ExpensesByCategory()

	for category, budget := range u.ExpenseBudgets {
		spent := spentByCategory[category]
		remaining := budget.Sub(spent)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}
		status[category] = BudgetLine{
			Budget:    budget,
			Spent:     spent,
			Remaining: remaining,
		}
	}
	return status
}
