package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot is the structured view of a ledger handed to the narrative
// advisor. It carries raw collections plus the derived totals so the
// advisor never recomputes them.
type Snapshot struct {
	IncomeSources  map[string]decimal.Decimal `json:"income_sources"`
	ExpenseBudgets map[string]decimal.Decimal `json:"expense_budgets"`
	Transactions   []SnapshotTransaction      `json:"transactions"`
	TotalIncome    decimal.Decimal            `json:"total_income"`
	TotalExpenses  decimal.Decimal            `json:"total_expenses"`
	NetBalance     decimal.Decimal            `json:"net_balance"`
	DateRange      string                     `json:"date_range"`
	Username       string                     `json:"username"`
}

// SnapshotTransaction is the reduced transaction shape the advisor sees.
type SnapshotTransaction struct {
	Category string           `json:"category"`
	Amount   decimal.Decimal  `json:"amount"`
	Date     string           `json:"date"`
	Budget   *decimal.Decimal `json:"budget"`
}

// Snapshot builds the advisor input from the current aggregate state.
func (u *User) Snapshot() Snapshot {
	snap := Snapshot{
		IncomeSources:  u.IncomeSources,
		ExpenseBudgets: u.ExpenseBudgets,
		Transactions:   make([]SnapshotTransaction, 0, len(u.Transactions)),
		TotalIncome:    u.TotalIncome(),
		TotalExpenses:  u.TotalExpenses(),
		NetBalance:     u.NetBalance(),
		DateRange:      u.dateRange(),
		Username:       u.Username,
	}
	for i := range u.Transactions {
		t := &u.Transactions[i]
		snap.Transactions = append(snap.Transactions, SnapshotTransaction{
			Category: t.Category,
			Amount:   t.Amount,
			Date:     t.Date,
			Budget:   t.Budget,
		})
	}
	return snap
}

// dateRange describes the span covered by the transaction history.
// Unparseable dates are skipped rather than failing the snapshot.
func (u *User) dateRange() string {
	var first, last time.Time
	for i := range u.Transactions {
		d, err := time.Parse("2006-01-02", u.Transactions[i].Date)
		if err != nil {
			continue
		}
		if first.IsZero() || d.Before(first) {
			first = d
		}
		if last.IsZero() || d.After(last) {
			last = d
		}
	}
	if first.IsZero() {
		return "No date range"
	}
	return fmt.Sprintf("%s to %s",
		first.Format("January 02, 2006"),
		last.Format("January 02, 2006"))
}
