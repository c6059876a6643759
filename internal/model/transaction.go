package model

import "github.com/shopspring/decimal"

// Kind distinguishes money coming in from money going out.
type Kind string

const (
	// KindIncome marks a transaction that brings money in.
	KindIncome Kind = "income"
	// KindExpense marks a transaction that spends money.
	KindExpense Kind = "expense"
)

// Transaction represents a single recorded money movement. A transaction
// is never mutated after creation; corrections happen by re-entering data.
type Transaction struct {
	ID          string
	Kind        Kind
	Category    string
	Amount      decimal.Decimal
	Date        string // calendar date, YYYY-MM-DD
	Description string
	Budget      *decimal.Decimal // budget at entry time, expenses only
}

// IsExpense reports whether the transaction spends money.
func (t *Transaction) IsExpense() bool {
	return t.Kind == KindExpense
}

// IsIncome reports whether the transaction brings money in.
func (t *Transaction) IsIncome() bool {
	return t.Kind == KindIncome
}

// IsOverBudget reports whether an expense exceeds the budget recorded on
// it. The second return is false when the question does not apply: the
// transaction is not an expense, or it carries no budget.
func (t *Transaction) IsOverBudget() (over, ok bool) {
	if !t.IsExpense() || t.Budget == nil {
		return false, false
	}
	return t.Amount.GreaterThan(*t.Budget), true
}
