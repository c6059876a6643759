package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestAddIncome(t *testing.T) {
	tests := []struct {
		name    string
		amount  decimal.Decimal
		wantErr bool
	}{
		{name: "positive amount", amount: dec("5000"), wantErr: false},
		{name: "zero amount rejected", amount: dec("0"), wantErr: true},
		{name: "negative amount rejected", amount: dec("-5"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := NewUser("ada", "pw")
			err := u.AddIncome("Salary", tt.amount)

			if tt.wantErr {
				require.ErrorIs(t, err, ErrValidation)
				assert.Empty(t, u.IncomeSources, "failed mutation must leave income sources unchanged")
				return
			}

			require.NoError(t, err)
			require.Contains(t, u.IncomeSources, "Salary")
			assert.True(t, u.IncomeSources["Salary"].Equal(tt.amount))
		})
	}
}

func TestAddIncomeLastWriteWins(t *testing.T) {
	u := NewUser("ada", "pw")
	require.NoError(t, u.AddIncome("Salary", dec("5000")))
	require.NoError(t, u.AddIncome("Salary", dec("6000")))

	assert.Len(t, u.IncomeSources, 1)
	assert.True(t, u.IncomeSources["Salary"].Equal(dec("6000")))
}

func TestAddExpenseBudget(t *testing.T) {
	u := NewUser("ada", "pw")

	err := u.AddExpenseBudget("Food", dec("-1"))
	require.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, u.ExpenseBudgets)

	require.NoError(t, u.AddExpenseBudget("Food", dec("0")), "zero budget is allowed")
	require.NoError(t, u.AddExpenseBudget("Rent", dec("200000")))
	assert.True(t, u.ExpenseBudgets["Rent"].Equal(dec("200000")))
}

func TestAddTransactionSeedsBudgetOnce(t *testing.T) {
	u := NewUser("ada", "pw")

	u.AddTransaction(Transaction{
		ID:       "t1",
		Kind:     KindExpense,
		Category: "Food",
		Amount:   dec("12000"),
		Date:     "2026-01-05",
		Budget:   decPtr("15000"),
	})
	u.AddTransaction(Transaction{
		ID:       "t2",
		Kind:     KindExpense,
		Category: "Food",
		Amount:   dec("3000"),
		Date:     "2026-01-06",
		Budget:   decPtr("99999"),
	})

	require.Contains(t, u.ExpenseBudgets, "Food")
	assert.True(t, u.ExpenseBudgets["Food"].Equal(dec("15000")),
		"budget must come from the first transaction only, got %s", u.ExpenseBudgets["Food"])
	assert.Len(t, u.Transactions, 2, "both transactions are appended regardless")
}

func TestAddTransactionSeedsZeroWithoutBudget(t *testing.T) {
	u := NewUser("ada", "pw")

	u.AddTransaction(Transaction{
		ID:       "t1",
		Kind:     KindExpense,
		Category: "Transport",
		Amount:   dec("500"),
		Date:     "2026-01-05",
	})

	require.Contains(t, u.ExpenseBudgets, "Transport")
	assert.True(t, u.ExpenseBudgets["Transport"].IsZero())
}

func TestAddTransactionIncomeDoesNotSeed(t *testing.T) {
	u := NewUser("ada", "pw")

	u.AddTransaction(Transaction{
		ID:       "t1",
		Kind:     KindIncome,
		Category: "Salary",
		Amount:   dec("500000"),
		Date:     "2026-01-01",
	})

	assert.Empty(t, u.ExpenseBudgets)
	assert.Len(t, u.Transactions, 1)
}

func TestTotalIncomeIgnoresIncomeTransactions(t *testing.T) {
	u := NewUser("ada", "pw")
	require.NoError(t, u.AddIncome("Salary", dec("500000")))

	// Income-kind transactions exist but are never summed into totals.
	u.AddTransaction(Transaction{
		ID:       "t1",
		Kind:     KindIncome,
		Category: "Bonus",
		Amount:   dec("100000"),
		Date:     "2026-01-15",
	})

	assert.True(t, u.TotalIncome().Equal(dec("500000")))
}

func TestTotalsAdditivity(t *testing.T) {
	u := NewUser("ada", "pw")
	u.AddTransaction(Transaction{ID: "t1", Kind: KindExpense, Category: "Food", Amount: dec("12000"), Date: "2026-01-05"})
	u.AddTransaction(Transaction{ID: "t2", Kind: KindExpense, Category: "Rent", Amount: dec("150000"), Date: "2026-01-01"})
	u.AddTransaction(Transaction{ID: "t3", Kind: KindExpense, Category: "Food", Amount: dec("8000"), Date: "2026-01-12"})
	u.AddTransaction(Transaction{ID: "t4", Kind: KindIncome, Category: "Salary", Amount: dec("500000"), Date: "2026-01-01"})

	sum := decimal.Zero
	for _, amount := range u.ExpensesByCategory() {
		sum = sum.Add(amount)
	}
	assert.True(t, u.TotalExpenses().Equal(sum),
		"total expenses %s must equal per-category sum %s", u.TotalExpenses(), sum)
	assert.True(t, u.TotalExpenses().Equal(dec("170000")))
}

func TestNetBalance(t *testing.T) {
	u := NewUser("ada", "pw")
	require.NoError(t, u.AddIncome("Salary", dec("500000")))
	u.AddTransaction(Transaction{ID: "t1", Kind: KindExpense, Category: "Rent", Amount: dec("150000"), Date: "2026-01-01"})

	assert.True(t, u.NetBalance().Equal(dec("350000")))
}

func TestExpensesByCategoryOmitsUnused(t *testing.T) {
	u := NewUser("ada", "pw")
	require.NoError(t, u.AddExpenseBudget("Food", dec("15000")))

	byCategory := u.ExpensesByCategory()
	assert.NotContains(t, byCategory, "Food",
		"budgeted categories without expenses are absent, not zero-valued")
}

func TestBudgetStatusSeedAndSpend(t *testing.T) {
	u := NewUser("ada", "pw")

	u.AddTransaction(Transaction{
		ID:       "t1",
		Kind:     KindExpense,
		Category: "Food",
		Amount:   dec("12000"),
		Date:     "2026-01-05",
		Budget:   decPtr("15000"),
	})

	status := u.BudgetStatus()
	require.Contains(t, status, "Food")
	line := status["Food"]
	assert.True(t, line.Budget.Equal(dec("15000")))
	assert.True(t, line.Spent.Equal(dec("12000")))
	assert.True(t, line.Remaining.Equal(dec("3000")))
	assert.False(t, line.OverBudget())
}

func TestBudgetStatusRemainingFlooredAtZero(t *testing.T) {
	u := NewUser("ada", "pw")

	u.AddTransaction(Transaction{
		ID:       "t1",
		Kind:     KindExpense,
		Category: "Food",
		Amount:   dec("12000"),
		Date:     "2026-01-05",
		Budget:   decPtr("15000"),
	})
	u.AddTransaction(Transaction{
		ID:       "t2",
		Kind:     KindExpense,
		Category: "Food",
		Amount:   dec("10000"),
		Date:     "2026-01-09",
	})

	byCategory := u.ExpensesByCategory()
	require.Contains(t, byCategory, "Food")
	assert.True(t, byCategory["Food"].Equal(dec("22000")))

	status := u.BudgetStatus()
	line := status["Food"]
	assert.True(t, line.Budget.Equal(dec("15000")))
	assert.True(t, line.Spent.Equal(dec("22000")))
	assert.True(t, line.Remaining.IsZero(), "remaining is floored, got %s", line.Remaining)
	assert.True(t, line.OverBudget(), "overrun is detected by spent > budget, not by remaining")
}

func TestBudgetStatusZeroSpendCategory(t *testing.T) {
	u := NewUser("ada", "pw")
	require.NoError(t, u.AddExpenseBudget("Savings", dec("50000")))

	status := u.BudgetStatus()
	require.Contains(t, status, "Savings")
	line := status["Savings"]
	assert.True(t, line.Spent.IsZero())
	assert.True(t, line.Remaining.Equal(dec("50000")))

	for category, l := range status {
		assert.False(t, l.Remaining.IsNegative(), "remaining for %s must never be negative", category)
	}
}

func TestTransactionIsOverBudget(t *testing.T) {
	tests := []struct {
		name     string
		txn      Transaction
		wantOver bool
		wantOK   bool
	}{
		{
			name:     "expense over budget",
			txn:      Transaction{Kind: KindExpense, Amount: dec("20000"), Budget: decPtr("15000")},
			wantOver: true,
			wantOK:   true,
		},
		{
			name:     "expense within budget",
			txn:      Transaction{Kind: KindExpense, Amount: dec("10000"), Budget: decPtr("15000")},
			wantOver: false,
			wantOK:   true,
		},
		{
			name:   "expense without budget is undefined",
			txn:    Transaction{Kind: KindExpense, Amount: dec("10000")},
			wantOK: false,
		},
		{
			name:   "income is undefined",
			txn:    Transaction{Kind: KindIncome, Amount: dec("10000"), Budget: decPtr("15000")},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			over, ok := tt.txn.IsOverBudget()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantOver, over)
		})
	}
}
