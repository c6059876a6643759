package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	u := NewUser("ada", "hashed-pw")
	require.NoError(t, u.AddIncome("Salary", dec("500000")))
	require.NoError(t, u.AddExpenseBudget("Rent", dec("150000")))
	u.AddTransaction(Transaction{
		ID:          "t1",
		Kind:        KindExpense,
		Category:    "Food",
		Amount:      dec("12000.50"),
		Date:        "2026-01-05",
		Description: "groceries",
		Budget:      decPtr("15000"),
	})
	u.AddTransaction(Transaction{
		ID:       "t2",
		Kind:     KindIncome,
		Category: "Salary",
		Amount:   dec("500000"),
		Date:     "2026-01-01",
	})

	data, err := EncodeUser(u)
	require.NoError(t, err)

	decoded, err := DecodeUser(data)
	require.NoError(t, err)

	assert.Equal(t, u.Username, decoded.Username)
	assert.Equal(t, u.Password, decoded.Password)
	require.Len(t, decoded.Transactions, 2)

	got := decoded.Transactions[0]
	assert.Equal(t, "t1", got.ID)
	assert.Equal(t, KindExpense, got.Kind)
	assert.Equal(t, "Food", got.Category)
	assert.True(t, got.Amount.Equal(dec("12000.50")))
	assert.Equal(t, "2026-01-05", got.Date)
	assert.Equal(t, "groceries", got.Description)
	require.NotNil(t, got.Budget)
	assert.True(t, got.Budget.Equal(dec("15000")))

	assert.Empty(t, decoded.Transactions[1].Description)
	assert.Nil(t, decoded.Transactions[1].Budget)

	assert.True(t, decoded.IncomeSources["Salary"].Equal(dec("500000")))
	assert.True(t, decoded.ExpenseBudgets["Rent"].Equal(dec("150000")))
	assert.True(t, decoded.ExpenseBudgets["Food"].Equal(dec("15000")), "seeded budget survives the round trip")

	// A second encode of the decoded aggregate reproduces the document.
	again, err := EncodeUser(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(again))
}

func TestEncodeEmptyAggregate(t *testing.T) {
	u := NewUser("ada", "pw")

	data, err := EncodeUser(u)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"username": "ada",
		"password": "pw",
		"transactions": [],
		"income_sources": {},
		"expense_budgets": {}
	}`, string(data))

	decoded, err := DecodeUser(data)
	require.NoError(t, err)
	assert.Empty(t, decoded.Transactions)
	assert.Empty(t, decoded.IncomeSources)
	assert.Empty(t, decoded.ExpenseBudgets)
}

func TestDecodeDefaultsForMissingFields(t *testing.T) {
	doc := `{
		"username": "ada",
		"password": "pw",
		"transactions": [
			{"id": "t1", "type": "expense", "category": "Food", "amount": "12000", "date": "2026-01-05"}
		]
	}`

	u, err := DecodeUser([]byte(doc))
	require.NoError(t, err)

	require.Len(t, u.Transactions, 1)
	assert.Empty(t, u.Transactions[0].Description, "missing description defaults to empty")
	assert.Nil(t, u.Transactions[0].Budget, "missing budget stays absent")
	assert.NotNil(t, u.IncomeSources, "missing collections decode as empty, not nil")
	assert.NotNil(t, u.ExpenseBudgets)
}

func TestDecodeMalformedDocument(t *testing.T) {
	_, err := DecodeUser([]byte(`{"username": "ada",`))
	require.Error(t, err)
}
