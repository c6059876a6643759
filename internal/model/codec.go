package model

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// userDoc is the persisted shape of a user aggregate. The whole document
// is rewritten on every save.
type userDoc struct {
	Username       string                     `json:"username"`
	Password       string                     `json:"password"`
	Transactions   []transactionDoc           `json:"transactions"`
	IncomeSources  map[string]decimal.Decimal `json:"income_sources"`
	ExpenseBudgets map[string]decimal.Decimal `json:"expense_budgets"`
}

type transactionDoc struct {
	ID          string           `json:"id"`
	Type        string           `json:"type"`
	Category    string           `json:"category"`
	Amount      decimal.Decimal  `json:"amount"`
	Date        string           `json:"date"`
	Description string           `json:"description,omitempty"`
	Budget      *decimal.Decimal `json:"budget,omitempty"`
}

// EncodeUser serializes the full aggregate to its persisted JSON document.
func EncodeUser(u *User) ([]byte, error) {
	doc := userDoc{
		Username:       u.Username,
		Password:       u.Password,
		Transactions:   make([]transactionDoc, 0, len(u.Transactions)),
		IncomeSources:  u.IncomeSources,
		ExpenseBudgets: u.ExpenseBudgets,
	}
	if doc.IncomeSources == nil {
		doc.IncomeSources = make(map[string]decimal.Decimal)
	}
	if doc.ExpenseBudgets == nil {
		doc.ExpenseBudgets = make(map[string]decimal.Decimal)
	}

	for i := range u.Transactions {
		t := &u.Transactions[i]
		doc.Transactions = append(doc.Transactions, transactionDoc{
			ID:          t.ID,
			Type:        string(t.Kind),
			Category:    t.Category,
			Amount:      t.Amount,
			Date:        t.Date,
			Description: t.Description,
			Budget:      t.Budget,
		})
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode user %q: %w", u.Username, err)
	}
	return data, nil
}

// DecodeUser reconstructs a user aggregate from its persisted document.
// Missing optional fields default: description to the empty string,
// budget to absent, collections to empty.
func DecodeUser(data []byte) (*User, error) {
	var doc userDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode user document: %w", err)
	}

	u := NewUser(doc.Username, doc.Password)
	if doc.IncomeSources != nil {
		u.IncomeSources = doc.IncomeSources
	}
	if doc.ExpenseBudgets != nil {
		u.ExpenseBudgets = doc.ExpenseBudgets
	}

	for _, td := range doc.Transactions {
		u.Transactions = append(u.Transactions, Transaction{
			ID:          td.ID,
			Kind:        Kind(td.Type),
			Category:    td.Category,
			Amount:      td.Amount,
			Date:        td.Date,
			Description: td.Description,
			Budget:      td.Budget,
		})
	}
	return u, nil
}
