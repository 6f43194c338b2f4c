package remote

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"tableflip.dev/ledger/pkg/transaction"
)

// layoutLocal is the zone-less timestamp some servers emit; it is read as UTC.
const layoutLocal = "2006-01-02T15:04:05.999999999"

type wireTransaction struct {
	TransactionID   string      `json:"transactionId"`
	TransactionType string      `json:"transactionType"`
	Amount          json.Number `json:"amount"`
	Currency        string      `json:"currency"`
	Result          string      `json:"result"`
	Created         string      `json:"created,omitempty"`
}

type wireUpdate struct {
	Amount            json.Number `json:"amount"`
	Currency          string      `json:"currency"`
	TransactionResult string      `json:"transactionResult"`
}

type wirePage struct {
	Content    []wireTransaction `json:"content"`
	TotalPages int               `json:"totalPages"`
	Number     int               `json:"number"`
}

func amountToWire(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func fromDraft(d transaction.PaymentDraft) wireTransaction {
	return wireTransaction{
		TransactionID:   d.TransactionID,
		TransactionType: string(d.TransactionType),
		Amount:          amountToWire(d.Amount),
		Currency:        transaction.ParseCurrency(d.Currency),
		Result:          string(d.Result),
	}
}

func fromUpdate(u transaction.PaymentUpdate) wireUpdate {
	return wireUpdate{
		Amount:            amountToWire(u.Amount),
		Currency:          transaction.ParseCurrency(u.Currency),
		TransactionResult: string(u.Result),
	}
}

func (w wireTransaction) payment() (transaction.Payment, error) {
	amount, err := decimal.NewFromString(w.Amount.String())
	if err != nil {
		return transaction.Payment{}, fmt.Errorf("amount %q: %w", w.Amount, err)
	}
	created, err := parseCreated(w.Created)
	if err != nil {
		return transaction.Payment{}, err
	}
	return transaction.Payment{
		TransactionID:   w.TransactionID,
		TransactionType: transaction.PaymentType(w.TransactionType),
		Amount:          amount,
		Currency:        w.Currency,
		Result:          transaction.Result(w.Result),
		Created:         created,
	}, nil
}

// parseCreated accepts RFC 3339 or a zone-less timestamp. An empty value is
// the zero time.
func parseCreated(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(layoutLocal, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("created %q: %w", s, err)
	}
	return t, nil
}
