package transaction

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"tableflip.dev/ledger/pkg/errs"
)

// PaymentType is set at creation and never changes.
type PaymentType string

const (
	TypePayment PaymentType = "PAYMENT"
	TypeRefund  PaymentType = "REFUND"
)

func (t PaymentType) Valid() bool {
	return t == TypePayment || t == TypeRefund
}

func ParsePaymentType(s string) (PaymentType, error) {
	t := PaymentType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", errs.NewValidationError("transactionType", "Transaction type must be PAYMENT or REFUND")
	}
	return t, nil
}

// Result is the processing outcome reported for a payment.
type Result string

const (
	Success  Result = "SUCCESS"
	Failure  Result = "FAILURE"
	Declined Result = "DECLINED"
)

func (r Result) Valid() bool {
	switch r {
	case Success, Failure, Declined:
		return true
	}
	return false
}

func ParseResult(s string) (Result, error) {
	r := Result(strings.ToUpper(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", errs.NewValidationError("result", "Result must be SUCCESS, FAILURE or DECLINED")
	}
	return r, nil
}

// ParseCurrency trims and upper-cases a currency code.
func ParseCurrency(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Payment is one record of the server-backed ledger.
type Payment struct {
	TransactionID   string          `json:"transactionId"`
	TransactionType PaymentType     `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Result          Result          `json:"result"`
	Created         time.Time       `json:"created"`
}

func (p Payment) Key() string { return p.TransactionID }

func (p Payment) SortTime() time.Time { return p.Created }

// PaymentDraft is the body of a create request.
type PaymentDraft struct {
	TransactionID   string
	TransactionType PaymentType
	Amount          decimal.Decimal
	Currency        string
	Result          Result
}

func (d PaymentDraft) Validate() error {
	if !d.Amount.IsPositive() {
		return errs.NewValidationError("amount", MsgAmountPositive)
	}
	if strings.TrimSpace(d.TransactionID) == "" {
		return errs.NewValidationError("transactionId", "Transaction ID is required")
	}
	if !d.TransactionType.Valid() {
		return errs.NewValidationError("transactionType", "Transaction type must be PAYMENT or REFUND")
	}
	return validateMutable(d.Currency, d.Result)
}

// PaymentUpdate holds the only fields the server accepts on update.
type PaymentUpdate struct {
	Amount   decimal.Decimal
	Currency string
	Result   Result
}

func (u PaymentUpdate) Validate() error {
	if !u.Amount.IsPositive() {
		return errs.NewValidationError("amount", MsgAmountPositive)
	}
	return validateMutable(u.Currency, u.Result)
}

// UpdateOf returns the mutable fields of p, used to prefill edit forms.
func UpdateOf(p Payment) PaymentUpdate {
	return PaymentUpdate{Amount: p.Amount, Currency: p.Currency, Result: p.Result}
}

func validateMutable(currency string, result Result) error {
	if strings.TrimSpace(currency) == "" {
		return errs.NewValidationError("currency", "Currency is required")
	}
	if !result.Valid() {
		return errs.NewValidationError("result", "Result must be SUCCESS, FAILURE or DECLINED")
	}
	return nil
}
