// Package transaction holds the ledger record types: Entry for the local
// ledger and Payment for the server-backed one.
package transaction

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"tableflip.dev/ledger/pkg/errs"
)

const (
	// LayoutDate is the calendar date format stored on entries.
	LayoutDate = "2006-01-02"

	// MinDescription is the shortest accepted description, in characters.
	MinDescription = 3

	MsgAmountPositive   = "Amount must be greater than 0"
	MsgDescriptionShort = "Description must be at least 3 characters long"
)

// Kind is the direction of an entry.
type Kind string

const (
	Deposit    Kind = "deposit"
	Withdrawal Kind = "withdrawal"
)

func (k Kind) Valid() bool {
	return k == Deposit || k == Withdrawal
}

// ParseKind accepts a kind name in any case, plus the short forms "in" and "out".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deposit", "in", "+":
		return Deposit, nil
	case "withdrawal", "withdraw", "out", "-":
		return Withdrawal, nil
	}
	return "", errs.NewValidationError("type", "Type must be deposit or withdrawal")
}

// Entry is one record of the local ledger.
type Entry struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Type        Kind            `json:"type"`
}

func (e Entry) Key() string {
	return strconv.FormatInt(e.ID, 10)
}

// SortTime is the entry date at midnight UTC; unparsable dates sort oldest.
func (e Entry) SortTime() time.Time {
	t, err := time.Parse(LayoutDate, e.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Signed returns the amount with withdrawals negated.
func (e Entry) Signed() decimal.Decimal {
	if e.Type == Withdrawal {
		return e.Amount.Neg()
	}
	return e.Amount
}

// EntryDraft carries the user-editable fields of an Entry.
type EntryDraft struct {
	Description string
	Amount      decimal.Decimal
	Type        Kind
}

// Validate checks the amount first, then the description, then the kind.
func (d EntryDraft) Validate() error {
	if !d.Amount.IsPositive() {
		return errs.NewValidationError("amount", MsgAmountPositive)
	}
	if utf8.RuneCountInString(strings.TrimSpace(d.Description)) < MinDescription {
		return errs.NewValidationError("description", MsgDescriptionShort)
	}
	if !d.Type.Valid() {
		return errs.NewValidationError("type", "Type must be deposit or withdrawal")
	}
	return nil
}

// DraftOf returns the editable fields of e, used to prefill edit forms.
func DraftOf(e Entry) EntryDraft {
	return EntryDraft{Description: e.Description, Amount: e.Amount, Type: e.Type}
}

// Apply returns e with the draft fields applied. ID and Date are kept.
func (e Entry) Apply(d EntryDraft) Entry {
	e.Description = d.Description
	e.Amount = d.Amount
	e.Type = d.Type
	return e
}

// ParseAmount parses a user-entered decimal amount. It does not check the sign.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, errs.NewValidationError("amount", "Amount is required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errs.NewValidationError("amount", "Amount must be a number")
	}
	return d, nil
}

// FormatAmount renders an amount with two decimals.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatSigned renders an entry amount prefixed with its direction.
func FormatSigned(e Entry) string {
	if e.Type == Withdrawal {
		return "-$" + FormatAmount(e.Amount)
	}
	return "+$" + FormatAmount(e.Amount)
}
