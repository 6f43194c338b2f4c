package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"tableflip.dev/ledger/pkg/app"
	"tableflip.dev/ledger/pkg/transaction"
)

type fieldKind int

const (
	textField fieldKind = iota
	choiceField
)

// field describes one form input.
type field struct {
	name        string
	label       string
	kind        fieldKind
	choices     []string
	placeholder string
	// locked fields keep their value when editing an existing record.
	locked bool
}

// row is a record as the list renders it.
type row struct {
	key      string
	title    string
	detail   string
	amount   string
	negative bool
}

// backend adapts one controller variant to the form and list. Form values
// are positional, matching fields().
type backend interface {
	local() bool
	fields() []field
	defaults() []string
	values(key string) ([]string, bool)
	header() string

	load(ctx context.Context, page int) error
	refresh(ctx context.Context) error
	create(ctx context.Context, values []string) error
	update(ctx context.Context, key string, values []string) error
	remove(ctx context.Context, key string) error

	rows() []row
	page() int
	totalPages() int
	hasPrev() bool
	hasNext() bool
	loading() bool
	err() string
	clearErr()
}

func newBackend(svc *app.Service) backend {
	if svc.Local() {
		return &entryBackend{svc: svc, c: svc.Entries}
	}
	return &paymentBackend{c: svc.Payments}
}

type entryBackend struct {
	svc *app.Service
	c   *app.EntryController
}

func (b *entryBackend) local() bool { return true }

func (b *entryBackend) fields() []field {
	return []field{
		{name: "description", label: "Description", placeholder: "At least 3 characters"},
		{name: "amount", label: "Amount", placeholder: "0.00"},
		{name: "type", label: "Type", kind: choiceField, choices: []string{string(transaction.Deposit), string(transaction.Withdrawal)}},
	}
}

func (b *entryBackend) defaults() []string {
	return []string{"", "", string(transaction.Deposit)}
}

func (b *entryBackend) values(key string) ([]string, bool) {
	e, ok := b.c.Find(key)
	if !ok {
		return nil, false
	}
	return []string{e.Description, transaction.FormatAmount(e.Amount), string(e.Type)}, true
}

func (b *entryBackend) header() string {
	bal, err := b.svc.Balance()
	if err != nil {
		return ""
	}
	return "Balance: $" + transaction.FormatAmount(bal)
}

func (b *entryBackend) draft(values []string) (transaction.EntryDraft, error) {
	amount, err := transaction.ParseAmount(values[1])
	if err != nil {
		return transaction.EntryDraft{}, err
	}
	return transaction.EntryDraft{
		Description: strings.TrimSpace(values[0]),
		Amount:      amount,
		Type:        transaction.Kind(values[2]),
	}, nil
}

func (b *entryBackend) load(ctx context.Context, page int) error { return b.c.Load(ctx, page) }

func (b *entryBackend) refresh(ctx context.Context) error { return b.svc.Refresh(ctx) }

func (b *entryBackend) create(ctx context.Context, values []string) error {
	d, err := b.draft(values)
	if err != nil {
		return err
	}
	_, err = b.c.Create(ctx, d)
	return err
}

func (b *entryBackend) update(ctx context.Context, key string, values []string) error {
	d, err := b.draft(values)
	if err != nil {
		return err
	}
	_, err = b.c.Update(ctx, key, d)
	return err
}

func (b *entryBackend) remove(ctx context.Context, key string) error { return b.c.Delete(ctx, key) }

func (b *entryBackend) rows() []row {
	view := b.c.View()
	out := make([]row, 0, len(view))
	for _, e := range view {
		out = append(out, row{
			key:      e.Key(),
			title:    e.Description,
			detail:   fmt.Sprintf("%s  %s", e.Date, e.Type),
			amount:   transaction.FormatSigned(e),
			negative: e.Type == transaction.Withdrawal,
		})
	}
	return out
}

func (b *entryBackend) page() int       { return b.c.Page() }
func (b *entryBackend) totalPages() int { return b.c.TotalPages() }
func (b *entryBackend) hasPrev() bool   { return b.c.HasPrev() }
func (b *entryBackend) hasNext() bool   { return b.c.HasNext() }
func (b *entryBackend) loading() bool   { return b.c.Loading() }
func (b *entryBackend) err() string     { return b.c.Err() }
func (b *entryBackend) clearErr()       { b.c.ClearErr() }

type paymentBackend struct {
	c *app.PaymentController
}

func (b *paymentBackend) local() bool { return false }

func (b *paymentBackend) fields() []field {
	return []field{
		{name: "transactionId", label: "Transaction ID", locked: true},
		{name: "transactionType", label: "Type", kind: choiceField, locked: true,
			choices: []string{string(transaction.TypePayment), string(transaction.TypeRefund)}},
		{name: "amount", label: "Amount", placeholder: "0.00"},
		{name: "currency", label: "Currency", placeholder: "EUR"},
		{name: "result", label: "Result", kind: choiceField,
			choices: []string{string(transaction.Success), string(transaction.Failure), string(transaction.Declined)}},
	}
}

// defaults proposes a fresh transaction id, which the user may overwrite.
func (b *paymentBackend) defaults() []string {
	return []string{uuid.New().String(), string(transaction.TypePayment), "", "", string(transaction.Success)}
}

func (b *paymentBackend) values(key string) ([]string, bool) {
	p, ok := b.c.Find(key)
	if !ok {
		return nil, false
	}
	return []string{p.TransactionID, string(p.TransactionType), transaction.FormatAmount(p.Amount), p.Currency, string(p.Result)}, true
}

func (b *paymentBackend) header() string { return "Payments" }

func (b *paymentBackend) load(ctx context.Context, page int) error { return b.c.Load(ctx, page) }

func (b *paymentBackend) refresh(ctx context.Context) error { return b.c.Reload(ctx) }

func (b *paymentBackend) create(ctx context.Context, values []string) error {
	amount, err := transaction.ParseAmount(values[2])
	if err != nil {
		return err
	}
	_, err = b.c.Create(ctx, transaction.PaymentDraft{
		TransactionID:   strings.TrimSpace(values[0]),
		TransactionType: transaction.PaymentType(values[1]),
		Amount:          amount,
		Currency:        transaction.ParseCurrency(values[3]),
		Result:          transaction.Result(values[4]),
	})
	return err
}

func (b *paymentBackend) update(ctx context.Context, key string, values []string) error {
	amount, err := transaction.ParseAmount(values[2])
	if err != nil {
		return err
	}
	_, err = b.c.Update(ctx, key, transaction.PaymentUpdate{
		Amount:   amount,
		Currency: transaction.ParseCurrency(values[3]),
		Result:   transaction.Result(values[4]),
	})
	return err
}

func (b *paymentBackend) remove(ctx context.Context, key string) error { return b.c.Delete(ctx, key) }

func (b *paymentBackend) rows() []row {
	view := b.c.View()
	out := make([]row, 0, len(view))
	for _, p := range view {
		created := ""
		if !p.Created.IsZero() {
			created = p.Created.Local().Format("2006-01-02 15:04")
		}
		out = append(out, row{
			key:      p.Key(),
			title:    p.TransactionID,
			detail:   fmt.Sprintf("%s  %s  %s", created, p.TransactionType, p.Result),
			amount:   transaction.FormatAmount(p.Amount) + " " + p.Currency,
			negative: p.TransactionType == transaction.TypeRefund,
		})
	}
	return out
}

func (b *paymentBackend) page() int       { return b.c.Page() }
func (b *paymentBackend) totalPages() int { return b.c.TotalPages() }
func (b *paymentBackend) hasPrev() bool   { return b.c.HasPrev() }
func (b *paymentBackend) hasNext() bool   { return b.c.HasNext() }
func (b *paymentBackend) loading() bool   { return b.c.Loading() }
func (b *paymentBackend) err() string     { return b.c.Err() }
func (b *paymentBackend) clearErr()       { b.c.ClearErr() }
