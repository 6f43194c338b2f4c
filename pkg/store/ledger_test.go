package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"tableflip.dev/ledger/pkg/errs"
	"tableflip.dev/ledger/pkg/ledger"
	"tableflip.dev/ledger/pkg/transaction"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func openLedger(t *testing.T, base string, now time.Time) *Ledger {
	t.Helper()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	l, err := NewLedger(p, LedgerOptions{Now: fixedClock(now)})
	if err != nil {
		t.Fatalf("new ledger: %v", err)
	}
	return l
}

func coffee() transaction.EntryDraft {
	return transaction.EntryDraft{
		Description: "Coffee beans",
		Amount:      decimal.RequireFromString("12.40"),
		Type:        transaction.Withdrawal,
	}
}

func TestLedgerFallsBackToSeed(t *testing.T) {
	l := openLedger(t, t.TempDir(), time.Now())
	if got := len(l.Entries()); got != 6 {
		t.Fatalf("expected 6 seed entries, got %d", got)
	}
}

func TestLedgerPersistsAcrossReopen(t *testing.T) {
	base := t.TempDir()
	now := time.Date(2024, time.April, 2, 15, 4, 5, 0, time.UTC)
	l := openLedger(t, base, now)
	ctx := context.Background()

	e, err := l.Create(ctx, coffee())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if e.ID != now.UnixMilli() {
		t.Fatalf("expected id %d, got %d", now.UnixMilli(), e.ID)
	}
	if e.Date != "2024-04-02" {
		t.Fatalf("expected date 2024-04-02, got %s", e.Date)
	}
	if err := l.Delete(ctx, "1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	reopened := openLedger(t, base, now)
	got := reopened.Entries()
	if len(got) != 6 {
		t.Fatalf("expected 6 entries after reopen, got %d", len(got))
	}
	var found bool
	for _, g := range got {
		if g.ID == 1 {
			t.Fatalf("deleted entry came back after reopen")
		}
		if g.ID == e.ID {
			found = true
			if !g.Amount.Equal(e.Amount) || g.Description != e.Description {
				t.Fatalf("entry changed across reopen: %+v vs %+v", g, e)
			}
		}
	}
	if !found {
		t.Fatalf("created entry missing after reopen")
	}
}

func TestLedgerIDsStayUnique(t *testing.T) {
	now := time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC)
	l := openLedger(t, t.TempDir(), now)
	ctx := context.Background()

	a, err := l.Create(ctx, coffee())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	b, err := l.Create(ctx, coffee())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.ID == b.ID {
		t.Fatalf("duplicate ids %d", a.ID)
	}
	if b.ID != a.ID+1 {
		t.Fatalf("expected %d, got %d", a.ID+1, b.ID)
	}
}

func TestLedgerUpdate(t *testing.T) {
	l := openLedger(t, t.TempDir(), time.Now())
	ctx := context.Background()

	got, err := l.Update(ctx, "2", coffee())
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.ID != 2 || got.Date != "2024-03-21" {
		t.Fatalf("identity changed: %+v", got)
	}
	if got.Description != "Coffee beans" {
		t.Fatalf("update not applied: %+v", got)
	}

	if _, err := l.Update(ctx, "404", coffee()); !errs.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	bad := coffee()
	bad.Amount = decimal.NewFromInt(-5)
	if _, err := l.Update(ctx, "2", bad); !errs.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestLedgerDeleteUnknownIsNoop(t *testing.T) {
	l := openLedger(t, t.TempDir(), time.Now())
	if err := l.Delete(context.Background(), "404"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := len(l.Entries()); got != 6 {
		t.Fatalf("expected 6 entries, got %d", got)
	}
}

func TestLedgerList(t *testing.T) {
	l := openLedger(t, t.TempDir(), time.Now())
	ctx := context.Background()

	all, err := l.List(ctx, 0, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all.Items) != 6 || all.TotalPages != 1 {
		t.Fatalf("unexpected full listing: %d items, %d pages", len(all.Items), all.TotalPages)
	}

	p, err := l.List(ctx, 1, 5)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(p.Items) != 1 || p.Items[0].ID != 1 || p.TotalPages != 2 || p.Number != 1 {
		t.Fatalf("unexpected second page: %+v", p)
	}
}

// failingPersistence fails every Save.
type failingPersistence struct {
	Persistence
}

func (failingPersistence) Save(string, interface{}) error {
	return errors.New("disk full")
}

func TestLedgerSaveFailureKeepsState(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	l, err := NewLedger(failingPersistence{p}, LedgerOptions{})
	if err != nil {
		t.Fatalf("new ledger: %v", err)
	}
	ctx := context.Background()

	if _, err := l.Create(ctx, coffee()); !errs.IsTransport(err) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if err := l.Delete(ctx, "1"); !errs.IsTransport(err) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if got := len(l.Entries()); got != 6 {
		t.Fatalf("expected state unchanged, got %d entries", got)
	}
}

func TestLedgerRefreshSeesExternalWrites(t *testing.T) {
	base := t.TempDir()
	l := openLedger(t, base, time.Now())

	other := openLedger(t, base, time.Now())
	if err := other.Delete(context.Background(), "6"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if err := l.Refresh(); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if got := len(l.Entries()); got != 5 {
		t.Fatalf("expected 5 entries after refresh, got %d", got)
	}
}

func TestLedgerBehindController(t *testing.T) {
	l := openLedger(t, t.TempDir(), time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC))
	c := ledger.New[transaction.Entry, transaction.EntryDraft, transaction.EntryDraft](l, ledger.Options{Paging: ledger.ClientPaging})
	ctx := context.Background()

	if err := c.Load(ctx, 0); err != nil {
		t.Fatalf("load: %v", err)
	}
	bad := coffee()
	bad.Amount = decimal.NewFromInt(-5)
	if _, err := c.Create(ctx, bad); errs.UserMessage(err) != transaction.MsgAmountPositive {
		t.Fatalf("expected amount alert, got %v", err)
	}
	if got := len(c.Items()); got != 6 {
		t.Fatalf("expected 6 entries, got %d", got)
	}

	e, err := c.Create(ctx, coffee())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := c.Load(ctx, 0); err != nil {
		t.Fatalf("load: %v", err)
	}
	if v := c.View(); v[0].ID != e.ID {
		t.Fatalf("expected new entry first, got %+v", v[0])
	}
	if got := transaction.Balance(c.Items()); !got.Equal(decimal.RequireFromString("2777.10")) {
		t.Fatalf("unexpected balance %s", got)
	}
}

func TestLedgerRefreshKeepsEntriesOnEmptyValue(t *testing.T) {
	base := t.TempDir()
	l := openLedger(t, base, time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()
	for _, e := range transaction.Seed() {
		if err := l.Delete(ctx, e.Key()); err != nil {
			t.Fatalf("delete %s: %v", e.Key(), err)
		}
	}
	created, err := l.Create(ctx, coffee())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := os.WriteFile(filepath.Join(base, KeyTransactions), nil, 0o600); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	err = l.Refresh()
	if !errs.IsTransport(err) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if got := l.Entries(); len(got) != 1 || got[0].ID != created.ID {
		t.Fatalf("refresh replaced the collection: %+v", got)
	}
}

func TestLedgerDateIsUTC(t *testing.T) {
	// 05:00 on April 1 at +10:00 is still March 31 in UTC.
	now := time.Date(2024, time.April, 1, 5, 0, 0, 0, time.FixedZone("AEST", 10*60*60))
	l := openLedger(t, t.TempDir(), now)
	e, err := l.Create(context.Background(), coffee())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if e.Date != "2024-03-31" {
		t.Fatalf("date = %s, want 2024-03-31", e.Date)
	}
}
