package add

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"tableflip.dev/ledger/pkg/app"
	"tableflip.dev/ledger/pkg/config"
	"tableflip.dev/ledger/pkg/errs"
	"tableflip.dev/ledger/pkg/ledgertest"
	"tableflip.dev/ledger/pkg/transaction"
)

func init() {
	color.NoColor = true
}

func TestAddLocal(t *testing.T) {
	path := t.TempDir()
	s, err := app.New(app.Options{Config: &config.Config{Mode: config.ModeLocal, Path: path}})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	bad := Add{Service: s, Out: &bytes.Buffer{}, Entry: transaction.EntryDraft{
		Description: "Refund", Amount: decimal.NewFromInt(-5), Type: transaction.Deposit,
	}}
	if err := bad.Do(context.Background()); errs.UserMessage(err) != transaction.MsgAmountPositive {
		t.Fatalf("expected amount alert, got %v", err)
	}

	var buf bytes.Buffer
	a := Add{Service: s, Out: &buf, JSON: true, Entry: transaction.EntryDraft{
		Description: "Paycheck", Amount: decimal.NewFromInt(100), Type: transaction.Deposit,
	}}
	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("add: %v", err)
	}
	var e transaction.Entry
	if err := json.Unmarshal(buf.Bytes(), &e); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if e.Description != "Paycheck" || e.ID == 0 {
		t.Fatalf("unexpected entry %+v", e)
	}

	// A fresh service over the same path sees the stored entry.
	reopened, err := app.New(app.Options{Config: &config.Config{Mode: config.ModeLocal, Path: path}})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if err := reopened.Load(context.Background(), 0); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := len(reopened.Entries.Items()); got != 7 {
		t.Fatalf("expected 7 entries, got %d", got)
	}
}

func TestAddLocalPrintsBalance(t *testing.T) {
	s, err := app.New(app.Options{Config: &config.Config{Mode: config.ModeLocal, Path: t.TempDir()}})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	var buf bytes.Buffer
	a := Add{Service: s, Out: &buf, Entry: transaction.EntryDraft{
		Description: "Paycheck", Amount: decimal.NewFromInt(100), Type: transaction.Deposit,
	}}
	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("add: %v", err)
	}
	if !strings.Contains(buf.String(), "Balance: $2889.50") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestAddRemoteGeneratesID(t *testing.T) {
	api := ledgertest.New()
	srv, base := api.Serve()
	defer srv.Close()

	s, err := app.New(app.Options{Config: &config.Config{Mode: config.ModeRemote, Path: t.TempDir(), APIURL: base}})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	a := Add{Service: s, Out: &bytes.Buffer{}, Payment: transaction.PaymentDraft{
		TransactionType: transaction.TypePayment,
		Amount:          decimal.NewFromInt(3),
		Currency:        "eur",
		Result:          transaction.Success,
	}}
	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("add: %v", err)
	}
	records := api.Records()
	if len(records) != 1 || len(records[0].TransactionID) != 36 {
		t.Fatalf("expected one record with a generated uuid, got %+v", records)
	}
	if records[0].Currency != "EUR" {
		t.Fatalf("expected normalized currency, got %q", records[0].Currency)
	}

	dup := Add{Service: s, Out: &bytes.Buffer{}, Payment: a.Payment}
	dup.Payment.TransactionID = records[0].TransactionID
	if err := dup.Do(context.Background()); errs.UserMessage(err) != errs.MsgDuplicateID {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
}
