package edit

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"tableflip.dev/ledger/pkg/app"
	"tableflip.dev/ledger/pkg/config"
	"tableflip.dev/ledger/pkg/errs"
	"tableflip.dev/ledger/pkg/transaction"
)

func init() {
	color.NoColor = true
}

func TestEditKeepsOmittedFields(t *testing.T) {
	s, err := app.New(app.Options{Config: &config.Config{Mode: config.ModeLocal, Path: t.TempDir()}})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	amount := decimal.RequireFromString("90")
	e := Edit{Service: s, ID: "2", Entry: EntryPatch{Amount: &amount}, Out: &bytes.Buffer{}}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("edit: %v", err)
	}

	got, ok := s.Entries.Find("2")
	if !ok {
		t.Fatalf("entry 2 missing")
	}
	if !got.Amount.Equal(amount) {
		t.Fatalf("amount not applied: %s", got.Amount)
	}
	if got.Description != "Walmart Grocery Shopping - Weekly Essentials" || got.Type != transaction.Withdrawal || got.Date != "2024-03-21" {
		t.Fatalf("omitted fields changed: %+v", got)
	}
}

func TestEditUnknown(t *testing.T) {
	s, err := app.New(app.Options{Config: &config.Config{Mode: config.ModeLocal, Path: t.TempDir()}})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	e := Edit{Service: s, ID: "404", Out: &bytes.Buffer{}}
	if err := e.Do(context.Background()); !errs.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestEditValidates(t *testing.T) {
	s, err := app.New(app.Options{Config: &config.Config{Mode: config.ModeLocal, Path: t.TempDir()}})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	short := "ab"
	e := Edit{Service: s, ID: "2", Entry: EntryPatch{Description: &short}, Out: &bytes.Buffer{}}
	if err := e.Do(context.Background()); errs.UserMessage(err) != transaction.MsgDescriptionShort {
		t.Fatalf("expected description alert, got %v", err)
	}
}
