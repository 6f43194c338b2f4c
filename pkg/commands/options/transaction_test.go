package options

import (
	"testing"

	"github.com/spf13/cobra"

	"tableflip.dev/ledger/pkg/errs"
	"tableflip.dev/ledger/pkg/transaction"
)

func TestEntryDraftDefaults(t *testing.T) {
	o := TransactionOptions{Description: "Coffee", Amount: "3.5"}
	d, err := o.EntryDraft()
	if err != nil {
		t.Fatalf("draft: %v", err)
	}
	if d.Type != transaction.Deposit || d.Amount.String() != "3.5" {
		t.Fatalf("unexpected draft %+v", d)
	}

	o.Amount = "lots"
	if _, err := o.EntryDraft(); !errs.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestEntryPatchOnlyChangedFlags(t *testing.T) {
	o := &TransactionOptions{}
	cmd := &cobra.Command{Use: "edit"}
	AddTransactionArgs(cmd, o, false)
	if err := cmd.Flags().Parse([]string{"--amount", "9.99"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	p, err := o.EntryPatch(cmd)
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if p.Description != nil || p.Type != nil {
		t.Fatalf("unset flags must stay nil: %+v", p)
	}
	if p.Amount == nil || p.Amount.String() != "9.99" {
		t.Fatalf("unexpected amount %v", p.Amount)
	}

	empty := &cobra.Command{Use: "edit"}
	AddTransactionArgs(empty, o, false)
	if _, err := o.EntryPatch(empty); err == nil {
		t.Fatalf("expected error when nothing changes")
	}
}

func TestPaymentOptions(t *testing.T) {
	o := TransactionOptions{Amount: "20", Currency: " usd "}
	d, err := o.PaymentDraft()
	if err != nil {
		t.Fatalf("draft: %v", err)
	}
	if d.TransactionType != transaction.TypePayment || d.Result != transaction.Success || d.Currency != "USD" {
		t.Fatalf("unexpected draft %+v", d)
	}

	if _, err := o.PaymentUpdate(); !errs.IsValidation(err) {
		t.Fatalf("expected result to be required, got %v", err)
	}
	o.Result = "failure"
	u, err := o.PaymentUpdate()
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if u.Result != transaction.Failure {
		t.Fatalf("unexpected update %+v", u)
	}
}
