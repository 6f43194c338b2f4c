package printers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"tableflip.dev/ledger/pkg/transaction"
)

func init() {
	color.NoColor = true
}

func TestEntries(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Entries(transaction.Seed()[:2]...)

	out := buf.String()
	for _, want := range []string{"ID", "Description", "+$1000.00", "-$85.50", "2024-03-21"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Weekly Essentials") {
		t.Fatalf("expected long description to be truncated:\n%s", out)
	}
}

func TestEntriesEmpty(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Entries()
	if !strings.Contains(buf.String(), "no transactions") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestPagination(t *testing.T) {
	tests := []struct {
		page, pages int
		want        string
	}{
		{0, 2, "Page 1 of 2  · next: --page 2\n"},
		{1, 2, "Page 2 of 2  · prev: --page 1\n"},
		{1, 3, "Page 2 of 3  · prev: --page 1  · next: --page 3\n"},
		{0, 0, ""},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		pp := PrettyPrint{Out: &buf}
		pp.Pagination(tt.page, tt.pages)
		if buf.String() != tt.want {
			t.Fatalf("Pagination(%d, %d) = %q, want %q", tt.page, tt.pages, buf.String(), tt.want)
		}
	}
}

func TestBalance(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Balance(decimal.RequireFromString("2789.5"))
	if buf.String() != "Balance: $2789.50\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, map[string]int{"page": 1}); err != nil {
		t.Fatalf("json: %v", err)
	}
	if buf.String() != "{\n  \"page\": 1\n}\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
