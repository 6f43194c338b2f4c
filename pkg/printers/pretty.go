package printers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/truncate"
	"github.com/shopspring/decimal"

	"tableflip.dev/ledger/pkg/transaction"
)

// maxDescription is the widest description column before truncation.
const maxDescription = 40

type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.out(), " no transactions\n")
}

// Entries prints local ledger entries in the given order.
func (pp *PrettyPrint) Entries(entries ...transaction.Entry) {
	if len(entries) == 0 {
		pp.none()
		return
	}
	bold := color.New(color.Bold)
	id := color.New(color.FgHiYellow, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Date"), bold.Sprint("Description"), bold.Sprint("Amount"))
	for _, e := range entries {
		tbl.AddRow(id.Sprint(e.Key()), e.Date, truncate.StringWithTail(e.Description, maxDescription, "…"), signed(e))
	}
	tbl.RightAlign(3)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Payments prints server-backed records in the given order.
func (pp *PrettyPrint) Payments(payments ...transaction.Payment) {
	if len(payments) == 0 {
		pp.none()
		return
	}
	bold := color.New(color.Bold)
	id := color.New(color.FgHiYellow, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Transaction"), bold.Sprint("Type"), bold.Sprint("Amount"), bold.Sprint("Currency"), bold.Sprint("Result"), bold.Sprint("Created"))
	for _, p := range payments {
		created := ""
		if !p.Created.IsZero() {
			created = p.Created.Format("2006-01-02 15:04")
		}
		tbl.AddRow(id.Sprint(p.TransactionID), string(p.TransactionType), transaction.FormatAmount(p.Amount), p.Currency, result(p.Result), created)
	}
	tbl.RightAlign(2)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Pagination prints the zero-based page as "Page n of m" with hints for the
// neighbouring pages.
func (pp *PrettyPrint) Pagination(page, pages int) {
	f := color.New(color.Faint)
	if pages == 0 {
		return
	}
	_, _ = f.Fprintf(pp.out(), "Page %d of %d", page+1, pages)
	if page > 0 {
		_, _ = f.Fprintf(pp.out(), "  · prev: --page %d", page)
	}
	if page+1 < pages {
		_, _ = f.Fprintf(pp.out(), "  · next: --page %d", page+2)
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Balance(b decimal.Decimal) {
	c := color.New(color.Bold, color.FgGreen)
	if b.IsNegative() {
		c = color.New(color.Bold, color.FgRed)
	}
	_, _ = fmt.Fprint(pp.out(), "Balance: ")
	_, _ = c.Fprintf(pp.out(), "$%s\n", transaction.FormatAmount(b))
}

// Notice prints a short confirmation line.
func (pp *PrettyPrint) Notice(format string, args ...interface{}) {
	f := color.New(color.Faint)
	_, _ = f.Fprintf(pp.out(), format+"\n", args...)
}

func signed(e transaction.Entry) string {
	if e.Type == transaction.Withdrawal {
		return color.New(color.FgRed).Sprint(transaction.FormatSigned(e))
	}
	return color.New(color.FgGreen).Sprint(transaction.FormatSigned(e))
}

func result(r transaction.Result) string {
	switch r {
	case transaction.Success:
		return color.New(color.FgGreen).Sprint(string(r))
	case transaction.Declined:
		return color.New(color.FgYellow).Sprint(string(r))
	default:
		return color.New(color.FgRed).Sprint(string(r))
	}
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v interface{}) error {
	if w == nil {
		w = color.Output
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
