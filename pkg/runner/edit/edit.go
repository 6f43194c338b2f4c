package edit

import (
	"context"
	"errors"
	"io"

	"github.com/shopspring/decimal"

	"tableflip.dev/ledger/pkg/app"
	"tableflip.dev/ledger/pkg/errs"
	"tableflip.dev/ledger/pkg/printers"
	"tableflip.dev/ledger/pkg/transaction"
)

// EntryPatch holds the local fields given on the command line. Nil fields
// keep the stored value.
type EntryPatch struct {
	Description *string
	Amount      *decimal.Decimal
	Type        *transaction.Kind
}

func (p EntryPatch) apply(d transaction.EntryDraft) transaction.EntryDraft {
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.Amount != nil {
		d.Amount = *p.Amount
	}
	if p.Type != nil {
		d.Type = *p.Type
	}
	return d
}

type Edit struct {
	Service *app.Service
	ID      string
	Entry   EntryPatch
	// Payment must carry every mutable field.
	Payment transaction.PaymentUpdate
	JSON    bool
	Out     io.Writer
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
	}
	pp := printers.PrettyPrint{Out: n.Out}

	if n.Service.Local() {
		c := n.Service.Entries
		if err := c.Load(ctx, 0); err != nil {
			return err
		}
		cur, ok := c.Find(n.ID)
		if !ok {
			return errs.NewNotFoundError("Transaction " + n.ID + " not found")
		}
		e, err := c.Update(ctx, n.ID, n.Entry.apply(transaction.DraftOf(cur)))
		if err != nil {
			return err
		}
		if n.JSON {
			return printers.JSON(n.Out, e)
		}
		pp.Entries(e)
		return nil
	}

	p, err := n.Service.Payments.Update(ctx, n.ID, n.Payment)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, p)
	}
	pp.Payments(p)
	return nil
}
