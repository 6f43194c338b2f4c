package add

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"

	"tableflip.dev/ledger/pkg/app"
	"tableflip.dev/ledger/pkg/printers"
	"tableflip.dev/ledger/pkg/transaction"
)

// Add creates one transaction. Entry is used in local mode, Payment in remote
// mode.
type Add struct {
	Service *app.Service
	Entry   transaction.EntryDraft
	Payment transaction.PaymentDraft
	JSON    bool
	Out     io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	pp := printers.PrettyPrint{Out: n.Out}

	if n.Service.Local() {
		c := n.Service.Entries
		if err := c.Load(ctx, 0); err != nil {
			return err
		}
		e, err := c.Create(ctx, n.Entry)
		if err != nil {
			return err
		}
		if n.JSON {
			return printers.JSON(n.Out, e)
		}
		pp.Entries(e)
		b, err := n.Service.Balance()
		if err != nil {
			return err
		}
		pp.Balance(b)
		return nil
	}

	d := n.Payment
	if d.TransactionID == "" {
		d.TransactionID = uuid.New().String()
	}
	p, err := n.Service.Payments.Create(ctx, d)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, p)
	}
	pp.Payments(p)
	return nil
}
