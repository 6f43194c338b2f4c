package remove

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/ledger/pkg/app"
	"tableflip.dev/ledger/pkg/printers"
)

// Remove deletes one transaction by id.
type Remove struct {
	Service *app.Service
	ID      string
	JSON    bool
	Out     io.Writer
}

type result struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete, no service")
	}
	pp := printers.PrettyPrint{Out: n.Out}

	if n.Service.Local() {
		c := n.Service.Entries
		if err := c.Load(ctx, 0); err != nil {
			return err
		}
		_, found := c.Find(n.ID)
		if err := c.Delete(ctx, n.ID); err != nil {
			return err
		}
		if n.JSON {
			return printers.JSON(n.Out, result{ID: n.ID, Deleted: found})
		}
		if !found {
			pp.Notice("no transaction %s, nothing deleted", n.ID)
			return nil
		}
		pp.Notice("deleted %s", n.ID)
		b, err := n.Service.Balance()
		if err != nil {
			return err
		}
		pp.Balance(b)
		return nil
	}

	if err := n.Service.Payments.Delete(ctx, n.ID); err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, result{ID: n.ID, Deleted: true})
	}
	pp.Notice("deleted %s", n.ID)
	return nil
}
