package balance

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/ledger/pkg/app"
	"tableflip.dev/ledger/pkg/printers"
)

type Balance struct {
	Service *app.Service
	JSON    bool
	Out     io.Writer
}

func (n *Balance) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not compute balance, no service")
	}
	if !n.Service.Local() {
		return app.ErrLocalOnly
	}
	if err := n.Service.Load(ctx, 0); err != nil {
		return err
	}
	b, err := n.Service.Balance()
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, map[string]string{"balance": b.StringFixed(2)})
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Balance(b)
	return nil
}
