package list

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/ledger/pkg/app"
	"tableflip.dev/ledger/pkg/errs"
	"tableflip.dev/ledger/pkg/printers"
)

type List struct {
	Service *app.Service
	// Page is one-based; zero means the first page.
	Page int
	JSON bool
	Out  io.Writer
}

type page struct {
	Page       int         `json:"page"`
	TotalPages int         `json:"totalPages"`
	Balance    string      `json:"balance,omitempty"`
	Items      interface{} `json:"items"`
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no service")
	}
	if n.Page < 0 {
		return errs.NewRangeError(n.Page-1, 0)
	}
	number := 0
	if n.Page > 0 {
		number = n.Page - 1
	}
	if err := n.Service.Load(ctx, number); err != nil {
		return err
	}

	s := n.Service
	pp := printers.PrettyPrint{Out: n.Out}
	if s.Local() {
		view := s.Entries.View()
		b, err := s.Balance()
		if err != nil {
			return err
		}
		if n.JSON {
			return printers.JSON(n.Out, page{
				Page:       s.Entries.Page() + 1,
				TotalPages: s.Entries.TotalPages(),
				Balance:    b.StringFixed(2),
				Items:      view,
			})
		}
		pp.Balance(b)
		pp.NewLine()
		pp.Entries(view...)
		pp.Pagination(s.Entries.Page(), s.Entries.TotalPages())
		return nil
	}

	view := s.Payments.View()
	if n.JSON {
		return printers.JSON(n.Out, page{
			Page:       s.Payments.Page() + 1,
			TotalPages: s.Payments.TotalPages(),
			Items:      view,
		})
	}
	pp.Payments(view...)
	pp.Pagination(s.Payments.Page(), s.Payments.TotalPages())
	return nil
}
