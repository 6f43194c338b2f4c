// Package app wires the configured backing store to a transaction list
// controller so the CLI and the UI share one setup.
package app

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"tableflip.dev/ledger/pkg/config"
	"tableflip.dev/ledger/pkg/ledger"
	"tableflip.dev/ledger/pkg/remote"
	"tableflip.dev/ledger/pkg/store"
	"tableflip.dev/ledger/pkg/transaction"
)

type (
	// EntryController pages the local ledger.
	EntryController = ledger.Controller[transaction.Entry, transaction.EntryDraft, transaction.EntryDraft]
	// PaymentController pages the server-backed ledger.
	PaymentController = ledger.Controller[transaction.Payment, transaction.PaymentDraft, transaction.PaymentUpdate]
)

// ErrLocalOnly is returned for operations that only the local ledger supports.
var ErrLocalOnly = errors.New("app: only available in local mode")

type Options struct {
	Config *config.Config
	// Persistence overrides the diskv store opened from Config.
	Persistence store.Persistence
	// Ambient reports the terminal's dark background preference.
	Ambient func() bool
	Now     func() time.Time
	Log     logrus.FieldLogger
}

// Service holds the controller for the configured mode. Exactly one of
// Entries and Payments is set.
type Service struct {
	Mode        config.Mode
	Config      *config.Config
	Persistence store.Persistence
	Prefs       *store.Prefs
	Log         logrus.FieldLogger

	Ledger   *store.Ledger
	Entries  *EntryController
	Payments *PaymentController
}

// New opens the backing store for opts.Config.Mode. The display preference
// always lives in local persistence.
func New(opts Options) (*Service, error) {
	if opts.Config == nil {
		return nil, errors.New("app: no config")
	}
	log := opts.Log
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}

	p := opts.Persistence
	if p == nil {
		var err error
		if p, err = store.Load(opts.Config); err != nil {
			return nil, err
		}
	}

	s := &Service{
		Mode:        opts.Config.Mode,
		Config:      opts.Config,
		Persistence: p,
		Prefs:       store.NewPrefs(p, opts.Ambient),
		Log:         log.WithField("mode", string(opts.Config.Mode)),
	}

	switch opts.Config.Mode {
	case config.ModeRemote:
		client := remote.NewClient(remote.Config{
			BaseURL: opts.Config.APIURL,
			Timeout: opts.Config.APITimeout,
			Log:     log,
		})
		s.Payments = ledger.New[transaction.Payment, transaction.PaymentDraft, transaction.PaymentUpdate](client, ledger.Options{
			Paging: ledger.ServerPaging,
			Log:    log,
		})
	default:
		l, err := store.NewLedger(p, store.LedgerOptions{Now: opts.Now, Log: log})
		if err != nil {
			return nil, err
		}
		s.Ledger = l
		s.Entries = ledger.New[transaction.Entry, transaction.EntryDraft, transaction.EntryDraft](l, ledger.Options{
			Paging: ledger.ClientPaging,
			Log:    log,
		})
	}
	return s, nil
}

// Local reports whether the service runs against the local ledger.
func (s *Service) Local() bool {
	return s.Entries != nil
}

// Load fetches the given zero-based page from the configured controller.
func (s *Service) Load(ctx context.Context, page int) error {
	if s.Local() {
		return s.Entries.Load(ctx, page)
	}
	return s.Payments.Load(ctx, page)
}

// Balance is the signed sum over the whole local collection.
func (s *Service) Balance() (decimal.Decimal, error) {
	if !s.Local() {
		return decimal.Zero, ErrLocalOnly
	}
	return transaction.Balance(s.Entries.Items()), nil
}

// Refresh rereads the local collection and reloads the current page, e.g.
// after another process wrote the store. A store that cannot be read clears
// the list and records the error on the controller.
func (s *Service) Refresh(ctx context.Context) error {
	if !s.Local() {
		return s.Payments.Reload(ctx)
	}
	if err := s.Ledger.Refresh(); err != nil {
		s.Entries.Invalidate(err)
		return err
	}
	return s.Entries.Reload(ctx)
}

// Watch subscribes to local persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if !s.Local() {
		return nil, ErrLocalOnly
	}
	return s.Persistence.Watch(ctx)
}
