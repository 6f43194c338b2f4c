package store

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"tableflip.dev/ledger/pkg/errs"
	"tableflip.dev/ledger/pkg/ledger"
	"tableflip.dev/ledger/pkg/transaction"
)

// LedgerOptions configures a local Ledger.
type LedgerOptions struct {
	// Now is the clock used for new ids and dates. Defaults to time.Now.
	Now func() time.Time
	Log logrus.FieldLogger
}

// Ledger is the local ledger store. It holds the collection in memory and
// writes it through to Persistence after every change.
type Ledger struct {
	p   Persistence
	now func() time.Time
	log logrus.FieldLogger

	mu      sync.Mutex
	entries []transaction.Entry
}

var _ ledger.Store[transaction.Entry, transaction.EntryDraft, transaction.EntryDraft] = (*Ledger)(nil)

// NewLedger reads the stored collection from p, falling back to the seed
// collection when nothing has been stored yet.
func NewLedger(p Persistence, opts LedgerOptions) (*Ledger, error) {
	l := &Ledger{p: p, now: opts.Now, log: opts.Log}
	if l.now == nil {
		l.now = time.Now
	}
	if l.log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		l.log = discard
	}
	l.log = l.log.WithField("store", "local")
	if err := l.Refresh(); err != nil {
		return nil, err
	}
	return l, nil
}

// Refresh reads the collection from persistence again, e.g. after another
// process changed it. On error the held collection is kept.
func (l *Ledger) Refresh() error {
	var entries []transaction.Entry
	found, err := l.p.Load(KeyTransactions, &entries)
	if err != nil {
		return errs.NewTransportError("load", "Failed to fetch transactions", 0, err)
	}
	if !found {
		entries = transaction.Seed()
		l.log.Debug("no stored transactions, using seed data")
	}
	l.mu.Lock()
	l.entries = entries
	l.mu.Unlock()
	return nil
}

// List returns the page of the newest-first collection. A size <= 0 returns
// the whole collection in stored order.
func (l *Ledger) List(_ context.Context, page, size int) (ledger.Page[transaction.Entry], error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if size <= 0 {
		items := make([]transaction.Entry, len(l.entries))
		copy(items, l.entries)
		return ledger.Page[transaction.Entry]{Items: items, TotalPages: ledger.TotalPages(len(items), len(items))}, nil
	}
	return ledger.Page[transaction.Entry]{
		Items:      ledger.SortAndPage(l.entries, page, size),
		Number:     page,
		TotalPages: ledger.TotalPages(len(l.entries), size),
	}, nil
}

func (l *Ledger) Create(_ context.Context, d transaction.EntryDraft) (transaction.Entry, error) {
	if err := d.Validate(); err != nil {
		return transaction.Entry{}, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e := transaction.Entry{
		ID:   l.nextID(now),
		Date: now.UTC().Format(transaction.LayoutDate),
	}.Apply(d)

	next := make([]transaction.Entry, 0, len(l.entries)+1)
	next = append(next, l.entries...)
	next = append(next, e)
	if err := l.commit("create", next); err != nil {
		return transaction.Entry{}, errs.NewTransportError("create", "Failed to create transaction", 0, err)
	}
	l.log.WithField("key", e.Key()).Debug("created")
	return e, nil
}

func (l *Ledger) Update(_ context.Context, key string, d transaction.EntryDraft) (transaction.Entry, error) {
	if err := d.Validate(); err != nil {
		return transaction.Entry{}, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := -1
	for i, e := range l.entries {
		if e.Key() == key {
			idx = i
			break
		}
	}
	if idx < 0 {
		return transaction.Entry{}, errs.NewNotFoundError("Transaction " + key + " not found")
	}

	next := make([]transaction.Entry, len(l.entries))
	copy(next, l.entries)
	next[idx] = next[idx].Apply(d)
	if err := l.commit("update", next); err != nil {
		return transaction.Entry{}, errs.NewTransportError("update", "Failed to update transaction", 0, err)
	}
	l.log.WithField("key", key).Debug("updated")
	return next[idx], nil
}

// Delete removes the entry with key. An unknown key is a no-op.
func (l *Ledger) Delete(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := make([]transaction.Entry, 0, len(l.entries))
	for _, e := range l.entries {
		if e.Key() != key {
			next = append(next, e)
		}
	}
	if len(next) == len(l.entries) {
		l.log.WithField("key", key).Debug("delete of unknown key")
		return nil
	}
	if err := l.commit("delete", next); err != nil {
		return errs.NewTransportError("delete", "Failed to delete transaction", 0, err)
	}
	l.log.WithField("key", key).Debug("deleted")
	return nil
}

// Entries returns a copy of the whole collection.
func (l *Ledger) Entries() []transaction.Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]transaction.Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// commit saves next and makes it the current collection. Callers hold l.mu.
func (l *Ledger) commit(op string, next []transaction.Entry) error {
	if err := l.p.Save(KeyTransactions, next); err != nil {
		l.log.WithError(err).WithField("op", op).Warn("save failed")
		return err
	}
	l.entries = next
	return nil
}

// nextID is the creation time in Unix milliseconds, bumped past the largest
// existing id when the clock would collide. Callers hold l.mu.
func (l *Ledger) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	for _, e := range l.entries {
		if e.ID >= id {
			id = e.ID + 1
		}
	}
	return id
}
