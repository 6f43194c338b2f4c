// Package ledger implements the transaction list controller: it loads pages
// from a backing store, keeps the local view sorted and paginated, and
// reconciles local state after every create, update and delete.
package ledger

import (
	"context"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"tableflip.dev/ledger/pkg/errs"
)

const (
	// LocalPageSize is the fixed page size of the local ledger.
	LocalPageSize = 5
	// RemotePageSize is the fixed page size of the server-backed ledger.
	RemotePageSize = 10
)

// Paging selects where pages are cut.
type Paging int

const (
	// ClientPaging loads the whole collection and pages it locally.
	ClientPaging Paging = iota
	// ServerPaging asks the store for one page at a time.
	ServerPaging
)

func (p Paging) String() string {
	if p == ServerPaging {
		return "server"
	}
	return "client"
}

// Draft is a set of user-entered fields that can be checked before any I/O.
type Draft interface {
	Validate() error
}

// Store is the backing store port shared by the local and remote ledgers.
type Store[T Record, C Draft, U Draft] interface {
	// List returns the zero-based page of the given size. A size <= 0
	// requests the whole collection.
	List(ctx context.Context, page, size int) (Page[T], error)
	Create(ctx context.Context, draft C) (T, error)
	Update(ctx context.Context, key string, fields U) (T, error)
	Delete(ctx context.Context, key string) error
}

type Options struct {
	Paging   Paging
	PageSize int
	Log      logrus.FieldLogger
}

// Controller holds the current view of a ledger. It is safe for concurrent
// use; store calls run without holding the lock.
type Controller[T Record, C Draft, U Draft] struct {
	store  Store[T, C, U]
	paging Paging
	size   int
	log    logrus.FieldLogger

	mu      sync.Mutex
	items   []T
	page    int
	pages   int
	loading bool
	err     error
	seq     uint64
}

// New returns a controller over store. A zero PageSize picks the fixed size
// for the paging mode.
func New[T Record, C Draft, U Draft](store Store[T, C, U], opts Options) *Controller[T, C, U] {
	size := opts.PageSize
	if size <= 0 {
		size = LocalPageSize
		if opts.Paging == ServerPaging {
			size = RemotePageSize
		}
	}
	log := opts.Log
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Controller[T, C, U]{
		store:  store,
		paging: opts.Paging,
		size:   size,
		log:    log.WithField("paging", opts.Paging.String()),
	}
}

// Load fetches the given zero-based page. With client paging it fetches the
// whole collection. A failed load clears the collection and records the
// error. A response superseded by a later Load is discarded.
func (c *Controller[T, C, U]) Load(ctx context.Context, page int) error {
	if page < 0 {
		return errs.NewRangeError(page, c.TotalPages())
	}

	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.loading = true
	c.mu.Unlock()

	var (
		p   Page[T]
		err error
	)
	if c.paging == ClientPaging {
		p, err = c.store.List(ctx, 0, 0)
	} else {
		p, err = c.store.List(ctx, page, c.size)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		c.log.WithField("page", page).Debug("discarding superseded load")
		return nil
	}
	c.loading = false

	if err != nil {
		c.log.WithError(err).WithField("page", page).Warn("load failed")
		c.items = nil
		c.pages = 0
		c.err = err
		return err
	}

	pages := p.TotalPages
	if c.paging == ClientPaging {
		pages = TotalPages(len(p.Items), c.size)
		c.items = p.Items
	}
	c.pages = pages
	c.err = nil

	if page > 0 && page >= pages {
		c.clampPage()
		return errs.NewRangeError(page, pages)
	}

	if c.paging == ServerPaging {
		c.items = p.Items
		page = p.Number
	}
	c.page = page
	c.log.WithFields(logrus.Fields{"page": page, "pages": pages, "count": len(c.items)}).Debug("loaded")
	return nil
}

// Reload fetches the current page again.
func (c *Controller[T, C, U]) Reload(ctx context.Context) error {
	return c.Load(ctx, c.Page())
}

// Invalidate records a failed read that happened outside the store, e.g. a
// backing file that no longer decodes. It clears the collection like a failed
// Load and discards any load still in flight.
func (c *Controller[T, C, U]) Invalidate(err error) {
	if err == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.log.WithError(err).Warn("invalidated")
	c.seq++
	c.loading = false
	c.items = nil
	c.pages = 0
	c.err = err
	c.clampPage()
}

// Create validates draft and stores it. With client paging the new record is
// appended; with server paging the current page is fetched again so the
// server ordering shows.
func (c *Controller[T, C, U]) Create(ctx context.Context, draft C) (T, error) {
	var zero T
	if err := draft.Validate(); err != nil {
		return zero, err
	}

	rec, err := c.store.Create(ctx, draft)
	if err != nil {
		c.log.WithError(err).Warn("create failed")
		c.setErr(err)
		return zero, err
	}
	c.log.WithField("key", rec.Key()).Debug("created")

	if c.paging == ServerPaging {
		// A failed refetch is reported through Err; the record exists.
		_ = c.Reload(ctx)
		return rec, nil
	}

	c.mu.Lock()
	items := make([]T, 0, len(c.items)+1)
	items = append(items, c.items...)
	c.items = append(items, rec)
	c.pages = TotalPages(len(c.items), c.size)
	c.err = nil
	c.mu.Unlock()
	return rec, nil
}

// Update validates fields and applies them to the record with key, replacing
// the local copy with the store's response.
func (c *Controller[T, C, U]) Update(ctx context.Context, key string, fields U) (T, error) {
	var zero T
	if err := fields.Validate(); err != nil {
		return zero, err
	}

	rec, err := c.store.Update(ctx, key, fields)
	if err != nil {
		c.log.WithError(err).WithField("key", key).Warn("update failed")
		c.setErr(err)
		return zero, err
	}

	c.mu.Lock()
	items := make([]T, len(c.items))
	for i, it := range c.items {
		if it.Key() == key {
			it = rec
		}
		items[i] = it
	}
	c.items = items
	c.err = nil
	c.mu.Unlock()
	c.log.WithField("key", key).Debug("updated")
	return rec, nil
}

// Delete removes the record with key from the store, then from local state.
func (c *Controller[T, C, U]) Delete(ctx context.Context, key string) error {
	if err := c.store.Delete(ctx, key); err != nil {
		c.log.WithError(err).WithField("key", key).Warn("delete failed")
		c.setErr(err)
		return err
	}

	c.mu.Lock()
	items := make([]T, 0, len(c.items))
	for _, it := range c.items {
		if it.Key() != key {
			items = append(items, it)
		}
	}
	c.items = items
	if c.paging == ClientPaging {
		c.pages = TotalPages(len(c.items), c.size)
		c.clampPage()
	}
	c.err = nil
	c.mu.Unlock()
	c.log.WithField("key", key).Debug("deleted")
	return nil
}

// View returns the records of the current page in display order.
func (c *Controller[T, C, U]) View() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paging == ClientPaging {
		return SortAndPage(c.items, c.page, c.size)
	}
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Items returns every record held locally: the whole collection with client
// paging, the current page with server paging.
func (c *Controller[T, C, U]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Find returns the locally held record with key.
func (c *Controller[T, C, U]) Find(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.items {
		if it.Key() == key {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func (c *Controller[T, C, U]) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

func (c *Controller[T, C, U]) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pages
}

func (c *Controller[T, C, U]) PageSize() int { return c.size }

func (c *Controller[T, C, U]) Paging() Paging { return c.paging }

// HasPrev reports whether a previous page exists.
func (c *Controller[T, C, U]) HasPrev() bool {
	return c.Page() > 0
}

// HasNext reports whether a next page exists.
func (c *Controller[T, C, U]) HasNext() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page+1 < c.pages
}

func (c *Controller[T, C, U]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Err is the user-facing text of the last failed operation, or "".
func (c *Controller[T, C, U]) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return errs.UserMessage(c.err)
}

// ClearErr drops the recorded error, e.g. once a banner was dismissed.
func (c *Controller[T, C, U]) ClearErr() {
	c.setErr(nil)
}

func (c *Controller[T, C, U]) setErr(err error) {
	c.mu.Lock()
	c.err = err
	c.mu.Unlock()
}

// clampPage keeps the current page inside the collection after it shrank.
// Callers hold c.mu.
func (c *Controller[T, C, U]) clampPage() {
	if c.page >= c.pages {
		c.page = c.pages - 1
	}
	if c.page < 0 {
		c.page = 0
	}
}
