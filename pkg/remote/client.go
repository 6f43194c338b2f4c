// Package remote implements the server-backed ledger store over the
// transactions REST API.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"tableflip.dev/ledger/pkg/errs"
	"tableflip.dev/ledger/pkg/ledger"
	"tableflip.dev/ledger/pkg/transaction"
)

const (
	MsgFetchFailed  = "Failed to fetch transactions"
	MsgCreateFailed = "Failed to create transaction"
	MsgUpdateFailed = "Failed to update transaction"
	MsgDeleteFailed = "Failed to delete transaction"
)

// DefaultTimeout applies when Config.Timeout is zero.
const DefaultTimeout = 10 * time.Second

type Config struct {
	BaseURL string
	Timeout time.Duration
	Log     logrus.FieldLogger
}

// Client talks to the transactions API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        logrus.FieldLogger
}

var _ ledger.Store[transaction.Payment, transaction.PaymentDraft, transaction.PaymentUpdate] = (*Client)(nil)

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	log := cfg.Log
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log.WithField("store", "remote"),
	}
}

// List fetches one page. The server pages and orders the results.
func (c *Client) List(ctx context.Context, page, size int) (ledger.Page[transaction.Payment], error) {
	if size <= 0 {
		size = ledger.RemotePageSize
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	var wp wirePage
	if err := c.do(ctx, "list", http.MethodGet, "/transactions?"+q.Encode(), nil, &wp, MsgFetchFailed); err != nil {
		return ledger.Page[transaction.Payment]{}, err
	}

	items := make([]transaction.Payment, 0, len(wp.Content))
	for _, w := range wp.Content {
		p, err := w.payment()
		if err != nil {
			return ledger.Page[transaction.Payment]{}, errs.NewTransportError("list", MsgFetchFailed, 0, err)
		}
		items = append(items, p)
	}
	return ledger.Page[transaction.Payment]{Items: items, Number: wp.Number, TotalPages: wp.TotalPages}, nil
}

func (c *Client) Create(ctx context.Context, d transaction.PaymentDraft) (transaction.Payment, error) {
	if err := d.Validate(); err != nil {
		return transaction.Payment{}, err
	}
	var w wireTransaction
	if err := c.do(ctx, "create", http.MethodPost, "/transactions", fromDraft(d), &w, MsgCreateFailed); err != nil {
		return transaction.Payment{}, err
	}
	p, err := w.payment()
	if err != nil {
		return transaction.Payment{}, errs.NewTransportError("create", MsgCreateFailed, 0, err)
	}
	return p, nil
}

// Update sends the mutable fields of the transaction with key.
func (c *Client) Update(ctx context.Context, key string, u transaction.PaymentUpdate) (transaction.Payment, error) {
	if err := u.Validate(); err != nil {
		return transaction.Payment{}, err
	}
	var w wireTransaction
	if err := c.do(ctx, "update", http.MethodPut, "/transactions/"+url.PathEscape(key), fromUpdate(u), &w, MsgUpdateFailed); err != nil {
		return transaction.Payment{}, err
	}
	p, err := w.payment()
	if err != nil {
		return transaction.Payment{}, errs.NewTransportError("update", MsgUpdateFailed, 0, err)
	}
	return p, nil
}

func (c *Client) Delete(ctx context.Context, key string) error {
	return c.do(ctx, "delete", http.MethodDelete, "/transactions/"+url.PathEscape(key), nil, nil, MsgDeleteFailed)
}

// do sends body as JSON and decodes a 2xx response into out. A 409 on create
// is a ConflictError; any other failure is a TransportError carrying msg.
func (c *Client) do(ctx context.Context, op, method, path string, body, out interface{}, msg string) error {
	log := c.log.WithFields(logrus.Fields{"op": op, "method": method, "path": path})

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return errs.NewTransportError(op, msg, 0, fmt.Errorf("encode request: %w", err))
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errs.NewTransportError(op, msg, 0, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Warn("request failed")
		return errs.NewTransportError(op, msg, 0, err)
	}
	defer resp.Body.Close()

	log = log.WithField("status", resp.StatusCode)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		log.Warn("unexpected status")
		if resp.StatusCode == http.StatusConflict && method == http.MethodPost {
			id := ""
			if w, ok := body.(wireTransaction); ok {
				id = w.TransactionID
			}
			return errs.NewConflictError(id)
		}
		return errs.NewTransportError(op, msg, resp.StatusCode, nil)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			log.WithError(err).Warn("decode failed")
			return errs.NewTransportError(op, msg, resp.StatusCode, fmt.Errorf("decode response: %w", err))
		}
	}
	log.Debug("ok")
	return nil
}
