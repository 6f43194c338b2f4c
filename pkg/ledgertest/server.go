// Package ledgertest provides an in-memory implementation of the transactions
// REST API for tests.
package ledgertest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
)

// Transaction is a stored record as it appears on the wire.
type Transaction struct {
	TransactionID   string      `json:"transactionId"`
	TransactionType string      `json:"transactionType"`
	Amount          json.Number `json:"amount"`
	Currency        string      `json:"currency"`
	Result          string      `json:"result"`
	Created         string      `json:"created"`
}

type updateRequest struct {
	Amount            json.Number `json:"amount"`
	Currency          string      `json:"currency"`
	TransactionResult string      `json:"transactionResult"`
}

type pageResponse struct {
	Content    []Transaction `json:"content"`
	TotalPages int           `json:"totalPages"`
	Number     int           `json:"number"`
}

// Request is a request received by the server, kept for assertions.
type Request struct {
	Method string
	Path   string
	Query  string
	Body   []byte
}

// API is the fake transactions service. The zero value is not usable; use New.
type API struct {
	mu       sync.Mutex
	records  []Transaction
	fail     map[string]int
	requests []Request
	now      func() time.Time
}

// New returns an API holding records.
func New(records ...Transaction) *API {
	clock := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	return &API{
		records: append([]Transaction(nil), records...),
		fail:    make(map[string]int),
		now: func() time.Time {
			clock = clock.Add(time.Minute)
			return clock
		},
	}
}

// Serve starts an httptest server mounting the API under /api. The returned
// URL is the API base.
func (a *API) Serve() (*httptest.Server, string) {
	srv := httptest.NewServer(a.Router())
	return srv, srv.URL + "/api"
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(a.recordRequest)
	r.Route("/api/transactions", func(r chi.Router) {
		r.Get("/", a.list)
		r.Post("/", a.create)
		r.Put("/{id}", a.update)
		r.Delete("/{id}", a.remove)
	})
	return r
}

// FailNext makes the next request with method answer with status.
func (a *API) FailNext(method string, status int) {
	a.mu.Lock()
	a.fail[method] = status
	a.mu.Unlock()
}

// Records returns the stored records in insertion order.
func (a *API) Records() []Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]Transaction(nil), a.records...)
}

// Requests returns every request received so far.
func (a *API) Requests() []Request {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]Request(nil), a.requests...)
}

func (a *API) recordRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			body, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewReader(body))
		}
		a.mu.Lock()
		a.requests = append(a.requests, Request{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery, Body: body})
		status, failing := a.fail[r.Method]
		delete(a.fail, r.Method)
		a.mu.Unlock()

		if failing {
			writeError(w, status, "injected failure")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	page, err1 := strconv.Atoi(r.URL.Query().Get("page"))
	size, err2 := strconv.Atoi(r.URL.Query().Get("size"))
	if err1 != nil || err2 != nil || page < 0 || size <= 0 {
		writeError(w, http.StatusBadRequest, "page and size are required")
		return
	}

	a.mu.Lock()
	sorted := append([]Transaction(nil), a.records...)
	a.mu.Unlock()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Created > sorted[j].Created
	})

	resp := pageResponse{Content: []Transaction{}, Number: page}
	resp.TotalPages = (len(sorted) + size - 1) / size
	if start := page * size; start < len(sorted) {
		end := start + size
		if end > len(sorted) {
			end = len(sorted)
		}
		resp.Content = sorted[start:end]
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	var tx Transaction
	if err := json.NewDecoder(r.Body).Decode(&tx); err != nil || tx.TransactionID == "" {
		writeError(w, http.StatusBadRequest, "invalid transaction")
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	for _, rec := range a.records {
		if rec.TransactionID == tx.TransactionID {
			writeError(w, http.StatusConflict, "transaction already exists")
			return
		}
	}
	tx.Created = a.now().Format(time.RFC3339)
	a.records = append(a.records, tx)
	writeJSON(w, http.StatusCreated, tx)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid update")
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	for i, rec := range a.records {
		if rec.TransactionID != id {
			continue
		}
		rec.Amount = req.Amount
		rec.Currency = req.Currency
		rec.Result = req.TransactionResult
		a.records[i] = rec
		writeJSON(w, http.StatusOK, rec)
		return
	}
	writeError(w, http.StatusNotFound, "transaction not found")
}

func (a *API) remove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	a.mu.Lock()
	defer a.mu.Unlock()
	for i, rec := range a.records {
		if rec.TransactionID == id {
			a.records = append(a.records[:i:i], a.records[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeError(w, http.StatusNotFound, "transaction not found")
}

type errorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}
