package core

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/JonMunkholm/csvpost/internal/logging"
)

// maxErrorBody caps how much of a failed response body is echoed in errors.
const maxErrorBody = 256

// Dispatcher POSTs records to a fixed URL without waiting for earlier requests.
//
// Successful response bodies are written to out, one per line. Failures are
// written to errOut as "Error: ..." lines and never stop the run.
type Dispatcher struct {
	client *http.Client
	url    string

	writeMu sync.Mutex
	out     io.Writer
	errOut  io.Writer

	inflight *InFlight
}

// NewDispatcher creates a dispatcher posting to url.
// A nil client is replaced by NewClient(timeout).
func NewDispatcher(url string, client *http.Client, timeout time.Duration, out, errOut io.Writer) *Dispatcher {
	if client == nil {
		client = NewClient(timeout)
	}
	return &Dispatcher{
		client:   client,
		url:      url,
		out:      out,
		errOut:   errOut,
		inflight: NewInFlight(),
	}
}

// NewClient returns the HTTP client used for dispatch: the given timeout
// and a transport that logs every request.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: &logging.Transport{},
	}
}

// Dispatch starts the POST for rec and returns immediately.
// line is the 1-based CSV line the record came from.
func (d *Dispatcher) Dispatch(ctx context.Context, rec Record, line int) {
	ctx = logging.WithRequestID(ctx)
	logger := logging.WithFields(ctx, "line", line)

	body, err := json.Marshal(rec)
	if err != nil {
		d.inflight.Begin()
		d.settle(ctx, nil, &DispatchError{Line: line, Err: fmt.Errorf("encode record: %w", err)})
		return
	}

	d.inflight.Begin()
	logger.Debug("dispatching record", "bytes", len(body))

	go func() {
		respBody, err := d.post(ctx, body, line)
		d.settle(ctx, respBody, err)
	}()
}

// post sends one request and returns the response body for 2xx answers.
func (d *Dispatcher) post(ctx context.Context, body []byte, line int) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return nil, &DispatchError{Line: line, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, &DispatchError{Line: line, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &DispatchError{Line: line, StatusCode: resp.StatusCode, Status: resp.Status, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &DispatchError{
			Line:       line,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       truncateString(strings.TrimSpace(string(respBody)), maxErrorBody),
		}
	}

	return respBody, nil
}

// settle reports the outcome of one request and marks it done.
func (d *Dispatcher) settle(ctx context.Context, respBody []byte, err error) {
	defer d.inflight.Done(err == nil)

	d.writeMu.Lock()
	defer d.writeMu.Unlock()

	if err != nil {
		logging.FromContext(ctx).Debug("dispatch failed", "error", err, "code", MapError(err).Code)
		fmt.Fprintf(d.errOut, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(d.out, strings.TrimRight(string(respBody), "\r\n"))
}

// Wait blocks until every dispatched request settles or ctx is done.
func (d *Dispatcher) Wait(ctx context.Context) error {
	return d.inflight.WaitForDrain(ctx)
}

// Status returns the dispatch counters.
func (d *Dispatcher) Status() InFlightStatus {
	return d.inflight.Status()
}

// truncateString shortens s to at most n bytes, marking the cut with "...".
func truncateString(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n > 3 {
		return s[:n-3] + "..."
	}
	return s[:n]
}
