// Package solver is a client for an external two-phase cube solver.
//
// The solver is an opaque service: it consumes the canonical 54-character
// facelet string and returns a move sequence, or fails. Its errors are
// passed through unmodified; no retries happen here.
package solver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/twistylab/cubesim"
)

// Sentinel errors for the solver package.
var (
	ErrUnreachable = errors.New("solver: service unreachable")
	ErrSolveFailed = errors.New("solver: solve failed")
)

// DefaultTimeout bounds a solve request when the caller's context has no
// earlier deadline.
const DefaultTimeout = 15 * time.Second

// Option configures the Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpc = hc
	}
}

// Client talks to a two-phase solver over HTTP.
type Client struct {
	baseURL string
	timeout time.Duration
	httpc   *http.Client
}

// New creates a solver client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		timeout: DefaultTimeout,
		httpc:   http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// solveRequest is the wire request body.
type solveRequest struct {
	Facelets string `json:"facelets"`
}

// solveResponse is the wire response body.
type solveResponse struct {
	Solution string `json:"solution,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Solve submits a facelet string and returns the solution move sequence.
// A solver-side failure (unreachable or invalid facelet string, no
// solution) comes back wrapped in ErrSolveFailed with the solver's own
// message intact.
func (c *Client) Solve(ctx context.Context, facelets string) ([]cubesim.Move, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(solveRequest{Facelets: facelets})
	if err != nil {
		return nil, fmt.Errorf("solver: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/solve", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("solver: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return nil, fmt.Errorf("solver: read response: %w", err)
	}

	var sr solveResponse
	if err := json.Unmarshal(data, &sr); err != nil {
		return nil, fmt.Errorf("solver: decode response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK || sr.Error != "" {
		msg := sr.Error
		if msg == "" {
			msg = resp.Status
		}
		return nil, fmt.Errorf("%w: %s", ErrSolveFailed, msg)
	}

	moves, err := cubesim.ParseMoves(sr.Solution)
	if err != nil {
		return nil, fmt.Errorf("solver: unparseable solution %q: %w", sr.Solution, err)
	}
	return moves, nil
}
