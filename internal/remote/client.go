package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/matheus3301/estate/internal/contracts"
	"github.com/matheus3301/estate/internal/listing"
)

const maxBody = 4 << 20

// User is the public profile of a listing owner.
type User struct {
	ID         string `json:"_id,omitempty"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	ProfilePic string `json:"profilePic,omitempty"`
}

// Query filters a listing search. Zero values are omitted from the request.
type Query struct {
	Offer bool
	Type  listing.Type
	Limit int
}

func (q Query) values() url.Values {
	v := url.Values{}
	if q.Offer {
		v.Set("offer", "true")
	}
	if q.Type != "" {
		v.Set("type", string(q.Type))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return v
}

// Options configures a Client.
type Options struct {
	BaseURL         string
	Timeout         time.Duration
	DefaultCurrency string
	HTTPClient      *http.Client
}

// Client talks to the listings backend.
type Client struct {
	baseURL    string
	timeout    time.Duration
	currency   string
	httpClient *http.Client
	logger     *zap.Logger
}

// New creates a client. A nil HTTPClient uses a fresh http.Client.
func New(opts Options, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		timeout:    opts.Timeout,
		currency:   opts.DefaultCurrency,
		httpClient: hc,
		logger:     logger.With(zap.String("component", "remote")),
	}
}

// GetListing fetches one listing by id.
func (c *Client) GetListing(ctx context.Context, id string) (*listing.Summary, error) {
	const op = "get listing"
	body, err := c.get(ctx, op, "/listing/get/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	s, err := listing.Parse(body, c.currency)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	return s, nil
}

// SearchListings returns listings matching q.
func (c *Client) SearchListings(ctx context.Context, q Query) ([]listing.Summary, error) {
	const op = "search listings"
	body, err := c.get(ctx, op, "/listing/get", q.values())
	if err != nil {
		return nil, err
	}
	out, err := listing.ParseList(body, c.currency)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	return out, nil
}

// GetUser fetches a user's public profile.
func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	const op = "get user"
	body, err := c.get(ctx, op, "/user/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	if err := contracts.Validate(contracts.User, body); err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	var u User
	if err := json.Unmarshal(body, &u); err != nil {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("decode user: %w", err)}
	}
	return &u, nil
}

// get performs a GET and returns the body of a 2xx response that is not a
// {"success": false} envelope.
func (c *Client) get(ctx context.Context, op, path string, query url.Values) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	reqID := uuid.NewString()
	log := c.logger.With(zap.String("op", op), zap.String("request_id", reqID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("request failed", zap.Error(err))
		return nil, &TransportError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, &TransportError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}
	log.Debug("response",
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("bytes", len(body)))

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if msg, ok := failureMessage(body); ok {
		return nil, fmt.Errorf("%s: %w: %s", op, ErrNotFound, msg)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{Op: op, Status: resp.StatusCode, Err: errors.New(http.StatusText(resp.StatusCode))}
	}
	return body, nil
}

type envelope struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
}

// failureMessage reports whether body is the backend's {"success": false}
// envelope, which it sends with a 200 or an error status.
func failureMessage(body []byte) (string, bool) {
	var e envelope
	if err := json.Unmarshal(body, &e); err != nil {
		return "", false
	}
	if e.Success != nil && !*e.Success {
		return e.Message, true
	}
	return "", false
}
