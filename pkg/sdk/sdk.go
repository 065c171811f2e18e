package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/friendsofgo/errors"

	"adminboard/pkg/log"
)

// Config is the client configuration.
type Config struct {
	BaseURL          string
	RequestTimeout   time.Duration
	RetryBudget      int
	RetryMaxInterval time.Duration
	CacheTTL         time.Duration
}

// Client is the dashboard's data layer: a caching, retrying HTTP client
// for the users API.
//
// List reads are cached per canonical query and retried on transient
// failures. Status mutations are applied optimistically to every cached
// page, rolled back verbatim on failure, and never retried.
type Client struct {
	l                log.Logger
	baseURL          string
	http             *http.Client
	retryBudget      int
	retryMaxInterval time.Duration
	cache            *queryCache
}

// New creates a Client.
func New(l log.Logger, cfg Config) *Client {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	retryMax := cfg.RetryMaxInterval
	if retryMax <= 0 {
		retryMax = 2 * time.Second
	}

	return &Client{
		l:                l,
		baseURL:          strings.TrimRight(cfg.BaseURL, "/"),
		http:             &http.Client{Timeout: timeout},
		retryBudget:      cfg.RetryBudget,
		retryMaxInterval: retryMax,
		cache:            newQueryCache(ttl),
	}
}

// ListUsers returns one page of users. Fresh cache entries are served
// directly. Stale entries are served immediately while a revalidation
// runs in the background, so the caller never waits on data it already
// has. Misses fetch synchronously with retry.
func (c *Client) ListUsers(ctx context.Context, params ListParams) (UsersPage, error) {
	params = params.normalized()
	key := params.Key()

	page, ok, stale := c.cache.get(key)
	if ok && !stale {
		return page, nil
	}
	if ok && stale {
		// One revalidation per key; concurrent stale reads share it.
		if c.cache.tryBeginRevalidate(key) {
			go c.revalidate(params)
		}
		return page, nil
	}

	generation := c.cache.currentGeneration()
	fetched, err := c.fetchWithRetry(ctx, params)
	if err != nil {
		return UsersPage{}, err
	}
	c.cache.set(key, fetched, generation)
	return fetched, nil
}

// revalidate refetches a stale page in the background. The result is
// dropped if a mutation superseded it while in flight. The caller must
// have claimed the key's revalidation slot.
func (c *Client) revalidate(params ListParams) {
	defer c.cache.endRevalidate(params.Key())

	ctx, cancel := context.WithTimeout(context.Background(), c.http.Timeout)
	defer cancel()

	generation := c.cache.currentGeneration()
	page, err := c.fetchWithRetry(ctx, params)
	if err != nil {
		c.l.Warnf(ctx, "pkg.sdk.Client.revalidate: %v", err)
		return
	}
	if !c.cache.set(params.Key(), page, generation) {
		c.l.Debugf(ctx, "pkg.sdk.Client.revalidate: superseded, dropping %s", params.Key())
	}
}

// fetchWithRetry fetches a list page, retrying transient failures with
// capped exponential backoff up to the retry budget. Non-transient
// failures stop retrying immediately.
func (c *Client) fetchWithRetry(ctx context.Context, params ListParams) (UsersPage, error) {
	var page UsersPage

	operation := func() error {
		fetched, err := c.fetchPage(ctx, params)
		if err != nil {
			if !retryable(err) {
				return backoff.Permanent(err)
			}
			c.l.Warnf(ctx, "pkg.sdk.Client.fetchWithRetry: retrying after %v", err)
			return err
		}
		page = fetched
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxInterval = c.retryMaxInterval
	policy := backoff.WithContext(
		backoff.WithMaxRetries(bo, uint64(c.retryBudget)), ctx)

	if err := backoff.Retry(operation, policy); err != nil {
		return UsersPage{}, err
	}
	return page, nil
}

func (c *Client) fetchPage(ctx context.Context, params ListParams) (UsersPage, error) {
	endpoint := c.baseURL + "/api/v1/users?" + params.values().Encode()

	var page UsersPage
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &page); err != nil {
		return UsersPage{}, err
	}
	return page, nil
}

// GetUser fetches a single user by ID. Detail reads bypass the list
// cache.
func (c *Client) GetUser(ctx context.Context, id string) (User, error) {
	endpoint := c.baseURL + "/api/v1/users/" + url.PathEscape(id)

	var user User
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// statusUpdate is the confirmation returned by a status mutation.
type statusUpdate struct {
	User    User   `json:"user"`
	Message string `json:"message"`
}

// SetUserStatus sets a user's status to active or inactive.
//
// The change is applied optimistically to every cached page containing
// the user before the request is sent, and the pre-mutation snapshot is
// restored verbatim if the request fails. Mutations are never retried;
// on success the whole cache is invalidated so list views reconverge on
// server truth.
func (c *Client) SetUserStatus(ctx context.Context, id, status string) (User, string, error) {
	if status != StatusActive && status != StatusInactive {
		return User{}, "", errors.Errorf("invalid status %q", status)
	}
	if id == "" {
		return User{}, "", errors.New("user id is required")
	}

	// Snapshot, optimistic write and generation bump happen atomically:
	// a refetch completing mid-mutation must already see the new
	// generation and be discarded.
	snapshot := c.cache.beginMutation(id, status)

	endpoint := c.baseURL + "/api/v1/users/" + url.PathEscape(id) + "/status"
	body := map[string]string{"status": status}

	var update statusUpdate
	if err := c.do(ctx, http.MethodPatch, endpoint, body, &update); err != nil {
		c.cache.restore(snapshot)
		c.l.Errorf(ctx, "pkg.sdk.Client.SetUserStatus: rolled back %d page(s): %v", len(snapshot), err)
		return User{}, "", err
	}

	c.cache.invalidateAll()
	return update.User, update.Message, nil
}

// envelope mirrors the API's response wrapper.
type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Errors    json.RawMessage `json:"errors"`
}

// do sends one request and decodes the envelope's data into out.
func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encoding request body")
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if decodeErr == nil {
			apiErr.Code = env.ErrorCode
			apiErr.Message = env.Message
		}
		return apiErr
	}
	if decodeErr != nil {
		return errors.Wrap(decodeErr, "decoding response")
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return errors.Wrap(err, "decoding response data")
		}
	}
	return nil
}

// CachedPages reports how many list pages the client currently holds.
func (c *Client) CachedPages() int {
	return c.cache.len()
}
