package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.trai.ch/pacforge/internal/core/domain"
	"go.trai.ch/pacforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultTimeout bounds every single request.
const DefaultTimeout = 30 * time.Second

// Client is a ports.ServiceClient for one worker.
type Client struct {
	base string
	http *http.Client
}

// NewClient creates a client for the service at address.
func NewClient(address string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(address, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidWorker, "invalid worker address"), "address", address)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{base: u.String(), http: httpClient}, nil
}

// Submit posts the bases to the worker and returns the process identifier.
func (c *Client) Submit(
	ctx context.Context,
	repository domain.RepositoryID,
	bases []string,
	opts domain.UpdateOptions,
) (string, error) {
	query := url.Values{}
	query.Set("architecture", repository.Architecture)
	query.Set("repository", repository.Name)

	var resp AddResponse
	if err := c.do(ctx, http.MethodPost, ServiceAddPath+"?"+query.Encode(), NewAddRequest(bases, opts), &resp); err != nil {
		return "", err
	}
	if resp.ProcessID == "" {
		return "", zerr.With(zerr.New("worker returned no process id"), "address", c.base)
	}
	return resp.ProcessID, nil
}

// ProcessAlive reports whether the process is still running. A process the
// worker does not know is reported as finished.
func (c *Client) ProcessAlive(ctx context.Context, processID string) (bool, error) {
	var resp ProcessResponse
	err := c.do(ctx, http.MethodGet, ServiceProcessPath+url.PathEscape(processID), nil, &resp)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return resp.IsAlive, nil
}

// statusError carries a non-successful HTTP status.
type statusError struct {
	status  int
	message string
}

func (e *statusError) Error() string {
	if e.message != "" {
		return http.StatusText(e.status) + ": " + e.message
	}
	return http.StatusText(e.status)
}

func isNotFound(err error) bool {
	var serr *statusError
	return errors.As(err, &serr) && serr.status == http.StatusNotFound
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return zerr.Wrap(err, "failed to encode request")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return zerr.Wrap(err, "failed to create request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "request failed"), "url", c.base+path)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var eresp ErrorResponse
		_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&eresp)
		return zerr.With(zerr.Wrap(&statusError{status: resp.StatusCode, message: eresp.Error}, "unexpected status"),
			"url", c.base+path)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to decode response"), "url", c.base+path)
	}
	return nil
}

// Factory implements ports.ClientFactory over a shared HTTP client.
type Factory struct {
	http *http.Client
}

// NewFactory creates a client factory. A nil httpClient uses DefaultTimeout.
func NewFactory(httpClient *http.Client) *Factory {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Factory{http: httpClient}
}

// NewClient creates a client for worker.
func (f *Factory) NewClient(worker domain.Worker) (ports.ServiceClient, error) {
	client, err := NewClient(worker.Address, f.http)
	if err != nil {
		return nil, zerr.With(err, "worker", worker.Identifier)
	}
	return client, nil
}

// NewRegistrar creates a registrar for the coordinator at address.
func (f *Factory) NewRegistrar(coordinator string) (ports.WorkerRegistrar, error) {
	client, err := NewClient(coordinator, f.http)
	if err != nil {
		return nil, err
	}
	return &Coordinator{client: client}, nil
}
