// Package httpclient implements the authenticated request pipeline against
// the upstream store API: build, optional credential attachment, send, parse,
// classify.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Request describes one upstream call.
type Request struct {
	// Method defaults to GET when empty.
	Method string

	// Path is concatenated to the base URL verbatim; callers supply the
	// leading slash. No normalization is performed.
	Path string

	// Body is JSON-serialized when non-nil; a nil body sends no body at all,
	// not an empty string.
	Body any

	// Headers override the defaults per key.
	Headers map[string]string

	// Auth attaches the stored bearer credential when set. Attachment is
	// best-effort: an empty credential slot sends the request without an
	// Authorization header and lets the upstream decide.
	Auth bool
}

// Result is a successfully classified 2xx response.
type Result struct {
	Status int

	// Parsed is the decoded body: nil for an empty body, the JSON value when
	// the body parses, otherwise the raw text itself. A malformed body never
	// fails the call.
	Parsed any

	// Raw is the unmodified body text for typed decoding by gateways.
	Raw []byte
}

// Params holds dependencies for the Client, injected by Fx
type Params struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	Credentials repository.CredentialRepository
}

// Client issues requests against the configured base URL. It is safe for
// concurrent use; each call independently reads the credential store.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	credentials repository.CredentialRepository
	logger      *slog.Logger
}

// New is the constructor for Client.
func New(params Params) *Client {
	return &Client{
		baseURL:     params.Config.Store.BaseURL,
		httpClient:  &http.Client{Timeout: params.Config.Store.Timeout},
		credentials: params.Credentials,
		logger:      params.Logger,
	}
}

// NewWithBase builds a Client outside the Fx graph, for tests and tooling.
func NewWithBase(baseURL string, credentials repository.CredentialRepository, logger *slog.Logger) *Client {
	return &Client{
		baseURL:     baseURL,
		httpClient:  &http.Client{},
		credentials: credentials,
		logger:      logger,
	}
}

// Do runs the pipeline for one request. Non-2xx responses come back as
// *domainerrors.UpstreamError with Kind HTTP; a failed transport as Kind
// Transport. ctx cancels at both suspension points: the credential read and
// the network call.
func (c *Client) Do(ctx context.Context, req Request) (*Result, error) {
	httpReq, err := c.build(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, domainerrors.NewUpstreamTransportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domainerrors.NewUpstreamTransportError(err)
	}

	parsed := parseBody(raw)

	c.logger.Debug("upstream call",
		slog.String("method", httpReq.Method),
		slog.String("path", req.Path),
		slog.Int("status", resp.StatusCode),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, domainerrors.NewUpstreamHTTPError(resp.StatusCode, extractMessage(parsed), parsed)
	}

	return &Result{
		Status: resp.StatusCode,
		Parsed: parsed,
		Raw:    raw,
	}, nil
}

// build composes the outgoing request: URL, body, default headers, overrides
// and the optional bearer credential.
func (c *Client) build(ctx context.Context, req Request) (*http.Request, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, errors.Wrap(err, "marshal request body")
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+req.Path, body)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if req.Auth {
		token, err := c.credentials.Get(ctx)
		switch {
		case err == nil && token != "":
			httpReq.Header.Set("Authorization", "Bearer "+token)
		case errors.Is(err, repository.ErrCredentialNotFound):
			// Empty slot: proceed without the header, the upstream decides.
		case err != nil:
			return nil, domainerrors.ErrCredentialStoreFailed.WrapMessage("read credential")
		}
	}

	return httpReq, nil
}

// parseBody decodes the response text: empty becomes nil, valid JSON becomes
// its value, and anything else degrades to the raw text.
func parseBody(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return string(raw)
	}

	return parsed
}

// extractMessage pulls a human-readable message out of a parsed error body
// when the body is a JSON object carrying one.
func extractMessage(parsed any) string {
	obj, ok := parsed.(map[string]any)
	if !ok {
		return ""
	}

	msg, ok := obj["message"].(string)
	if !ok {
		return ""
	}

	return msg
}

// Decode unmarshals a result's raw body into the caller's expected shape. An
// empty body leaves the zero value. No schema validation is performed beyond
// what encoding/json enforces.
func Decode[T any](res *Result) (T, error) {
	var out T
	if len(res.Raw) == 0 {
		return out, nil
	}

	if err := json.Unmarshal(res.Raw, &out); err != nil {
		return out, errors.Wrap(err, "decode upstream response")
	}

	return out, nil
}
