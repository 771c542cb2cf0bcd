// Package backend implements the domain repositories against the external
// store API. Every response arrives in the `{success, data, message}`
// envelope; a transport or decode failure and an explicit `success:false`
// are surfaced as distinct errors so callers can report them precisely.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"maison/config"
	domainerrors "maison/internal/domain/errors"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// envelope is the wire shape of every backend response.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// Client is the shared HTTP client for the store backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientParams holds dependencies for the backend client, injected by Fx.
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates the shared backend API client.
func NewClient(params ClientParams) (*Client, error) {
	baseURL := strings.TrimSuffix(params.Config.Backend.BaseURL, "/")
	if baseURL == "" {
		return nil, errors.New("backend base URL must be configured")
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: params.Config.Backend.Timeout,
		},
		logger: params.Logger,
	}, nil
}

// get issues a GET request and decodes the envelope's data into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// post issues a POST request with a JSON body.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// put issues a PUT request with a JSON body.
func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// delete issues a DELETE request.
func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return errors.Wrap(err, "build backend request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Backend request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)

		return domainerrors.ErrBackendUnavailable.WithDetails(err.Error())
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		c.logger.Warn("Backend response undecodable",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.Any("error", err),
		)

		return domainerrors.ErrBackendUnavailable.WithDetails("invalid response: " + err.Error())
	}

	if !env.Success {
		message := env.Message
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}

		return c.rejection(resp.StatusCode, message)
	}

	if out == nil {
		return nil
	}
	if len(env.Data) == 0 {
		return domainerrors.ErrBackendUnavailable.WithDetails("response carried no data")
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return domainerrors.ErrBackendUnavailable.WithDetails("invalid data payload: " + err.Error())
	}

	return nil
}

// rejection maps a backend-reported failure onto a domain error, keeping the
// backend's message as the user-facing detail.
func (c *Client) rejection(status int, message string) error {
	switch status {
	case http.StatusNotFound:
		return domainerrors.NewBaseError(status, "BACKEND_NOT_FOUND", message, "")
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return domainerrors.NewBaseError(status, "BACKEND_REJECTED", message, "")
	default:
		return domainerrors.ErrBackendRejected.WithDetails(message)
	}
}

// raw issues a request and returns the undecoded response for passthrough
// endpoints such as report downloads. The caller owns the response body.
func (c *Client) raw(ctx context.Context, method, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build backend request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.ErrBackendUnavailable.WithDetails(err.Error())
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()

		return nil, domainerrors.ErrBackendRejected.WithDetails(string(body))
	}

	return resp, nil
}
