// Package clinicapi is the single HTTP transport used by every resource
// module. It attaches headers, encodes bodies and turns non-2xx responses
// into *errors.APIError.
package clinicapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/zatekoja/hivclinic/internal/domain/entities"
	"github.com/zatekoja/hivclinic/internal/domain/providers"
	"github.com/zatekoja/hivclinic/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/hivclinic/pkg/errors"
)

const (
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	headerRequestID     = "X-Request-ID"

	contentTypeJSON = "application/json"

	// maxErrorBody bounds how much of a failed response is kept for the message
	maxErrorBody = 64 << 10
)

// Request describes one backend call
type Request struct {
	// Operation is the human name used in "<Operation> failed: <status>"
	Operation  string
	Method     string
	Path       string
	Query      url.Values
	Body       interface{}
	Form       *MultipartForm
	Authorized bool
}

// MultipartForm is sent as multipart/form-data instead of a JSON body
type MultipartForm struct {
	Fields map[string]string
	Files  []FilePart
}

// FilePart is one file field of a multipart form
type FilePart struct {
	Field    string
	FileName string
	Content  io.Reader
}

// Client is the clinic backend transport
type Client struct {
	baseURL     string
	httpClient  *http.Client
	credentials providers.CredentialProvider
	metrics     *observability.Metrics
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithMetrics records request metrics
func WithMetrics(m *observability.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient creates a transport for baseURL. credentials may be nil, in
// which case authorized calls are sent without a token.
func NewClient(baseURL string, credentials providers.CredentialProvider, opts ...Option) *Client {
	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  &http.Client{Timeout: 15 * time.Second},
		credentials: credentials,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends req and decodes a JSON success body into out. out may be nil.
func (c *Client) Do(ctx context.Context, req Request, out interface{}) error {
	body, _, err := c.send(ctx, req)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &apperrors.APIError{
			Operation:  operationName(req),
			StatusCode: http.StatusOK,
			Message:    fmt.Sprintf("%s failed: invalid response body", operationName(req)),
			Body:       truncate(string(body)),
			Err:        err,
		}
	}
	return nil
}

// Download sends req and returns the raw body
func (c *Client) Download(ctx context.Context, req Request) (*entities.Blob, error) {
	body, header, err := c.send(ctx, req)
	if err != nil {
		return nil, err
	}
	blob := &entities.Blob{
		ContentType: header.Get(headerContentType),
		Data:        body,
	}
	if _, params, err := mime.ParseMediaType(header.Get("Content-Disposition")); err == nil {
		blob.FileName = params["filename"]
	}
	return blob, nil
}

func (c *Client) send(ctx context.Context, req Request) ([]byte, http.Header, error) {
	op := operationName(req)
	ctx, span := observability.StartSpan(ctx, "clinicapi."+op)
	defer span.End()

	requestID := uuid.New().String()
	observability.SetSpanAttributes(span,
		attribute.String("http.method", req.Method),
		attribute.String("http.route", req.Path),
		attribute.String("clinicapi.request_id", requestID),
	)

	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		observability.RecordError(span, err)
		return nil, nil, err
	}
	httpReq.Header.Set(headerRequestID, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		observability.RecordError(span, err)
		span.SetStatus(codes.Error, "transport failure")
		observability.RecordRequestMetric(ctx, c.metrics, op, req.Method, 0, time.Since(start))
		return nil, nil, &apperrors.APIError{
			Operation: op,
			Message:   fmt.Sprintf("%s failed: %v", op, err),
			Err:       err,
		}
	}
	defer resp.Body.Close()

	observability.RecordRequestMetric(ctx, c.metrics, op, req.Method, resp.StatusCode, time.Since(start))
	observability.SetSpanAttributes(span, attribute.Int("http.status_code", resp.StatusCode))
	observability.LoggerFromContext(ctx).Debug().
		Str("operation", op).
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", resp.StatusCode).
		Str("request_id", requestID).
		Dur("duration", time.Since(start)).
		Msg("clinic api call")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := &apperrors.APIError{
			Operation:  op,
			StatusCode: resp.StatusCode,
			Message:    ErrorMessage(op, resp.StatusCode, raw),
			Body:       truncate(string(raw)),
		}
		observability.RecordError(span, apiErr)
		span.SetStatus(codes.Error, apiErr.Message)
		return nil, nil, apiErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, &apperrors.APIError{
			Operation:  op,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("%s failed: %v", op, err),
			Err:        err,
		}
	}
	return body, resp.Header, nil
}

func (c *Client) newRequest(ctx context.Context, req Request) (*http.Request, error) {
	endpoint := c.baseURL + req.Path
	if len(req.Query) > 0 {
		endpoint += "?" + req.Query.Encode()
	}

	var (
		body        io.Reader
		contentType string
	)
	switch {
	case req.Form != nil:
		buf := &bytes.Buffer{}
		writer := multipart.NewWriter(buf)
		if err := writeForm(writer, req.Form); err != nil {
			return nil, apperrors.NewInternalError("encode multipart body", err)
		}
		body = buf
		contentType = writer.FormDataContentType()
	case req.Body != nil:
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, apperrors.NewInternalError("encode request body", err)
		}
		body = bytes.NewReader(encoded)
		contentType = contentTypeJSON
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, endpoint, body)
	if err != nil {
		return nil, apperrors.NewInternalError("build request", err)
	}
	httpReq.Header.Set("Accept", contentTypeJSON)
	if contentType != "" {
		httpReq.Header.Set(headerContentType, contentType)
	}

	if req.Authorized && c.credentials != nil {
		token, err := c.credentials.Token(ctx)
		if err != nil {
			return nil, apperrors.NewInternalError("read session token", err)
		}
		if token != "" {
			httpReq.Header.Set(headerAuthorization, "Bearer "+token)
		}
	}
	return httpReq, nil
}

func writeForm(w *multipart.Writer, form *MultipartForm) error {
	for k, v := range form.Fields {
		if err := w.WriteField(k, v); err != nil {
			return err
		}
	}
	for _, f := range form.Files {
		if f.Content == nil {
			return fmt.Errorf("file part %q has no content", f.Field)
		}
		part, err := w.CreateFormFile(f.Field, f.FileName)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return err
		}
	}
	return w.Close()
}

// ErrorMessage picks the message for a failed response: the JSON
// "message" field, then "error", then the raw text, then a generic
// "<operation> failed: <status>".
func ErrorMessage(operation string, status int, body []byte) string {
	fallback := fmt.Sprintf("%s failed: %d", operation, status)
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return fallback
	}

	var obj map[string]interface{}
	if err := json.Unmarshal(trimmed, &obj); err == nil {
		if msg := stringField(obj, "message"); msg != "" {
			return msg
		}
		if msg := stringField(obj, "error"); msg != "" {
			return msg
		}
		return fallback
	}

	return string(trimmed)
}

func stringField(obj map[string]interface{}, key string) string {
	if v, ok := obj[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func operationName(req Request) string {
	if req.Operation != "" {
		return req.Operation
	}
	return req.Method + " " + req.Path
}

func truncate(s string) string {
	const max = 2048
	if len(s) > max {
		return s[:max]
	}
	return s
}
