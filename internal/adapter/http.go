package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/career-dashboard/internal/app"
	"github.com/MKhiriev/career-dashboard/internal/config"
	"github.com/MKhiriev/career-dashboard/internal/logger"
	"github.com/MKhiriev/career-dashboard/internal/utils"
	"github.com/MKhiriev/career-dashboard/models"
)

// TraceIDHeader carries the per-request trace id.
const TraceIDHeader = "X-Trace-ID"

type httpDispatcher struct {
	client      *utils.HTTPClient
	credentials CredentialSource
	traceIDs    *utils.UUIDGenerator
	pending     *PendingCounter

	mu             sync.RWMutex
	onUnauthorized []func(ctx context.Context)

	logger *logger.Logger
}

// NewHTTPDispatcher constructs the resty-backed [Dispatcher]. It normalises
// and validates adapterCfg.HTTPAddress and configures the request timeout.
// Automatic retries are disabled.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPDispatcher(adapterCfg config.ClientAdapter, credentials CredentialSource, logger *logger.Logger) (Dispatcher, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient().Configure(baseURL, adapterCfg.RequestTimeout)

	return &httpDispatcher{
		client:      client,
		credentials: credentials,
		traceIDs:    utils.NewUUIDGenerator(),
		pending:     newPendingCounter(),
		logger:      logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpDispatcher) Get(ctx context.Context, path string, result any) error {
	return h.dispatch(ctx, http.MethodGet, path, jsonBody(nil), result)
}

func (h *httpDispatcher) Post(ctx context.Context, path string, body, result any) error {
	return h.dispatch(ctx, http.MethodPost, path, jsonBody(body), result)
}

func (h *httpDispatcher) Put(ctx context.Context, path string, body, result any) error {
	return h.dispatch(ctx, http.MethodPut, path, jsonBody(body), result)
}

func (h *httpDispatcher) Delete(ctx context.Context, path string, result any) error {
	return h.dispatch(ctx, http.MethodDelete, path, jsonBody(nil), result)
}

func (h *httpDispatcher) Upload(ctx context.Context, path string, form models.UploadForm, result any) error {
	return h.dispatch(ctx, http.MethodPost, path, func(req *resty.Request) {
		// no Content-Type here: resty writes the multipart boundary itself
		if form.Reader != nil {
			req.SetFileReader(form.Field, form.FileName, form.Reader)
		}
		if len(form.Fields) > 0 {
			req.SetFormData(form.Fields)
		}
	}, result)
}

func (h *httpDispatcher) Pending() int64 {
	return h.pending.Value()
}

func (h *httpDispatcher) PendingCounter() *PendingCounter {
	return h.pending
}

func (h *httpDispatcher) OnUnauthorized(fn func(ctx context.Context)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onUnauthorized = append(h.onUnauthorized, fn)
}

func jsonBody(body any) func(req *resty.Request) {
	return func(req *resty.Request) {
		req.SetHeader("Content-Type", "application/json")
		if body != nil {
			req.SetBody(body)
		}
	}
}

func (h *httpDispatcher) dispatch(ctx context.Context, method, path string, prepare func(req *resty.Request), result any) error {
	h.pending.inc()
	defer h.pending.dec()

	traceID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		traceID = h.traceIDs.Generate()
		ctx = utils.WithTraceID(ctx, traceID)
	}
	log := h.logger.WithTraceID(traceID)

	req := h.authedRequest(ctx, traceID)
	prepare(req)

	log.Debug().Str("method", method).Str("path", path).Msg("dispatching request")

	resp, err := req.Execute(method, path)
	if err != nil {
		apiErr := normalizeError(0, nil, fmt.Errorf("%s %s: %w", method, path, err))
		log.Err(err).Str("method", method).Str("path", path).Msg("request failed without response")
		return apiErr
	}

	status := resp.StatusCode()
	log.Debug().Str("method", method).Str("path", path).Int("status", status).
		Dur("elapsed", resp.Time()).Msg("request settled")

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		apiErr := normalizeError(status, resp.Body(), fmt.Errorf("%s %s: http %d", method, path, status))
		log.Warn().Str("method", method).Str("path", path).Int("status", status).
			Str("kind", apiErr.Kind.String()).Msg(apiErr.Message)

		if status == http.StatusUnauthorized {
			h.teardown(ctx)
		}
		return apiErr
	}

	if result == nil || len(strings.TrimSpace(string(resp.Body()))) == 0 {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), result); err != nil {
		log.Err(err).Str("method", method).Str("path", path).Msg("failed to decode response body")
		return &APIError{
			Kind:    KindUnknown,
			Message: app.MsgUnexpectedResponse,
			Status:  status,
			Cause:   fmt.Errorf("decode %s %s response: %w", method, path, err),
		}
	}

	return nil
}

func (h *httpDispatcher) authedRequest(ctx context.Context, traceID string) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader(TraceIDHeader, traceID)
	if token := h.credentials.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// teardown clears the persisted credentials and then notifies every
// OnUnauthorized listener. It runs for every 401, whatever the body says.
func (h *httpDispatcher) teardown(ctx context.Context) {
	if err := h.credentials.Clear(ctx); err != nil {
		h.logger.Err(err).Str("func", "httpDispatcher.teardown").Msg("failed to clear credentials after 401")
	}

	h.mu.RLock()
	listeners := make([]func(ctx context.Context), len(h.onUnauthorized))
	copy(listeners, h.onUnauthorized)
	h.mu.RUnlock()

	for _, fn := range listeners {
		fn(ctx)
	}
}
