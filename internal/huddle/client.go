// Package huddle implements the client for the huddle recording service API.
package huddle

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	headerAPIKey = "X-API-Key"

	defaultTimeout     = 30 * time.Second
	defaultMaxAttempts = 3
	initialBackoff     = 1 * time.Second
	maxBackoff         = 8 * time.Second

	snippetLimit = 200
)

// Config holds client construction parameters. The API key is only ever sent
// as a request header, never as a URL parameter.
type Config struct {
	BaseURL       string
	APIKey        string
	Debug         bool
	Timeout       time.Duration
	MaxAttempts   int
	RatePerMinute int
}

// Client talks to the recording service. It is immutable after construction
// and safe for concurrent use; it keeps no cache and no cross-request state.
type Client struct {
	baseURL     string
	apiKey      string
	debug       bool
	maxAttempts int
	http        *http.Client
	logger      *slog.Logger
	limiter     *rate.Limiter
	sleep       sleepFunc
}

// NewClient validates cfg and builds a client. A missing or invalid base URL
// or API key fails here with a KindConfig error, before any network I/O.
func NewClient(log *slog.Logger, cfg Config) (*Client, error) {
	if log == nil {
		log = slog.Default()
	}
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, newError(KindConfig, nil, "base URL is required")
	}
	parsed, err := url.Parse(base)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, newError(KindConfig, err, "base URL %q is not a valid http(s) URL", base)
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, newError(KindConfig, nil, "API key is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = defaultMaxAttempts
	}
	var limiter *rate.Limiter
	if cfg.RatePerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RatePerMinute)), cfg.RatePerMinute)
	}
	return &Client{
		baseURL:     base,
		apiKey:      strings.TrimSpace(cfg.APIKey),
		debug:       cfg.Debug,
		maxAttempts: attempts,
		http:        &http.Client{Timeout: timeout},
		logger:      log.With(slog.String("component", "huddle_client")),
		limiter:     limiter,
		sleep:       sleepWithContext,
	}, nil
}

// ListRecordings fetches one page of recording summaries. Skip and limit are
// clamped, not rejected; the remote order is preserved.
func (c *Client) ListRecordings(ctx context.Context, params ListParams) (RecordingList, error) {
	p := params.normalized()
	query := url.Values{}
	query.Set("skip", strconv.Itoa(p.Skip))
	query.Set("limit", strconv.Itoa(p.Limit))
	query.Set("simplified", "true")
	if strings.TrimSpace(p.Period) != "" {
		query.Set("period", strings.TrimSpace(p.Period))
	}

	body, err := c.get(ctx, "/recordings", query)
	if err != nil {
		return RecordingList{}, err
	}
	list, err := parseRecordingList(body)
	if err != nil {
		return RecordingList{}, err
	}
	list.Skip = p.Skip
	list.Limit = p.Limit
	if list.Total == 0 && len(list.Recordings) > 0 {
		list.Total = p.Skip + len(list.Recordings)
	}
	return list, nil
}

// GetRecording fetches a single recording's full diarized transcript and
// metadata. An empty id is a KindValidation error; no request is sent.
func (c *Client) GetRecording(ctx context.Context, recordingID string) (Recording, error) {
	id := strings.TrimSpace(recordingID)
	if id == "" {
		return Recording{}, newError(KindValidation, nil, "recording_id is required")
	}
	query := url.Values{}
	query.Set("simplified", "true")

	body, err := c.get(ctx, "/recordings/"+url.PathEscape(id), query)
	if err != nil {
		if KindOf(err) == KindNotFound {
			return Recording{}, newError(KindNotFound, err, "recording %q not found; check the recording id", id)
		}
		return Recording{}, err
	}
	var rec Recording
	if err := json.Unmarshal(body, &rec); err != nil {
		return Recording{}, newError(KindBadResponse, err, "recording response is not valid JSON: %s", snippet(body))
	}
	if rec.ID == "" {
		rec.ID = id
	}
	return rec, nil
}

// parseRecordingList accepts both response shapes the service is known to
// return: an object with a recordings array, or a bare array.
func parseRecordingList(body []byte) (RecordingList, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []Summary
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return RecordingList{}, newError(KindBadResponse, err, "recordings response is not valid JSON: %s", snippet(body))
		}
		return RecordingList{Recordings: items}, nil
	}
	var list RecordingList
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return RecordingList{}, newError(KindBadResponse, err, "recordings response is not valid JSON: %s", snippet(body))
	}
	return list, nil
}

// get runs the bounded retry loop around doOnce. Only KindTransient errors are
// retried; context cancellation skips remaining attempts.
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	requestID := uuid.NewString()
	var lastErr *Error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			delay := withJitter(backoffDelay(attempt-2, initialBackoff, maxBackoff))
			if !c.sleep(ctx, delay) {
				return nil, newError(KindTransient, ctx.Err(), "request canceled while waiting to retry")
			}
		}
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, newError(KindTransient, err, "request canceled while rate limited")
			}
		}
		body, reqErr := c.doOnce(ctx, requestID, attempt, path, query)
		if reqErr == nil {
			return body, nil
		}
		if reqErr.Kind != KindTransient {
			return nil, reqErr
		}
		lastErr = reqErr
		if ctx.Err() != nil {
			return nil, lastErr
		}
	}
	lastErr.Attempts = c.maxAttempts
	return nil, lastErr
}

func (c *Client) doOnce(ctx context.Context, requestID string, attempt int, path string, query url.Values) ([]byte, *Error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, newError(KindRequestFailed, err, "build request: %v", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerAPIKey, c.apiKey)

	start := time.Now()
	resp, err := c.http.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		// The URL never carries the key, so logging err (which embeds the
		// URL) cannot leak it.
		c.debugLog("request attempt failed",
			slog.String("request_id", requestID),
			slog.Int("attempt", attempt),
			slog.String("url", reqURL),
			slog.Duration("elapsed", elapsed),
			slog.Any("error", err),
		)
		return nil, newError(KindTransient, err, "request to %s failed: %v", path, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("close response body failed", slog.Any("error", err))
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newError(KindTransient, err, "read response from %s: %v", path, err)
	}

	c.debugLog("request attempt done",
		slog.String("request_id", requestID),
		slog.Int("attempt", attempt),
		slog.String("method", http.MethodGet),
		slog.String("url", reqURL),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", elapsed),
	)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		e := newError(KindUnauthorized, nil, "the recording service rejected the credentials; check the API key")
		e.Status = resp.StatusCode
		return nil, e
	case resp.StatusCode == http.StatusNotFound:
		e := newError(KindNotFound, nil, "resource not found")
		e.Status = resp.StatusCode
		return nil, e
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		e := newError(KindTransient, nil, "the recording service is unavailable: %s", remoteMessage(body, resp.StatusCode))
		e.Status = resp.StatusCode
		return nil, e
	default:
		e := newError(KindRequestFailed, nil, "request failed: %s", remoteMessage(body, resp.StatusCode))
		e.Status = resp.StatusCode
		return nil, e
	}
}

func (c *Client) debugLog(msg string, args ...any) {
	if !c.debug {
		return
	}
	c.logger.Debug(msg, args...)
}

// remoteMessage extracts the service's own error text (detail/message/error
// fields) when the body is JSON, falling back to a bounded raw snippet.
func remoteMessage(body []byte, status int) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, key := range []string{"detail", "message", "error"} {
			if text, ok := payload[key].(string); ok && strings.TrimSpace(text) != "" {
				return strings.TrimSpace(text)
			}
		}
	}
	if text := snippet(body); text != "" {
		return text
	}
	return http.StatusText(status)
}

func snippet(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) > snippetLimit {
		text = text[:snippetLimit] + "..."
	}
	return text
}
