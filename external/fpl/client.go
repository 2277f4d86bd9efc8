package fpl

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fpl-viewer/internal/platform/logging"
	"github.com/riskibarqy/fpl-viewer/internal/platform/resilience"
	"github.com/riskibarqy/fpl-viewer/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultClassicBaseURL = "https://fantasy.premierleague.com/api"
	DefaultDraftBaseURL   = "https://draft.premierleague.com/api"

	TransportNetHTTP  = "nethttp"
	TransportFastHTTP = "fasthttp"

	defaultTimeout      = 20 * time.Second
	defaultUserAgent    = "fpl-viewer/1.0"
	defaultMaxBodyBytes = 8 << 20
)

var errBodyTooLarge = crerr.New("response body too large")

type ClientConfig struct {
	// HTTPClient overrides the net/http client; ignored for the fasthttp transport.
	HTTPClient     *http.Client
	ClassicBaseURL string
	DraftBaseURL   string
	Timeout        time.Duration
	UserAgent      string
	Transport      string
	MaxBodyBytes   int64
	Logger         *logging.Logger
}

// Client reads the classic and draft FPL APIs. Concurrent GETs of the same URL share one request,
// which runs detached from any single caller's cancellation and is bounded by the client timeout.
type Client struct {
	classicBaseURL string
	draftBaseURL   string
	doer           doer
	timeout        time.Duration
	logger         *logging.Logger
	flight         resilience.Flight[response]
}

type response struct {
	status int
	body   []byte
}

type doer interface {
	get(ctx context.Context, fullURL string) (response, error)
}

func NewClient(cfg ClientConfig) (*Client, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}

	var d doer
	switch strings.ToLower(strings.TrimSpace(cfg.Transport)) {
	case "", TransportNetHTTP:
		httpClient := cfg.HTTPClient
		if httpClient == nil {
			httpClient = &http.Client{
				Timeout:   timeout,
				Transport: otelhttp.NewTransport(http.DefaultTransport),
			}
		}
		if httpClient.Timeout <= 0 {
			httpClient.Timeout = timeout
		}
		d = &netHTTPDoer{client: httpClient, userAgent: userAgent, maxBody: maxBody}
	case TransportFastHTTP:
		d = newFastHTTPDoer(timeout, userAgent, maxBody)
	default:
		return nil, crerr.Newf("unsupported transport %q; expected %s or %s", cfg.Transport, TransportNetHTTP, TransportFastHTTP)
	}

	return &Client{
		classicBaseURL: normalizeBaseURL(cfg.ClassicBaseURL, DefaultClassicBaseURL),
		draftBaseURL:   normalizeBaseURL(cfg.DraftBaseURL, DefaultDraftBaseURL),
		doer:           d,
		timeout:        timeout,
		logger:         logger,
	}, nil
}

func (c *Client) FetchDraftLeagueDetails(ctx context.Context, leagueID int64) (usecase.ExternalDraftLeague, error) {
	var out usecase.ExternalDraftLeague
	err := c.getJSON(ctx, usecase.CallLeagueDetails, c.draftBaseURL+fmt.Sprintf("/league/%d/details", leagueID), &out)
	return out, err
}

func (c *Client) FetchDraftBootstrap(ctx context.Context) (usecase.ExternalDraftBootstrap, error) {
	var out usecase.ExternalDraftBootstrap
	err := c.getJSON(ctx, usecase.CallBootstrap, c.draftBaseURL+"/bootstrap-static", &out)
	return out, err
}

func (c *Client) FetchDraftEntryPublic(ctx context.Context, entryID int64) (usecase.ExternalDraftEntryPublic, error) {
	var out usecase.ExternalDraftEntryPublic
	err := c.getJSON(ctx, usecase.CallEntryPublic, c.draftBaseURL+fmt.Sprintf("/entry/%d/public", entryID), &out)
	return out, err
}

func (c *Client) FetchDraftEntryEvent(ctx context.Context, entryID int64, round int) (usecase.ExternalDraftEntryEvent, error) {
	var out usecase.ExternalDraftEntryEvent
	err := c.getJSON(ctx, usecase.CallEntryEvent, c.draftBaseURL+fmt.Sprintf("/entry/%d/event/%d", entryID, round), &out)
	return out, err
}

func (c *Client) FetchDraftEntryHistory(ctx context.Context, entryID int64) (usecase.ExternalDraftEntryHistory, error) {
	var out usecase.ExternalDraftEntryHistory
	err := c.getJSON(ctx, usecase.CallEntryHistory, c.draftBaseURL+fmt.Sprintf("/entry/%d/history", entryID), &out)
	return out, err
}

func (c *Client) FetchClassicEntry(ctx context.Context, entryID int64) (usecase.ExternalClassicEntry, error) {
	var out usecase.ExternalClassicEntry
	err := c.getJSON(ctx, usecase.CallClassicEntry, c.classicBaseURL+fmt.Sprintf("/entry/%d/", entryID), &out)
	return out, err
}

func (c *Client) FetchClassicEntryHistory(ctx context.Context, entryID int64) (usecase.ExternalClassicHistory, error) {
	var out usecase.ExternalClassicHistory
	err := c.getJSON(ctx, usecase.CallClassicHistory, c.classicBaseURL+fmt.Sprintf("/entry/%d/history/", entryID), &out)
	return out, err
}

func (c *Client) FetchClassicStandings(ctx context.Context, leagueID int64) (usecase.ExternalClassicStandings, error) {
	var out usecase.ExternalClassicStandings
	err := c.getJSON(ctx, usecase.CallClassicStandings, c.classicBaseURL+fmt.Sprintf("/leagues-classic/%d/standings/", leagueID), &out)
	return out, err
}

// FetchDraftRaw returns the draft payload at path without decoding it. The body must be valid JSON.
func (c *Client) FetchDraftRaw(ctx context.Context, call, path string) (usecase.ExternalRawPayload, error) {
	fullURL := c.draftBaseURL + "/" + strings.TrimLeft(path, "/")
	res, err := c.fetch(ctx, call, fullURL)
	if err != nil {
		return usecase.ExternalRawPayload{}, err
	}
	if !sonic.Valid(res.body) {
		return usecase.ExternalRawPayload{}, c.fail(ctx, &usecase.UpstreamError{
			Call:       call,
			URL:        fullURL,
			StatusCode: res.status,
			Err:        fmt.Errorf("invalid json body=%s", abbreviateBody(res.body)),
		})
	}

	return usecase.ExternalRawPayload{URL: fullURL, StatusCode: res.status, Body: res.body}, nil
}

func (c *Client) getJSON(ctx context.Context, call, fullURL string, target any) error {
	res, err := c.fetch(ctx, call, fullURL)
	if err != nil {
		return err
	}

	if err := sonic.Unmarshal(res.body, target); err != nil {
		return c.fail(ctx, &usecase.UpstreamError{
			Call:       call,
			URL:        fullURL,
			StatusCode: res.status,
			Err:        fmt.Errorf("decode payload: %w", err),
		})
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, call, fullURL string) (response, error) {
	res, err, _ := c.flight.Do(ctx, fullURL, func(shared context.Context) (response, error) {
		callCtx, cancel := context.WithTimeout(shared, c.timeout)
		defer cancel()
		return c.doer.get(callCtx, fullURL)
	})
	if err != nil {
		return response{}, c.fail(ctx, &usecase.UpstreamError{Call: call, URL: fullURL, Err: err})
	}
	if res.status < 200 || res.status >= 300 {
		return response{}, c.fail(ctx, &usecase.UpstreamError{
			Call:       call,
			URL:        fullURL,
			StatusCode: res.status,
			Err:        fmt.Errorf("body=%s", abbreviateBody(res.body)),
		})
	}
	return res, nil
}

func (c *Client) fail(ctx context.Context, err *usecase.UpstreamError) error {
	c.logger.WarnContext(ctx, "fpl request failed",
		"call", err.Call,
		"url", err.URL,
		"status", err.StatusCode,
		"error", err.Err,
	)
	return err
}

func normalizeBaseURL(value, fallback string) string {
	value = strings.TrimRight(strings.TrimSpace(value), "/")
	if value == "" {
		return fallback
	}
	return value
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
