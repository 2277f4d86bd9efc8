package fpl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
)

type netHTTPDoer struct {
	client    *http.Client
	userAgent string
	maxBody   int64
}

func (d *netHTTPDoer) get(ctx context.Context, fullURL string) (response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return response{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", d.userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return response{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, d.maxBody+1)); err != nil {
		return response{}, fmt.Errorf("read response body: %w", err)
	}
	if int64(buf.Len()) > d.maxBody {
		return response{}, crerr.Wrapf(errBodyTooLarge, "limit=%d", d.maxBody)
	}

	// The pooled buffer is reused after return; decoded strings may alias the body.
	return response{status: resp.StatusCode, body: append([]byte(nil), buf.B...)}, nil
}

type fastHTTPDoer struct {
	client  *fasthttp.Client
	timeout time.Duration
}

func newFastHTTPDoer(timeout time.Duration, userAgent string, maxBody int64) *fastHTTPDoer {
	return &fastHTTPDoer{
		client: &fasthttp.Client{
			Name:                userAgent,
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxResponseBodySize: int(maxBody),
		},
		timeout: timeout,
	}
}

// get honours ctx only through its deadline; fasthttp has no per-request cancellation.
func (d *fastHTTPDoer) get(ctx context.Context, fullURL string) (response, error) {
	if err := ctx.Err(); err != nil {
		return response{}, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	deadline := time.Now().Add(d.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	if err := d.client.DoDeadline(req, resp, deadline); err != nil {
		if crerr.Is(err, fasthttp.ErrBodyTooLarge) {
			return response{}, crerr.Wrapf(errBodyTooLarge, "limit=%d", d.client.MaxResponseBodySize)
		}
		return response{}, fmt.Errorf("send request: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return response{}, err
	}

	return response{status: resp.StatusCode(), body: append([]byte(nil), resp.Body()...)}, nil
}
